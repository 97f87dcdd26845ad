package bgg_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"match-tracker/feature/collection/bgg"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const collectionXML = `<?xml version="1.0" encoding="utf-8"?>
<items totalitems="2" termsofuse="https://boardgamegeek.com/xmlapi/termsofuse">
  <item objecttype="thing" objectid="13" subtype="boardgame" collid="101">
    <name sortindex="1">Catan</name>
    <yearpublished>1995</yearpublished>
    <image>https://cf.geekdo-images.com/13.jpg</image>
    <thumbnail>https://cf.geekdo-images.com/13_t.jpg</thumbnail>
    <status own="1" />
  </item>
  <item objecttype="thing" objectid="822" subtype="boardgame" collid="102">
    <name sortindex="1">Carcassonne</name>
    <yearpublished>2000</yearpublished>
    <thumbnail>https://cf.geekdo-images.com/822_t.jpg</thumbnail>
    <status own="1" />
  </item>
</items>`

func testConfig(baseURL string) bgg.Config {
	return bgg.Config{
		BaseURL:           baseURL,
		Username:          "testuser",
		OwnedOnly:         true,
		MinRequestSpacing: time.Millisecond,
		MaxAttempts:       3,
		BackoffMultiplier: 2,
	}
}

func drain(t *testing.T, coll *bgg.Collection) []*bgg.CatalogItem {
	t.Helper()
	var items []*bgg.CatalogItem
	for {
		item, err := coll.Next()
		if err == io.EOF {
			return items
		}
		assert.NoError(t, err)
		if err != nil {
			return items
		}
		items = append(items, item)
	}
}

func TestFetchCollectionSuccess(t *testing.T) {
	var gotQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(collectionXML))
	}))
	defer srv.Close()

	client := bgg.NewClient(testConfig(srv.URL), zap.NewNop())

	coll, err := client.FetchCollection(context.Background())
	assert.NoError(t, err)
	defer coll.Close()

	assert.Equal(t, 2, coll.TotalItems)
	assert.True(t, coll.Degraded) // no token configured

	items := drain(t, coll)
	assert.Len(t, items, 2)

	assert.Equal(t, "13", items[0].ExternalID)
	assert.Equal(t, "Catan", items[0].Name)
	assert.Equal(t, "https://cf.geekdo-images.com/13_t.jpg", items[0].ThumbnailURL)
	assert.Equal(t, "https://cf.geekdo-images.com/13.jpg", items[0].ImageURL)
	if assert.NotNil(t, items[0].YearPublished) {
		assert.Equal(t, 1995, *items[0].YearPublished)
	}

	assert.Equal(t, "822", items[1].ExternalID)
	assert.Empty(t, items[1].ImageURL)

	// Exhausted sequences stay exhausted.
	_, err = coll.Next()
	assert.Equal(t, io.EOF, err)

	q := gotQuery.Load().(url.Values)
	assert.Equal(t, "testuser", q.Get("username"))
	assert.Equal(t, "boardgame", q.Get("subtype"))
	assert.Equal(t, "boardgameexpansion", q.Get("excludesubtype"))
	assert.Equal(t, "1", q.Get("own"))
}

func TestFetchCollectionRetriesWhileExportQueued(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		_, _ = w.Write([]byte(collectionXML))
	}))
	defer srv.Close()

	client := bgg.NewClient(testConfig(srv.URL), zap.NewNop())

	coll, err := client.FetchCollection(context.Background())
	assert.NoError(t, err)
	defer coll.Close()

	// The 202 polling must be invisible to the caller.
	assert.Len(t, drain(t, coll), 2)
	assert.Equal(t, int32(3), requests.Load())
}

func TestFetchCollectionRetriesAfterRateLimit(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(collectionXML))
	}))
	defer srv.Close()

	client := bgg.NewClient(testConfig(srv.URL), zap.NewNop())

	coll, err := client.FetchCollection(context.Background())
	assert.NoError(t, err)
	defer coll.Close()

	assert.Len(t, drain(t, coll), 2)
	assert.Equal(t, int32(2), requests.Load())
}

func TestFetchCollectionAuthRejectedIsFatal(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := bgg.NewClient(testConfig(srv.URL), zap.NewNop())

	_, err := client.FetchCollection(context.Background())
	assert.ErrorIs(t, err, bgg.ErrAuthRejected)
	// Never retried: retrying rejected credentials can lock the account.
	assert.Equal(t, int32(1), requests.Load())
}

func TestFetchCollectionGivesUpAfterMaxAttempts(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxAttempts = 2
	client := bgg.NewClient(cfg, zap.NewNop())

	_, err := client.FetchCollection(context.Background())
	assert.ErrorIs(t, err, bgg.ErrRemoteUnavailable)
	assert.Equal(t, int32(2), requests.Load())
}

func TestFetchCollectionErrorsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// BGG answers 200 with an <errors> document for unknown users.
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<errors>
  <error>
    <message>Invalid username specified</message>
  </error>
</errors>`))
	}))
	defer srv.Close()

	client := bgg.NewClient(testConfig(srv.URL), zap.NewNop())

	_, err := client.FetchCollection(context.Background())
	assert.ErrorIs(t, err, bgg.ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "Invalid username specified")
}

func TestFetchCollectionSendsToken(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(collectionXML))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Token = "secret-token"
	client := bgg.NewClient(cfg, zap.NewNop())

	coll, err := client.FetchCollection(context.Background())
	assert.NoError(t, err)
	defer coll.Close()

	assert.False(t, coll.Degraded)
	assert.Equal(t, "Bearer secret-token", gotAuth.Load())
}

func TestFetchCollectionCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MinRequestSpacing = 50 * time.Millisecond
	client := bgg.NewClient(cfg, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	_, err := client.FetchCollection(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, bgg.ErrAuthRejected)
}

func TestCollectionSkipsMalformedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<items totalitems="3">
  <item objectid="1"><name>Good One</name></item>
  <item><name>No ID</name></item>
  <item objectid="3"><name>Good Two</name></item>
</items>`))
	}))
	defer srv.Close()

	client := bgg.NewClient(testConfig(srv.URL), zap.NewNop())

	coll, err := client.FetchCollection(context.Background())
	assert.NoError(t, err)
	defer coll.Close()

	first, err := coll.Next()
	assert.NoError(t, err)
	assert.Equal(t, "Good One", first.Name)

	// The malformed item fails on its own; the sequence continues.
	_, err = coll.Next()
	var perr *bgg.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, "No ID", perr.Name)

	third, err := coll.Next()
	assert.NoError(t, err)
	assert.Equal(t, "3", third.ExternalID)

	_, err = coll.Next()
	assert.Equal(t, io.EOF, err)
}
