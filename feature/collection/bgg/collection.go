package bgg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CatalogItem is one game from the remote collection. It exists only for
// the duration of a sync run; the reconciler maps it onto local storage.
type CatalogItem struct {
	// ExternalID is BGG's stable identifier (objectid), the join key
	// against the local games table.
	ExternalID string
	// Name is the display name.
	Name string
	// ThumbnailURL is the small cover image, optional.
	ThumbnailURL string
	// ImageURL is the full-size cover image, optional.
	ImageURL string
	// YearPublished is the publication year, optional.
	YearPublished *int
}

// Collection is a lazy, finite, non-restartable sequence of catalog items
// decoded from a BGG collection response. Items are pulled from the wire
// one at a time, so the full collection is never held in memory.
type Collection struct {
	// Degraded is true when the fetch ran without credentials.
	Degraded bool
	// TotalItems is the item count BGG advertises on the root element.
	TotalItems int

	body io.ReadCloser
	dec  *xml.Decoder
	done bool
}

// wireItem mirrors one <item> element of the XML API v2 collection payload.
type wireItem struct {
	ObjectID      string `xml:"objectid,attr"`
	Subtype       string `xml:"subtype,attr"`
	Name          string `xml:"name"`
	YearPublished string `xml:"yearpublished"`
	Thumbnail     string `xml:"thumbnail"`
	Image         string `xml:"image"`
}

// wireErrors mirrors the <errors> payload BGG returns with HTTP 200 for
// bad requests (unknown user, private collection).
type wireErrors struct {
	Messages []string `xml:"error>message"`
}

// newCollection validates the top-level payload and positions the decoder
// inside the <items> element.
func newCollection(body io.ReadCloser, degraded bool) (*Collection, error) {
	dec := xml.NewDecoder(body)

	for {
		tok, err := dec.Token()
		if err != nil {
			body.Close()
			return nil, fmt.Errorf("%w: malformed collection payload: %v", ErrRemoteUnavailable, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "items":
			total, _ := strconv.Atoi(attrValue(se, "totalitems"))
			return &Collection{
				Degraded:   degraded,
				TotalItems: total,
				body:       body,
				dec:        dec,
			}, nil

		case "errors":
			var we wireErrors
			_ = dec.DecodeElement(&we, &se)
			body.Close()
			msg := strings.Join(we.Messages, "; ")
			if msg == "" {
				msg = "unknown error"
			}
			return nil, fmt.Errorf("%w: %s", ErrRemoteUnavailable, msg)

		default:
			body.Close()
			return nil, fmt.Errorf("%w: unexpected root element <%s>", ErrRemoteUnavailable, se.Name.Local)
		}
	}
}

// Next returns the next item in the sequence.
//
// It returns io.EOF once the collection is exhausted, a *ParseError when a
// single item is malformed (the sequence continues on the following call),
// or a wrapped stream error when the payload breaks mid-way.
func (c *Collection) Next() (*CatalogItem, error) {
	if c.done {
		return nil, io.EOF
	}

	for {
		tok, err := c.dec.Token()
		if err == io.EOF {
			c.done = true
			return nil, io.EOF
		}
		if err != nil {
			c.done = true
			return nil, fmt.Errorf("bgg: collection stream broke: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "item" {
			continue
		}

		var raw wireItem
		if err := c.dec.DecodeElement(&raw, &se); err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("undecodable item element: %v", err)}
		}
		return raw.toCatalogItem()
	}
}

// Close releases the underlying response body.
func (c *Collection) Close() error {
	c.done = true
	return c.body.Close()
}

func (w wireItem) toCatalogItem() (*CatalogItem, error) {
	if strings.TrimSpace(w.ObjectID) == "" {
		return nil, &ParseError{Name: w.Name, Reason: "missing objectid"}
	}
	if strings.TrimSpace(w.Name) == "" {
		return nil, &ParseError{ExternalID: w.ObjectID, Reason: "missing name"}
	}

	item := &CatalogItem{
		ExternalID:   strings.TrimSpace(w.ObjectID),
		Name:         strings.TrimSpace(w.Name),
		ThumbnailURL: strings.TrimSpace(w.Thumbnail),
		ImageURL:     strings.TrimSpace(w.Image),
	}

	if y := strings.TrimSpace(w.YearPublished); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			item.YearPublished = &year
		}
	}

	return item, nil
}

func attrValue(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
