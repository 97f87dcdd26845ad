package loader_test

import (
	"fmt"
	"testing"

	"match-tracker/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestLoadAllSkipsDisabledFeatures(t *testing.T) {
	on := &fakeFeature{name: "on", enabled: true}
	off := &fakeFeature{name: "off", enabled: false}

	m := loader.NewManager()
	m.Register(on)
	m.Register(off)

	app := fiber.New()
	assert.NoError(t, m.LoadAll(app))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
}

func TestLoadAllStopsOnFailure(t *testing.T) {
	broken := &fakeFeature{name: "broken", enabled: true, loadErr: fmt.Errorf("boom")}
	after := &fakeFeature{name: "after", enabled: true}

	m := loader.NewManager()
	m.Register(broken)
	m.Register(after)

	app := fiber.New()
	err := m.LoadAll(app)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
