package musicplayer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteva/pkg/models"
	"noteva/pkg/plugin"
)

type stubSite struct{}

func (stubSite) SiteInfo() models.SiteInfo { return models.SiteInfo{Title: "Test"} }
func (stubSite) Nav() []models.NavNode     { return nil }

func TestManifestSchemaIsValid(t *testing.T) {
	man := New().Manifest()
	assert.Equal(t, PluginID, man.ID)
	require.NoError(t, man.Validate())
}

func TestBootRendersFooterSlot(t *testing.T) {
	host := plugin.NewHost(stubSite{})
	mgr := plugin.NewManager(host)
	require.NoError(t, mgr.Add(New()))

	host.Settings().Put(PluginID, plugin.Settings{
		"songs":    `[{"url":"a.mp3","name":"Song A","artist":"X"}]`,
		"position": "right",
		"loop":     true,
	})
	mgr.Boot(map[string]bool{PluginID: true})

	require.True(t, host.Slots().Claimed(Slot))
	var buf bytes.Buffer
	require.NoError(t, host.Slots().Render(Slot, &buf))
	html := buf.String()
	assert.Contains(t, html, `data-url="a.mp3"`)
	assert.Contains(t, html, "Song A")
	assert.Contains(t, html, `data-position="right"`)
}

func TestNoTracksRendersEmptyFragment(t *testing.T) {
	host := plugin.NewHost(stubSite{})
	mgr := plugin.NewManager(host)
	require.NoError(t, mgr.Add(New()))

	host.Settings().Put(PluginID, plugin.Settings{"songs": `not valid json`})
	mgr.Boot(map[string]bool{PluginID: true})

	var buf bytes.Buffer
	require.NoError(t, host.Slots().Render(Slot, &buf))
	assert.Empty(t, buf.String(), "a widget with no playable tracks renders nothing")
}

func TestSettingsSavedAfterBootShowInNextRender(t *testing.T) {
	host := plugin.NewHost(stubSite{})
	mgr := plugin.NewManager(host)
	require.NoError(t, mgr.Add(New()))

	host.Settings().Put(PluginID, plugin.Settings{"songs": `[{"url":"old.mp3"}]`})
	mgr.Boot(map[string]bool{PluginID: true})

	var buf bytes.Buffer
	require.NoError(t, host.Slots().Render(Slot, &buf))
	require.Contains(t, buf.String(), `data-url="old.mp3"`)

	host.Settings().Put(PluginID, plugin.Settings{
		"songs":    `[{"url":"new.mp3"}]`,
		"position": "right",
	})

	buf.Reset()
	require.NoError(t, host.Slots().Render(Slot, &buf))
	html := buf.String()
	assert.Contains(t, html, `data-url="new.mp3"`)
	assert.NotContains(t, html, "old.mp3")
	assert.Contains(t, html, `data-position="right"`)
}

func TestEnableAfterBootInitializesPlugin(t *testing.T) {
	host := plugin.NewHost(stubSite{})
	mgr := plugin.NewManager(host)
	require.NoError(t, mgr.Add(New()))
	mgr.Boot(map[string]bool{})
	require.False(t, host.Slots().Claimed(Slot))

	host.Settings().Put(PluginID, plugin.Settings{"songs": `[{"url":"a.mp3"}]`})
	require.NoError(t, mgr.Enable(PluginID))

	require.True(t, host.Slots().Claimed(Slot), "theme:ready replays for a late init")
	var buf bytes.Buffer
	require.NoError(t, host.Slots().Render(Slot, &buf))
	assert.Contains(t, buf.String(), `data-url="a.mp3"`)
}

func TestDisabledPluginDoesNotBoot(t *testing.T) {
	host := plugin.NewHost(stubSite{})
	mgr := plugin.NewManager(host)
	require.NoError(t, mgr.Add(New()))

	host.Settings().Put(PluginID, plugin.Settings{"songs": `[{"url":"a.mp3"}]`})
	mgr.Boot(map[string]bool{})

	assert.False(t, host.Slots().Claimed(Slot))
}
