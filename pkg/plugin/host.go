package plugin

import (
	"fmt"
	"log"

	"noteva/pkg/models"
)

// Lifecycle events emitted by the host.
const (
	EventThemeReady = "theme:ready"
)

// Plugin is the contract a plugin implements. Init receives the host
// capability object; plugins must not reach for globals.
type Plugin interface {
	Manifest() models.PluginManifest
	Init(h *Host) error
}

// SiteProvider supplies the read-only site data plugins may consult.
type SiteProvider interface {
	SiteInfo() models.SiteInfo
	Nav() []models.NavNode
}

// Host is the capability object handed to each plugin at init. It bundles
// the event bus, the slot registry, the settings store and site lookups.
type Host struct {
	events   *Bus
	slots    *SlotRegistry
	settings *SettingsStore
	site     SiteProvider
}

func NewHost(site SiteProvider) *Host {
	return &Host{
		events:   NewBus(),
		slots:    NewSlotRegistry(),
		settings: NewSettingsStore(),
		site:     site,
	}
}

func (h *Host) Events() *Bus              { return h.events }
func (h *Host) Slots() *SlotRegistry      { return h.slots }
func (h *Host) Settings() *SettingsStore  { return h.settings }
func (h *Host) SiteInfo() models.SiteInfo { return h.site.SiteInfo() }
func (h *Host) Nav() []models.NavNode     { return h.site.Nav() }

// GetSettings is a convenience for plugins reading their own snapshot.
func (h *Host) GetSettings(pluginID string) Settings {
	return h.settings.GetSettings(pluginID)
}

// Manager owns the set of known plugins and drives their lifecycle.
type Manager struct {
	host    *Host
	plugins []Plugin
	byID    map[string]Plugin
	inited  map[string]bool
}

func NewManager(host *Host) *Manager {
	return &Manager{host: host, byID: make(map[string]Plugin), inited: make(map[string]bool)}
}

// Add registers a plugin with the manager. Duplicate or schema-invalid
// manifests are rejected.
func (m *Manager) Add(p Plugin) error {
	man := p.Manifest()
	if man.ID == "" {
		return models.ErrInvalidID
	}
	if err := man.Validate(); err != nil {
		return fmt.Errorf("plugin %s: %w", man.ID, err)
	}
	if _, dup := m.byID[man.ID]; dup {
		return fmt.Errorf("plugin %s: already registered", man.ID)
	}
	m.plugins = append(m.plugins, p)
	m.byID[man.ID] = p
	return nil
}

// Manifests returns every known plugin manifest in registration order.
func (m *Manager) Manifests() []models.PluginManifest {
	out := make([]models.PluginManifest, 0, len(m.plugins))
	for _, p := range m.plugins {
		out = append(out, p.Manifest())
	}
	return out
}

// Get returns the plugin registered under id.
func (m *Manager) Get(id string) (Plugin, bool) {
	p, ok := m.byID[id]
	return p, ok
}

// Boot initializes every enabled plugin, signals readiness and emits
// theme:ready. A plugin whose Init fails is logged and skipped; the rest
// still boot (a broken plugin degrades to an absent widget).
func (m *Manager) Boot(enabled map[string]bool) {
	for _, p := range m.plugins {
		id := p.Manifest().ID
		if !enabled[id] {
			continue
		}
		if err := p.Init(m.host); err != nil {
			log.Printf("plugin: init %s failed: %v", id, err)
			continue
		}
		m.inited[id] = true
	}
	m.host.slots.Ready()
	m.host.events.Emit(EventThemeReady)
}

// Enable initializes a plugin that was not enabled at boot. Lifecycle
// events it subscribes to replay through the sticky bus, so a late init
// still observes theme:ready. Already initialized plugins are left alone.
func (m *Manager) Enable(id string) error {
	p, ok := m.byID[id]
	if !ok {
		return models.ErrNotFound
	}
	if m.inited[id] {
		return nil
	}
	if err := p.Init(m.host); err != nil {
		return fmt.Errorf("plugin %s: %w", id, err)
	}
	m.inited[id] = true
	return nil
}
