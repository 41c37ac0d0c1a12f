package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/models"
	"noteva/pkg/plugin"
	"noteva/pkg/services"
)

// ListPlugins merges known plugin manifests with their stored state.
func ListPlugins(c *gin.Context) {
	records, err := services.Store().ListPluginRecords()
	if err != nil {
		failErr(c, err)
		return
	}

	type entry struct {
		models.PluginManifest
		Enabled bool `json:"enabled"`
	}
	out := []entry{}
	for _, man := range pluginManager.Manifests() {
		out = append(out, entry{PluginManifest: man, Enabled: records[man.ID].Enabled})
	}
	ok(c, out)
}

// GetPluginSettings returns the stored settings for one plugin. Unknown
// plugin IDs return an empty settings object, not an error.
func GetPluginSettings(c *gin.Context) {
	rec, err := services.Store().GetPluginRecord(c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, rec.Settings)
}

// SavePluginSettings stores new settings and refreshes the live snapshot.
// Slot renderers read the snapshot per render, so the change is visible
// on the next page view.
func SavePluginSettings(c *gin.Context) {
	id := c.Param("id")
	if _, known := pluginManager.Get(id); !known {
		fail(c, http.StatusNotFound, "unknown plugin")
		return
	}

	var settings map[string]any
	if err := c.BindJSON(&settings); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}

	rec, err := services.Store().GetPluginRecord(id)
	if err != nil {
		failErr(c, err)
		return
	}
	rec.Settings = settings
	if err := services.Store().SavePluginRecord(rec); err != nil {
		failErr(c, err)
		return
	}
	pluginHost.Settings().Put(id, plugin.Settings(settings))
	ok(c, rec.Settings)
}

// SetPluginEnabled flips a plugin on or off. Enabling initializes the
// plugin in place; disabling takes effect on the next start.
func SetPluginEnabled(c *gin.Context) {
	id := c.Param("id")
	if _, known := pluginManager.Get(id); !known {
		fail(c, http.StatusNotFound, "unknown plugin")
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}

	rec, err := services.Store().GetPluginRecord(id)
	if err != nil {
		failErr(c, err)
		return
	}
	rec.Enabled = req.Enabled
	if err := services.Store().SavePluginRecord(rec); err != nil {
		failErr(c, err)
		return
	}
	if req.Enabled {
		if err := pluginManager.Enable(id); err != nil {
			log.Printf("plugins: late init %s: %v", id, err)
		}
	}
	ok(c, gin.H{"id": id, "enabled": rec.Enabled})
}

// GetPluginSchema returns the declarative settings schema for the admin
// form generator.
func GetPluginSchema(c *gin.Context) {
	p, known := pluginManager.Get(c.Param("id"))
	if !known {
		fail(c, http.StatusNotFound, "unknown plugin")
		return
	}
	ok(c, p.Manifest().Sections)
}
