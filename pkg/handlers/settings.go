package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noteva/pkg/services"
)

// GetSettings returns all site settings.
func GetSettings(c *gin.Context) {
	settings, err := services.Store().AllSettings()
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, settings)
}

// SaveSettings upserts the posted key/value pairs.
func SaveSettings(c *gin.Context) {
	var req map[string]string
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	for k, v := range req {
		if err := services.Store().SetSetting(k, v); err != nil {
			failErr(c, err)
			return
		}
	}
	ok(c, req)
}

// ListThemes returns the installed themes with the active one flagged.
func ListThemes(c *gin.Context) {
	themes, err := services.ListThemes()
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, themes)
}

// ActivateTheme switches the active theme.
func ActivateTheme(c *gin.Context) {
	var req struct {
		Dir string `json:"dir" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := services.ActivateTheme(req.Dir); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	ok(c, gin.H{"theme": req.Dir})
}

// ListLoginLogs pages through the security audit log.
func ListLoginLogs(c *gin.Context) {
	page, perPage := pageParams(c)
	logs, total, err := services.Store().ListLoginLogs(page, perPage)
	if err != nil {
		failErr(c, err)
		return
	}
	okList(c, logs, page, total, perPage)
}
