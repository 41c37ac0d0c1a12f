package services

import (
	"log"

	"noteva/pkg/models"
)

// SiteAdapter satisfies the plugin host's SiteProvider using the store.
// Lookups degrade to zero values: a plugin asking for site data never
// sees an error, only emptier data.
type SiteAdapter struct{}

func (SiteAdapter) SiteInfo() models.SiteInfo {
	info := models.SiteInfo{Title: "Noteva", Theme: DefaultTheme}
	if db == nil {
		return info
	}
	if v, err := db.GetSetting(SettingSiteTitle, info.Title); err == nil {
		info.Title = v
	}
	if v, err := db.GetSetting(SettingSiteSubtitle, ""); err == nil {
		info.Subtitle = v
	}
	if v, err := db.GetSetting(SettingSiteDesc, ""); err == nil {
		info.Description = v
	}
	if v, err := db.GetSetting(SettingTheme, DefaultTheme); err == nil {
		info.Theme = v
	}
	return info
}

func (SiteAdapter) Nav() []models.NavNode {
	nav, err := GetNav()
	if err != nil {
		log.Printf("site: loading nav: %v", err)
		return nil
	}
	return nav
}
