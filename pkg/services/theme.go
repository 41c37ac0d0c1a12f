package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"noteva/pkg/config"
)

// Site settings keys.
const (
	SettingTheme        = "theme"
	SettingSiteTitle    = "site_title"
	SettingSiteSubtitle = "site_subtitle"
	SettingSiteDesc     = "site_description"

	DefaultTheme = "default"
)

// Theme is one installed theme, described by its theme.toml manifest.
type Theme struct {
	Dir     string `json:"dir" toml:"-"`
	Name    string `json:"name" toml:"name"`
	Author  string `json:"author,omitempty" toml:"author"`
	Version string `json:"version,omitempty" toml:"version"`
	Active  bool   `json:"active" toml:"-"`
}

// ListThemes scans the themes directory for subdirectories carrying a
// theme.toml. A directory with a broken manifest is listed by its
// directory name only.
func ListThemes() ([]Theme, error) {
	active, err := db.GetSetting(SettingTheme, DefaultTheme)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(config.ThemesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Theme{}, nil
		}
		return nil, fmt.Errorf("reading themes dir: %w", err)
	}

	themes := []Theme{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t := Theme{Dir: entry.Name(), Name: entry.Name()}
		raw, err := os.ReadFile(filepath.Join(config.ThemesDir, entry.Name(), "theme.toml"))
		if err == nil {
			var manifest Theme
			if toml.Unmarshal(raw, &manifest) == nil && manifest.Name != "" {
				t.Name = manifest.Name
				t.Author = manifest.Author
				t.Version = manifest.Version
			}
		}
		t.Active = entry.Name() == active
		themes = append(themes, t)
	}
	return themes, nil
}

// TemplatesGlob returns the glob the router loads templates from. A theme
// may ship its own templates directory; when the active theme has one it
// overrides the builtin set. Evaluated once at startup, so switching
// themes changes templates on the next start.
func TemplatesGlob() string {
	active, err := db.GetSetting(SettingTheme, DefaultTheme)
	if err != nil {
		return "templates/*"
	}
	glob := filepath.Join(config.ThemesDir, active, "templates", "*.html")
	if matches, err := filepath.Glob(glob); err == nil && len(matches) > 0 {
		return glob
	}
	return "templates/*"
}

// ActivateTheme records dir as the active theme after checking it exists.
func ActivateTheme(dir string) error {
	if dir == "" {
		return fmt.Errorf("empty theme dir")
	}
	info, err := os.Stat(filepath.Join(config.ThemesDir, dir))
	if err != nil || !info.IsDir() {
		return fmt.Errorf("theme %s not installed", dir)
	}
	return db.SetSetting(SettingTheme, dir)
}
