// Package cli wires the noteva command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"noteva/pkg/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "noteva",
	Short: "Noteva blog CMS server",
	Long:  "Noteva is a self-hosted blog CMS with a themed frontend, an admin API and a plugin system.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads config.yaml via viper and overlays its values onto the
// env-seeded config package. A missing config file is not an error.
func loadConfig() error {
	v := viper.New()
	v.SetDefault("addr", config.Addr)
	v.SetDefault("db_path", config.DBPath)
	v.SetDefault("themes_dir", config.ThemesDir)
	v.SetDefault("uploads_dir", config.UploadsDir)
	v.SetDefault("per_page", config.PerPage)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if cfgFile != "" || !os.IsNotExist(err) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	config.Addr = v.GetString("addr")
	config.DBPath = v.GetString("db_path")
	config.ThemesDir = v.GetString("themes_dir")
	config.UploadsDir = v.GetString("uploads_dir")
	if pp := v.GetInt("per_page"); pp > 0 {
		config.PerPage = pp
	}
	return nil
}
