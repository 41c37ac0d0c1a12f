package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"noteva/pkg/config"
	"noteva/pkg/handlers"
	"noteva/pkg/plugin"
	"noteva/pkg/plugin/musicplayer"
	"noteva/pkg/services"
	"noteva/pkg/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Noteva HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}

		st, err := store.Open(config.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		services.Init(st)

		host := plugin.NewHost(services.SiteAdapter{})
		mgr := plugin.NewManager(host)
		if err := mgr.Add(musicplayer.New()); err != nil {
			return fmt.Errorf("register plugins: %w", err)
		}

		// Seed each plugin's live settings snapshot, then boot the
		// enabled ones. Boot signals slot readiness and theme:ready.
		records, err := st.ListPluginRecords()
		if err != nil {
			return fmt.Errorf("load plugin records: %w", err)
		}
		enabled := map[string]bool{}
		for id, rec := range records {
			enabled[id] = rec.Enabled
			host.Settings().Put(id, plugin.Settings(rec.Settings))
		}
		mgr.Boot(enabled)

		handlers.Init(mgr, host)
		r := handlers.NewRouter()

		log.Printf("noteva listening on %s", config.Addr)
		return r.Run(config.Addr)
	},
}
