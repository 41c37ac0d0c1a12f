package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"noteva/pkg/config"
	"noteva/pkg/store"
)

var (
	initUsername string
	initPassword string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database and create the admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		if initPassword == "" {
			return fmt.Errorf("--password is required")
		}

		st, err := store.Open(config.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		hash, err := bcrypt.GenerateFromPassword([]byte(initPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user, err := st.CreateUser(initUsername, string(hash))
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Printf("created admin user %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initUsername, "username", "admin", "admin account name")
	initCmd.Flags().StringVar(&initPassword, "password", "", "admin account password")
}
