package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/authz"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/config"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/db"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/grants"
)

func openDatabase() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return db.New(cfg.Database)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and seed the permission catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		if err := db.Migrate(database); err != nil {
			return err
		}
		fmt.Println("Migrations completed.")
		return nil
	},
}

var grantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant roles to users",
}

var grantUserCmd = &cobra.Command{
	Use:   "user <user-id> <role>",
	Short: "Grant a global role to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, role, err := parseUserRoleArgs(args[0], args[1])
		if err != nil {
			return err
		}
		database, err := openDatabase()
		if err != nil {
			return err
		}
		if _, err := grants.NewService(database).AssignUserRole(userID, role.ID, nil); err != nil {
			return err
		}
		fmt.Printf("Granted %s to user %d.\n", role.Name, userID)
		return nil
	},
}

var grantVenueCmd = &cobra.Command{
	Use:   "venue <user-id> <venue-id> <role>",
	Short: "Grant a venue-scoped role to a user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, role, err := parseUserRoleArgs(args[0], args[2])
		if err != nil {
			return err
		}
		venueID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid venue id: %s", args[1])
		}
		database, err := openDatabase()
		if err != nil {
			return err
		}
		if _, err := grants.NewService(database).AssignVenueRole(userID, venueID, role.ID, nil); err != nil {
			return err
		}
		fmt.Printf("Granted %s to user %d for venue %d.\n", role.Name, userID, venueID)
		return nil
	},
}

var revokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke roles from users",
}

var revokeUserCmd = &cobra.Command{
	Use:   "user <user-id> <role>",
	Short: "Revoke a global role from a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, role, err := parseUserRoleArgs(args[0], args[1])
		if err != nil {
			return err
		}
		database, err := openDatabase()
		if err != nil {
			return err
		}
		if err := grants.NewService(database).RevokeUserRole(userID, role.ID, nil); err != nil {
			return err
		}
		fmt.Printf("Revoked %s from user %d.\n", role.Name, userID)
		return nil
	},
}

var revokeVenueCmd = &cobra.Command{
	Use:   "venue <user-id> <venue-id> <role>",
	Short: "Revoke a venue-scoped role from a user",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, role, err := parseUserRoleArgs(args[0], args[2])
		if err != nil {
			return err
		}
		venueID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid venue id: %s", args[1])
		}
		database, err := openDatabase()
		if err != nil {
			return err
		}
		if err := grants.NewService(database).RevokeVenueRole(userID, venueID, role.ID, nil); err != nil {
			return err
		}
		fmt.Printf("Revoked %s from user %d for venue %d.\n", role.Name, userID, venueID)
		return nil
	},
}

func parseUserRoleArgs(userArg, roleArg string) (int64, authz.RoleDef, error) {
	userID, err := strconv.ParseInt(userArg, 10, 64)
	if err != nil {
		return 0, authz.RoleDef{}, fmt.Errorf("invalid user id: %s", userArg)
	}
	role, ok := authz.LookupRole(roleArg)
	if !ok {
		return 0, authz.RoleDef{}, fmt.Errorf("unknown role: %s", roleArg)
	}
	return userID, role, nil
}

func init() {
	grantCmd.AddCommand(grantUserCmd, grantVenueCmd)
	revokeCmd.AddCommand(revokeUserCmd, revokeVenueCmd)
	rootCmd.AddCommand(migrateCmd, grantCmd, revokeCmd)
}
