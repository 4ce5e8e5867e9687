package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Pulse CLI - RBAC administration for the Pulse platform",
	Long: `Pulse CLI administers role-based access control for the Pulse platform.

Examples:
  # Inspect the permission catalog
  pulse permissions list
  pulse roles list
  pulse roles show venue-owner

  # Manage grants
  pulse grant user 42 administrator
  pulse grant venue 42 7 venue-manager
  pulse revoke user 42 administrator

  # Run migrations and seed the catalog
  pulse migrate`,
}

func Execute() error {
	return rootCmd.Execute()
}
