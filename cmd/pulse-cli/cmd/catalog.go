package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/authz"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Inspect the permission catalog",
}

var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all permission codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDESCRIPTION")
		for _, p := range authz.Permissions() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, p.Description)
		}
		return w.Flush()
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Inspect the built-in roles",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPERMISSIONS\tDESCRIPTION")
		for _, r := range authz.Roles() {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", r.ID, r.Name, len(authz.RolePermissions(r.ID)), r.Description)
		}
		return w.Flush()
	},
}

var rolesShowCmd = &cobra.Command{
	Use:   "show <role>",
	Short: "Show the permissions granted by a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, ok := authz.LookupRole(args[0])
		if !ok {
			return fmt.Errorf("unknown role: %s", args[0])
		}
		fmt.Printf("%s (%s)\n%s\n\n", role.Name, role.DisplayName, role.Description)
		for _, code := range authz.RolePermissions(role.ID) {
			fmt.Println("  " + code)
		}
		return nil
	},
}

func init() {
	permissionsCmd.AddCommand(permissionsListCmd)
	rolesCmd.AddCommand(rolesListCmd, rolesShowCmd)
	rootCmd.AddCommand(permissionsCmd, rolesCmd)
}
