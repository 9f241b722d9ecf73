package cmd

import (
	"net/http"

	"github.com/ardanlabs/ledger/app/services/node/handlers/v1/public"
	"github.com/spf13/cobra"
)

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Manage the peers known to the node",
}

var peersAddCmd = &cobra.Command{
	Use:   "add <address>...",
	Short: "Register peers with the node",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := call(http.MethodPost, "/v1/peers", public.NewPeers{Nodes: args}, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var peersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the peers known to the node",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := call(http.MethodGet, "/v1/peers", nil, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

func init() {
	peersCmd.AddCommand(peersAddCmd)
	peersCmd.AddCommand(peersListCmd)
	rootCmd.AddCommand(peersCmd)
}
