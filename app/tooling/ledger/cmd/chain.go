package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine a block and wait for it",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := call(http.MethodPost, "/v1/mine", nil, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the chain held by the node",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := call(http.MethodGet, "/v1/chain", nil, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var validCmd = &cobra.Command{
	Use:   "valid",
	Short: "Ask the node whether its chain is valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := call(http.MethodGet, "/v1/chain/valid", nil, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Replace the chain with the longest valid chain of the peers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := call(http.MethodPost, "/v1/chain/reconcile", nil, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the node identity and a summary of its ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp map[string]any
		if err := call(http.MethodGet, "/v1/info", nil, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(validCmd)
	rootCmd.AddCommand(reconcileCmd)
}
