package cmd

import (
	"fmt"

	"github.com/ardanlabs/ledger/foundation/blockchain/identity"
	"github.com/spf13/cobra"
)

var keyPath string

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a new node key",
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, err := identity.Generate(keyPath)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), identity.Address(privateKey))
		return nil
	},
}

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the address for a node key",
	RunE: func(cmd *cobra.Command, args []string) error {
		privateKey, err := identity.Load(keyPath)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), identity.Address(privateKey))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genkeyCmd)
	rootCmd.AddCommand(addressCmd)
	for _, c := range []*cobra.Command{genkeyCmd, addressCmd} {
		c.Flags().StringVarP(&keyPath, "key", "k", "zblock/node.ecdsa", "Path to the private key.")
	}
}
