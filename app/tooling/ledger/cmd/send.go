package cmd

import (
	"net/http"

	"github.com/ardanlabs/ledger/app/services/node/handlers/v1/public"
	"github.com/spf13/cobra"
)

var (
	sender   string
	receiver string
	amount   uint64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		tx := public.NewTx{
			Sender:   sender,
			Receiver: receiver,
			Amount:   amount,
		}

		var resp map[string]any
		if err := call(http.MethodPost, "/v1/tx/submit", tx, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Print the transactions waiting to be mined",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp []map[string]any
		if err := call(http.MethodGet, "/v1/tx/pending", nil, &resp); err != nil {
			return err
		}
		return printJSON(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(pendingCmd)
	sendCmd.Flags().StringVarP(&sender, "from", "f", "", "Sender of the transaction.")
	sendCmd.Flags().StringVarP(&receiver, "to", "r", "", "Receiver of the transaction.")
	sendCmd.Flags().Uint64VarP(&amount, "amount", "a", 0, "Amount to send.")
	sendCmd.MarkFlagRequired("from")
	sendCmd.MarkFlagRequired("to")
}
