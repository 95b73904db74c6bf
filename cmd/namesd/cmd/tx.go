package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Submit transactions",
	}

	cmd.AddCommand(
		txMintCmd(),
		txBidCmd(),
		txRenewCmd(),
	)

	return cmd
}

func txMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [name]",
		Short: "Mint a name and list it on the marketplace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			payment, _ := cmd.Flags().GetString("payment")

			fmt.Println("Mint Submitted")
			fmt.Println("==============")
			fmt.Printf("Name:    %s\n", args[0])
			fmt.Printf("Owner:   %s\n", from)
			fmt.Printf("Payment: %s uname\n", payment)
			fmt.Println("Status:  pending")
			fmt.Println("")
			fmt.Println("The name will be listed for sale on mint.")
			return nil
		},
	}

	cmd.Flags().String("from", "", "Minting account")
	cmd.Flags().String("payment", "100000000", "Exact mint payment in uname")

	return cmd
}

func txBidCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bid [name] [amount]",
		Short: "Place a bid on a listed name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")

			fmt.Println("Bid Submitted")
			fmt.Println("=============")
			fmt.Printf("Name:   %s\n", args[0])
			fmt.Printf("Bidder: %s\n", from)
			fmt.Printf("Amount: %s uname\n", args[1])
			fmt.Println("Status: escrowed")
			return nil
		},
	}

	cmd.Flags().String("from", "", "Bidding account")

	return cmd
}

func txRenewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renew [name]",
		Short: "Renew a name for another year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			topUp, _ := cmd.Flags().GetString("top-up")

			fmt.Println("Renewal Submitted")
			fmt.Println("=================")
			fmt.Printf("Name:   %s\n", args[0])
			fmt.Printf("Owner:  %s\n", from)
			fmt.Printf("Top-up: %s uname\n", topUp)
			fmt.Println("Status: pending")
			return nil
		},
	}

	cmd.Flags().String("from", "", "Name owner account")
	cmd.Flags().String("top-up", "0", "Additional renewal funding in uname")

	return cmd
}
