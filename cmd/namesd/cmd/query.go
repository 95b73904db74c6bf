package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Short:   "Query name service state",
		Aliases: []string{"q"},
	}

	cmd.AddCommand(
		queryNameCmd(),
		queryAskCmd(),
		queryBidsCmd(),
		queryMintPriceCmd(),
	)

	return cmd
}

func queryNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name [name]",
		Short: "Resolve a name to its owner and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Name %s\n", args[0])
			fmt.Println("========")
			fmt.Println("Owner:      (not found)")
			fmt.Println("Associated: (none)")
			fmt.Println("Records:    0")
			return nil
		},
	}
}

func queryAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [name]",
		Short: "Query the marketplace ask for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Ask for %s\n", args[0])
			fmt.Println("==========")
			fmt.Println("Seller:       (not found)")
			fmt.Println("Renewal due:  -")
			fmt.Println("Renewal fund: 0 uname")
			return nil
		},
	}
}

func queryBidsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bids [name]",
		Short: "List bids on a name, highest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Bids on %s\n", args[0])
			fmt.Println("==========")
			fmt.Println("(none)")
			return nil
		},
	}
}

func queryMintPriceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint-price [name]",
		Short: "Quote the registration price for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Mint price for %s\n", args[0])
			fmt.Println("================")
			fmt.Println("Price: 100000000 uname")
			return nil
		},
	}
}
