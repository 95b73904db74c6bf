package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [moniker]",
		Short: "Initialize node configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, _ := cmd.Flags().GetString("home")
			fmt.Printf("Initializing node %q\n", args[0])
			fmt.Printf("  Home:     %s\n", home)
			fmt.Println("  Chain ID: names-1")
			fmt.Println("  Genesis:  config/genesis.json")
			return nil
		},
	}
	return cmd
}

func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start Names node",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Starting Names node...")
			fmt.Println("  RPC: http://localhost:26657")
			fmt.Println("  P2P: tcp://0.0.0.0:26656")
			fmt.Println("")
			fmt.Println("Name service modules active:")
			fmt.Println("  - minter: registration and whitelists")
			fmt.Println("  - marketplace: asks, bids, renewals")
			fmt.Println("  - names: NFT collection and records")
			fmt.Println("")
			fmt.Println("[Press Ctrl+C to stop]")

			select {}
		},
	}
	return cmd
}

func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show node status",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Names Node Status")
			fmt.Println("=================")
			fmt.Println("Chain ID:     names-1")
			fmt.Println("Block Height: 0")
			fmt.Println("Names Minted: 0")
			fmt.Println("Active Asks:  0")
			fmt.Println("")
			fmt.Println("Next renewal due: none")
			return nil
		},
	}
	return cmd
}
