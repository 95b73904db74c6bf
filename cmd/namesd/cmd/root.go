package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var defaultHome = os.ExpandEnv("$HOME/.namesd")

func NewRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "namesd",
		Short: "Names - On-Chain Name Service",
		Long: `Names is a blockchain name service with a built-in marketplace.
Every name is an NFT that is listed for sale the moment it is minted.

Registration and renewal:
  Mint:  pay the character-length price, receive the name, get listed
  Renew: yearly, at the higher of the base price and 0.5% of the top bid

Names that are not renewed are sold to their highest valid bidder.`,
	}

	rootCmd.AddCommand(
		InitCmd(),
		StartCmd(),
		StatusCmd(),
		QueryCmd(),
		TxCmd(),
	)

	rootCmd.PersistentFlags().String("home", defaultHome, "node home directory")

	return rootCmd, nil
}

func Execute() {
	rootCmd, err := NewRootCmd()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
