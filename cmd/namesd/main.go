package main

import "github.com/names-chain/names/cmd/namesd/cmd"

func main() {
	cmd.Execute()
}
