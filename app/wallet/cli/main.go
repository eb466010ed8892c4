package main

import "github.com/JBennack23/IXH25-UNIPG/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
