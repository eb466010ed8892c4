// Package cmd contains the wallet tooling.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/wallet"
	"github.com/spf13/cobra"
)

var (
	accountName string
	accountPath string
)

const keyExtension = ".token"

func init() {
	rootCmd.PersistentFlags().StringVarP(&accountName, "account", "a", "private.token", "Name of the secret file.")
	rootCmd.PersistentFlags().StringVarP(&accountPath, "account-path", "p", "zblock/accounts/", "Path to the directory with secret files.")
}

var rootCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Tooling for ledger account identities",
}

// Execute runs the wallet command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getSecretPath() string {
	if !strings.HasSuffix(accountName, keyExtension) {
		accountName += keyExtension
	}

	return filepath.Join(accountPath, accountName)
}

func loadWallet() (wallet.Wallet, error) {
	secret, err := os.ReadFile(getSecretPath())
	if err != nil {
		return wallet.Wallet{}, fmt.Errorf("reading secret file: %w", err)
	}

	return wallet.FromSecret(strings.TrimSpace(string(secret))), nil
}
