package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/wallet"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new wallet secret",
	Run:   generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateRun(cmd *cobra.Command, args []string) {
	w, err := wallet.New()
	if err != nil {
		log.Fatal(err)
	}

	path := getSecretPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatal(err)
	}

	// The secret is everything; keep the file private to the owner.
	if err := os.WriteFile(path, []byte(w.Secret()), 0600); err != nil {
		log.Fatal(err)
	}

	fmt.Println("account:", w.AccountID())
}
