package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var message string

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Produce the simulated signature for a message",
	Run:   signRun,
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().StringVarP(&message, "message", "m", "", "Message to sign.")
}

func signRun(cmd *cobra.Command, args []string) {
	w, err := loadWallet()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("signature:", w.Sign(message))
}
