// samarth-crm/cmd/receipts/main.go

// receipts is a small terminal client for the fee receipts API. It is mostly
// used for quick checks against a running server without opening the web UI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Terminal client for the fee receipts API",
	Long: `receipts lists, summarizes and exports fee receipts from a running
samarth-crm server.

Environment variables:
  SAMARTH_SERVER_URL - base URL of the server (default http://localhost:8080)
  SAMARTH_AUTH_TOKEN - auth token issued by POST /login`,
}

func serverURL() string {
	if url := os.Getenv("SAMARTH_SERVER_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("Файл .env не найден", "error", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
