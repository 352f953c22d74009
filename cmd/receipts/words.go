// samarth-crm/cmd/receipts/words.go
package main

import (
	"fmt"
	"strconv"

	"samarth-crm/pkg/format"

	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words [amount]",
	Short: "Spell an amount in words (Indian numbering)",
	Example: `  receipts words 1234567
  # Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven`,
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[0], err)
	}

	words, err := format.AmountInWords(amount)
	if err != nil {
		return err
	}

	fmt.Println(words)
	return nil
}
