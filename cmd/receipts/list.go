// samarth-crm/cmd/receipts/list.go
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"samarth-crm/pkg/format"
	"samarth-crm/pkg/receipts"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List receipts with optional filters",
	Example: `  # All receipts
  receipts list

  # Receipts for January 2025 matching a name fragment
  receipts list --month 1 --year 2025 --search patil`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().String("search", "", "Substring match on student name or receipt number")
	listCmd.Flags().String("date", "", "Exact payment date (YYYY-MM-DD)")
	listCmd.Flags().Int("month", 0, "Payment month (1-12)")
	listCmd.Flags().Int("year", 0, "Payment year")
	listCmd.Flags().Bool("summary", false, "Print only the totals line")
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	date, _ := cmd.Flags().GetString("date")
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	summaryOnly, _ := cmd.Flags().GetBool("summary")

	store := receipts.NewStore(serverURL())
	store.AuthToken = os.Getenv("SAMARTH_AUTH_TOKEN")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Load(ctx); err != nil {
		return err
	}

	view := store.SetCriteria(receipts.Criteria{
		Search: search,
		Date:   date,
		Month:  month,
		Year:   year,
	})
	summary := receipts.Summarize(view)

	if !summaryOnly {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RECEIPT\tDATE\tSTUDENT\tCOURSE\tPAID\tREMAINING")
		for _, r := range view {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ReceiptNo,
				format.Date(r.PaymentDate),
				r.StudentName,
				r.Course,
				format.Amount(r.PaidFees),
				format.Amount(r.RemainingFees),
			)
		}
		w.Flush()
	}

	fmt.Printf("Receipts: %d  Paid: %s  Remaining: %s\n",
		summary.Count, format.Amount(summary.TotalPaid), format.Amount(summary.TotalRemaining))
	return nil
}
