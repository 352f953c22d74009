// samarth-crm/cmd/receipts/export.go
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"samarth-crm/pkg/receipts"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the filtered receipts as an Excel file",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("search", "", "Substring match on student name or receipt number")
	exportCmd.Flags().String("date", "", "Exact payment date (YYYY-MM-DD)")
	exportCmd.Flags().Int("month", 0, "Payment month (1-12)")
	exportCmd.Flags().Int("year", 0, "Payment year")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default receipts_<timestamp>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	date, _ := cmd.Flags().GetString("date")
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	output, _ := cmd.Flags().GetString("output")

	criteria := receipts.Criteria{Search: search, Date: date, Month: month, Year: year}
	url := serverURL() + "/api/receipts/export/"
	if query := criteria.Values().Encode(); query != "" {
		url += "?" + query
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if token := os.Getenv("SAMARTH_AUTH_TOKEN"); token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("export failed: %s: %s", resp.Status, body)
	}

	if output == "" {
		output = fmt.Sprintf("receipts_%s.xlsx", time.Now().Format("20060102_150405"))
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", output)
	return nil
}
