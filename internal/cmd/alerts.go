package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/hubdispo/hubdispo/internal/models"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/spf13/cobra"
)

var (
	alertLimit  int
	showDetails bool
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show the operational alert catalog",
	Long: `Print the first entries of the fixed alert catalog, the same list the
dashboard's alert center receives. Timestamps are relative to now.`,
	RunE: listAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)

	alertsCmd.Flags().IntVar(&alertLimit, "limit", synth.AlertCatalogSize, "Number of alerts to show")
	alertsCmd.Flags().BoolVar(&showDetails, "details", false, "Show descriptions and suggestions")
}

func listAlerts(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	alerts := synth.Alerts(time.Now().UTC(), alertLimit)
	fmt.Fprintf(out, "🔔 Showing %d of %d alerts\n\n", len(alerts), synth.AlertCatalogSize)

	for _, a := range alerts {
		fmt.Fprintf(out, "%s %s [%s] %s\n", severityIcon(a.Severity), a.ID, a.Severity, a.Title)
		fmt.Fprintf(out, "   type: %s  status: %s  age: %s\n", a.Type, a.Status, age(a.CreatedAt))
		if ref := reference(a); ref != "" {
			fmt.Fprintf(out, "   ref: %s\n", ref)
		}
		if a.EstimatedSavings != nil {
			fmt.Fprintf(out, "   savings: €%.2f\n", *a.EstimatedSavings)
		}
		if a.EstimatedDelay != nil {
			fmt.Fprintf(out, "   delay: %dh\n", *a.EstimatedDelay)
		}
		if showDetails {
			fmt.Fprintf(out, "   %s\n", a.Description)
			for _, s := range a.Suggestions {
				fmt.Fprintf(out, "   - %s\n", s)
			}
		}
		fmt.Fprintln(out, strings.Repeat("-", 60))
	}
	return nil
}

func severityIcon(severity string) string {
	switch severity {
	case models.SeverityCritical:
		return "🔴"
	case models.SeverityHigh:
		return "🟠"
	case models.SeverityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

func reference(a models.Alert) string {
	switch {
	case a.ShipmentID != "" && a.ConsolidationID != "":
		return a.ShipmentID + " / " + a.ConsolidationID
	case a.ShipmentID != "":
		return a.ShipmentID
	default:
		return a.ConsolidationID
	}
}

func age(t time.Time) string {
	d := time.Since(t).Round(time.Minute)
	if d >= 24*time.Hour {
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
	return d.String()
}
