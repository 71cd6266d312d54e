package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/hubdispo/hubdispo/internal/config"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/hubdispo/hubdispo/internal/views"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	g := synth.New(synth.WithSeed(cfg.Generator.Seed))
	ds, err := synth.Build(g, cfg.Generator.Counts)
	if err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}

	stats := views.Dashboard(ds)

	fmt.Printf("=== Fleet Report (%s) ===\n", ds.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Printf("Shipments:          %d\n", stats.TotalShipments)
	fmt.Printf("In transit:         %d\n", stats.InTransit)
	fmt.Printf("Awaiting customs:   %d\n", stats.AwaitingCustoms)
	fmt.Printf("Declared value:     €%.2f\n", stats.TotalValue)
	fmt.Printf("Shipping cost:      €%.2f\n", stats.TotalShippingCost)

	fmt.Printf("\n=== Shipments by Status ===\n")
	statuses := make([]string, 0, len(stats.ByStatus))
	for status := range stats.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		fmt.Printf("%-18s  %d\n", status, stats.ByStatus[status])
	}

	fmt.Printf("\n=== Consolidation ===\n")
	fmt.Printf("Open groups:        %d\n", stats.OpenGroups)
	fmt.Printf("Average load:       %.1f%%\n", stats.AverageGroupLoad)
	fmt.Printf("Potential savings:  €%.2f\n", stats.PotentialSavings)

	top, err := views.FilterGroups(ds.Groups, views.GroupQuery{SortBy: views.SortSavings, Order: views.Desc, Limit: 3})
	if err != nil {
		log.Fatalf("Failed to rank groups: %v", err)
	}
	for i, group := range top {
		fmt.Printf("%d. %s  %s  €%.2f  %.1f%% loaded\n",
			i+1, group.ID, group.Name, group.EstimatedSavings, views.LoadPercent(group))
	}

	fmt.Printf("\n=== Alerts Needing Action ===\n")
	fmt.Printf("Active: %d, critical: %d\n", stats.ActiveAlerts, stats.CriticalAlerts)
	pending, err := views.FilterAlerts(ds.Alerts, views.AlertQuery{ActionRequired: true, Limit: 5})
	if err != nil {
		log.Fatalf("Failed to filter alerts: %v", err)
	}
	for i, a := range pending {
		fmt.Printf("%d. [%s] %s - %s\n", i+1, a.Severity, a.ID, a.Title)
	}
}
