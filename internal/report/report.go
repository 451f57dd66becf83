// Package report writes plain-text scan reports alongside the data files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lelongwatch/internal/differ"
	"lelongwatch/internal/model"
)

// Write renders a text report for one scan and writes it under dir,
// returning the report path.
func Write(dir string, now time.Time, stats model.ScanStats, newListings []model.Listing, changed []differ.Change) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Property scan report - %s\n", now.Format("02 Jan 2006, 03:04 PM"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "Total listings available: %d\n", stats.TotalListings)
	fmt.Fprintf(&b, "Total properties tracked: %d\n", stats.TotalTracked)
	fmt.Fprintf(&b, "New listings:             %d\n", stats.NewListings)
	fmt.Fprintf(&b, "Properties with changes:  %d\n\n", stats.ChangedProperties)

	if len(newListings) > 0 {
		b.WriteString("New listings\n------------\n")
		for _, l := range newListings {
			fmt.Fprintf(&b, "- %s\n", l.Title)
			fmt.Fprintf(&b, "  %s | %s | %s | %s\n", l.Price, l.AuctionDate, l.Location, l.Size)
		}
		b.WriteString("\n")
	}

	if len(changed) > 0 {
		b.WriteString("Changes\n-------\n")
		for _, c := range changed {
			fmt.Fprintf(&b, "- %s\n", c.Listing.Title)
			for _, ev := range c.Events {
				fmt.Fprintf(&b, "  %s: %s -> %s\n", ev.Field.Label(), ev.OldValue, ev.NewValue)
			}
		}
		b.WriteString("\n")
	}

	path := filepath.Join(dir, now.Format("scan-20060102-150405")+".txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
