package notify

import (
	"fmt"
	"strings"
	"time"

	"lelongwatch/internal/differ"
	"lelongwatch/internal/model"
)

// SummaryData carries everything the daily summary message needs.
type SummaryData struct {
	Now          time.Time
	Current      []model.Listing // Listings available this scan
	New          []model.Listing // First seen this scan
	Changed      []differ.Change // Properties with changes this scan
	TotalTracked int             // Database size after the scan
	BenchmarkPSF float64         // Market reference for the savings metric
	MaxNew       int             // New listings shown in detail
	MaxChanges   int             // Changes shown in detail
}

// DailySummary builds the Markdown daily summary message.
func DailySummary(d SummaryData) string {
	var b strings.Builder

	hasAlerts := len(d.New) > 0 || len(d.Changed) > 0
	if hasAlerts {
		b.WriteString("🚨 *PROPERTY ALERTS & DAILY SUMMARY* 🚨\n\n")
	} else {
		b.WriteString("📊 *DAILY PROPERTY SUMMARY* 📊\n\n")
	}

	b.WriteString("📅 *Daily Scan Report*\n")
	fmt.Fprintf(&b, "Date: %s\n\n", d.Now.Format("02 Jan 2006, 03:04 PM"))

	b.WriteString("📈 *Key Statistics:*\n")
	fmt.Fprintf(&b, "• Total Listings Available: *%d*\n", len(d.Current))
	fmt.Fprintf(&b, "• Total Properties Tracked: *%d*\n", d.TotalTracked)
	fmt.Fprintf(&b, "• New Listings Today: *%d*\n", len(d.New))
	fmt.Fprintf(&b, "• Properties with Changes: *%d*\n\n", len(d.Changed))

	if breakdown := differ.TypeBreakdown(d.Current); len(breakdown) > 0 {
		b.WriteString("📋 *Property Breakdown:*\n")
		for _, tc := range breakdown {
			fmt.Fprintf(&b, "• %s: %d\n", tc.Type.Label(), tc.Count)
		}
		b.WriteString("\n")
	}

	if len(d.New) > 0 {
		fmt.Fprintf(&b, "🆕 *NEW LISTINGS TODAY (%d):*\n", len(d.New))
		for i, l := range d.New {
			if i >= d.MaxNew {
				fmt.Fprintf(&b, "   ...and %d more new listings!\n", len(d.New)-d.MaxNew)
				break
			}
			fmt.Fprintf(&b, "%d. *%s*\n", i+1, l.Title)
			fmt.Fprintf(&b, "   💰 %s | 📅 %s\n", l.Price, l.AuctionDate)
			fmt.Fprintf(&b, "   📍 %s | 📏 %s\n", l.Location, l.Size)
			if savings, ok := differ.Savings(l, d.BenchmarkPSF); ok {
				if savings > 0 {
					fmt.Fprintf(&b, "   📊 Potential Savings: %.0f%% below market\n", savings)
				} else {
					b.WriteString("   📊 Premium property\n")
				}
			}
			b.WriteString("\n")
		}
	}

	if len(d.Changed) > 0 {
		fmt.Fprintf(&b, "🔄 *PROPERTY CHANGES TODAY (%d):*\n", len(d.Changed))
		for i, c := range d.Changed {
			if i >= d.MaxChanges {
				fmt.Fprintf(&b, "   ...and %d more changes!\n", len(d.Changed)-d.MaxChanges)
				break
			}
			fmt.Fprintf(&b, "%d. *%s*\n", i+1, c.Listing.Title)
			for _, ev := range c.Events {
				switch ev.Field {
				case model.FieldPrice:
					fmt.Fprintf(&b, "   💰 Price: %s → %s\n", ev.OldValue, ev.NewValue)
					if delta, ok := differ.PercentDelta(ev.OldValue, ev.NewValue); ok {
						if delta > 0 {
							fmt.Fprintf(&b, "   📈 Increased by %.1f%%\n", delta)
						} else {
							fmt.Fprintf(&b, "   📉 Decreased by %.1f%%\n", -delta)
						}
					}
				case model.FieldAuctionDate:
					fmt.Fprintf(&b, "   📅 Date: %s → %s\n", ev.OldValue, ev.NewValue)
				}
			}
			b.WriteString("\n")
		}
	}

	if in, ok := differ.MarketInsights(d.Current); ok {
		b.WriteString("💡 *Market Insights:*\n")
		fmt.Fprintf(&b, "• Average Price: RM%s\n", formatAmount(in.AvgPrice))
		fmt.Fprintf(&b, "• Price Range: RM%s - RM%s\n\n", formatAmount(in.MinPrice), formatAmount(in.MaxPrice))
	}

	b.WriteString("🔔 *Automated Daily Monitoring*\n")
	fmt.Fprintf(&b, "📱 Next scan: %s, 9:00 AM\n", d.Now.Add(24*time.Hour).Format("02 Jan 2006"))

	if !hasAlerts {
		b.WriteString("✨ No changes today - market is stable!")
	}

	return b.String()
}

// NoListingsNotice builds the message sent when a scan finds nothing.
func NoListingsNotice(totalTracked int) string {
	var b strings.Builder
	b.WriteString("⚠️ *Daily Property Scan* ⚠️\n\n")
	b.WriteString("No properties found in today's scan.\n")
	fmt.Fprintf(&b, "Total tracked: %d\n\n", totalTracked)
	b.WriteString("Will retry on the next scheduled run.")
	return b.String()
}

// FailureAlert builds the message sent when a scan fails outright.
func FailureAlert(now time.Time, err error) string {
	var b strings.Builder
	b.WriteString("🚨 *Property Monitor Error* 🚨\n\n")
	b.WriteString("Daily scan failed:\n")
	fmt.Fprintf(&b, "```\n%v\n```\n\n", err)
	fmt.Fprintf(&b, "Time: %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString("Will retry on the next scheduled run.")
	return b.String()
}

// formatAmount renders a RM amount with thousands separators, no decimals.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
