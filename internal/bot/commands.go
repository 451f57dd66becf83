package bot

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"lelongwatch/internal/model"
)

const (
	maxSearchResults = 15
	maxScanResults   = 20
)

func (b *Bot) cmdHelp(ctx context.Context, chatID int64) {
	var m strings.Builder
	m.WriteString("🤖 <b>Lelong Property Bot - Commands</b>\n\n")
	m.WriteString("<b>Search:</b>\n")
	m.WriteString("/search <i>keyword</i> - Search by keyword\n")
	m.WriteString("/type <i>type</i> - Filter by type (office, shop, retail, factory, warehouse)\n")
	m.WriteString("/under <i>price</i> - Properties under price (e.g. /under 500k)\n")
	m.WriteString("/above <i>price</i> - Properties above price\n")
	m.WriteString("/location <i>area</i> - Filter by location\n\n")
	m.WriteString("<b>Status:</b>\n")
	m.WriteString("/status - Latest scan statistics\n")
	m.WriteString("/new - New listings from last scan\n")
	m.WriteString("/changes - Recent property changes\n")
	m.WriteString("/summary - Market summary by type\n")
	m.WriteString("/reload - Reload data from files\n")
	b.reply(ctx, chatID, m.String())
}

func (b *Bot) cmdStatus(ctx context.Context, chatID int64) {
	stats, err := b.store.LoadStats()
	if err != nil {
		b.logger.Warn("load stats failed", "error", err)
	}
	progress, err := b.store.LoadProgress()
	if err != nil {
		b.logger.Warn("load progress failed", "error", err)
	}

	var m strings.Builder
	m.WriteString("📊 <b>Latest Scan Status</b>\n\n")

	if stats != nil {
		fmt.Fprintf(&m, "📅 Last Scan: %s\n", stats.Date.Format("02 Jan 2006, 03:04 PM"))
		fmt.Fprintf(&m, "📈 Total Listings: %d\n", stats.TotalListings)
		fmt.Fprintf(&m, "📁 Total Tracked: %d\n", stats.TotalTracked)
		fmt.Fprintf(&m, "🆕 New Listings: %d\n", stats.NewListings)
		fmt.Fprintf(&m, "🔄 Changes: %d\n\n", stats.ChangedProperties)
	}

	if progress != nil {
		m.WriteString("<b>Scraping Performance:</b>\n")
		fmt.Fprintf(&m, "• Pages: %d/%d\n", progress.PagesCompleted, progress.TotalPages)
		fmt.Fprintf(&m, "• Properties: %d\n", progress.PropertiesExtracted)
		fmt.Fprintf(&m, "• Success: %.1f%%\n", progress.SuccessRate)
		fmt.Fprintf(&m, "• Coverage: %.1f%%\n", progress.CoveragePercentage)
		fmt.Fprintf(&m, "• Duplicates Filtered: %d\n", progress.DuplicatesSkipped)
	}

	if stats == nil && progress == nil {
		m.WriteString("No scan data available yet.")
	}

	fmt.Fprintf(&m, "\n\n💾 Database: %d properties", len(b.properties))
	b.reply(ctx, chatID, m.String())
}

func (b *Bot) cmdNew(ctx context.Context, chatID int64) {
	stats, err := b.store.LoadStats()
	if err != nil || stats == nil {
		b.reply(ctx, chatID, "📭 No scan history available yet. Run the monitor first.")
		return
	}
	scanDate := stats.Date.Format("02 Jan 2006, 03:04 PM")
	if len(stats.NewListingIDs) == 0 {
		b.reply(ctx, chatID, fmt.Sprintf("📭 No new listings found in last scan (%s).", esc(scanDate)))
		return
	}

	var m strings.Builder
	fmt.Fprintf(&m, "🆕 <b>New Listings from %s</b>\n", esc(scanDate))
	fmt.Fprintf(&m, "Found %d new listing(s)\n\n", len(stats.NewListingIDs))

	count := 0
	for _, id := range stats.NewListingIDs {
		if count >= maxScanResults {
			break
		}
		if prop, ok := b.properties[id]; ok {
			count++
			m.WriteString(formatProperty(prop.Listing, count) + "\n")
		}
	}
	if extra := len(stats.NewListingIDs) - maxScanResults; extra > 0 {
		fmt.Fprintf(&m, "\n... and %d more", extra)
	}
	b.reply(ctx, chatID, m.String())
}

func (b *Bot) cmdChanges(ctx context.Context, chatID int64) {
	events, err := b.store.LoadChanges()
	if err != nil || len(events) == 0 {
		b.reply(ctx, chatID, "📭 No change history available yet.")
		return
	}

	// Most recent events first.
	if len(events) > maxScanResults {
		events = events[len(events)-maxScanResults:]
	}
	var m strings.Builder
	m.WriteString("🔄 <b>Recent Property Changes</b>\n")
	fmt.Fprintf(&m, "Showing %d change(s)\n\n", len(events))

	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		fmt.Fprintf(&m, "<b>%d. %s</b>\n", len(events)-i, esc(ev.Title))
		fmt.Fprintf(&m, "   %s: <s>%s</s> → <b>%s</b>\n\n", esc(ev.Field.Label()), esc(ev.OldValue), esc(ev.NewValue))
	}
	b.reply(ctx, chatID, m.String())
}

func (b *Bot) cmdSearch(ctx context.Context, chatID int64, query string) {
	if query == "" {
		b.reply(ctx, chatID, "Usage: /search <i>keyword</i>\nExample: /search shah alam office")
		return
	}

	terms := strings.Fields(strings.ToLower(query))
	results := b.filter(func(l model.Listing) bool {
		searchable := strings.ToLower(strings.Join([]string{l.Title, l.Location, string(l.PropertyType), l.Size}, " "))
		for _, term := range terms {
			if !strings.Contains(searchable, term) {
				return false
			}
		}
		return true
	})

	if len(results) == 0 {
		b.reply(ctx, chatID, fmt.Sprintf("🔍 No results for '<b>%s</b>'", esc(query)))
		return
	}
	b.replyResults(ctx, chatID, fmt.Sprintf("🔍 <b>Search: '%s'</b>", esc(query)), results, "Refine your search.")
}

func (b *Bot) cmdType(ctx context.Context, chatID int64, arg string) {
	if arg == "" {
		b.reply(ctx, chatID, "Usage: /type <i>type</i>\nTypes: office, shop, retail, factory, warehouse")
		return
	}

	want := model.ParsePropertyType(arg)
	if want == model.TypeUnknown {
		b.reply(ctx, chatID, fmt.Sprintf("🔍 Unknown type '%s'. Types: office, shop, retail, factory, warehouse", esc(arg)))
		return
	}

	results := b.filter(func(l model.Listing) bool { return l.PropertyType == want })
	if len(results) == 0 {
		b.reply(ctx, chatID, fmt.Sprintf("🔍 No '%s' properties found.", esc(want.Label())))
		return
	}
	b.replyResults(ctx, chatID, fmt.Sprintf("🏢 <b>%s Properties</b>", esc(want.Label())), results, "Use /under or /location to narrow down.")
}

func (b *Bot) cmdUnder(ctx context.Context, chatID int64, arg string) {
	maxPrice, err := parseAmount(arg)
	if err != nil {
		b.reply(ctx, chatID, "Usage: /under <i>price</i>\nExample: /under 500000 or /under 500k")
		return
	}

	results := b.filter(func(l model.Listing) bool {
		return l.PriceValue > 0 && l.PriceValue <= maxPrice
	})
	if len(results) == 0 {
		b.reply(ctx, chatID, fmt.Sprintf("🔍 No properties under RM%.0f", maxPrice))
		return
	}
	b.replyResults(ctx, chatID, fmt.Sprintf("💰 <b>Properties Under RM%.0f</b>", maxPrice), results, "Use /search or /type to narrow down.")
}

func (b *Bot) cmdAbove(ctx context.Context, chatID int64, arg string) {
	minPrice, err := parseAmount(arg)
	if err != nil {
		b.reply(ctx, chatID, "Usage: /above <i>price</i>\nExample: /above 1000000 or /above 1m")
		return
	}

	results := b.filter(func(l model.Listing) bool { return l.PriceValue >= minPrice })
	if len(results) == 0 {
		b.reply(ctx, chatID, fmt.Sprintf("🔍 No properties above RM%.0f", minPrice))
		return
	}
	b.replyResults(ctx, chatID, fmt.Sprintf("💰 <b>Properties Above RM%.0f</b>", minPrice), results, "Use /search or /type to narrow down.")
}

func (b *Bot) cmdLocation(ctx context.Context, chatID int64, area string) {
	if area == "" {
		b.reply(ctx, chatID, "Usage: /location <i>area</i>\nExample: /location shah alam")
		return
	}

	areaLower := strings.ToLower(area)
	results := b.filter(func(l model.Listing) bool {
		return strings.Contains(strings.ToLower(l.Location), areaLower)
	})
	if len(results) == 0 {
		b.reply(ctx, chatID, fmt.Sprintf("🔍 No properties found in '%s'", esc(area)))
		return
	}
	b.replyResults(ctx, chatID, fmt.Sprintf("📍 <b>Properties in '%s'</b>", esc(area)), results, "Use /under or /type to narrow down.")
}

func (b *Bot) cmdSummary(ctx context.Context, chatID int64) {
	type typeStats struct {
		count int
		total float64
		min   float64
		max   float64
	}
	stats := make(map[model.PropertyType]*typeStats)
	for _, prop := range b.properties {
		ts, ok := stats[prop.PropertyType]
		if !ok {
			ts = &typeStats{}
			stats[prop.PropertyType] = ts
		}
		ts.count++
		if p := prop.PriceValue; p > 0 {
			ts.total += p
			if ts.min == 0 || p < ts.min {
				ts.min = p
			}
			if p > ts.max {
				ts.max = p
			}
		}
	}

	types := make([]model.PropertyType, 0, len(stats))
	for t := range stats {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		if stats[types[i]].count != stats[types[j]].count {
			return stats[types[i]].count > stats[types[j]].count
		}
		return types[i] < types[j]
	})

	var m strings.Builder
	m.WriteString("📊 <b>Market Summary</b>\n")
	fmt.Fprintf(&m, "Total: %d properties\n\n", len(b.properties))

	for _, t := range types {
		ts := stats[t]
		fmt.Fprintf(&m, "<b>%s</b> (%d)\n", esc(t.Label()), ts.count)
		if ts.total > 0 {
			avg := ts.total / float64(ts.count)
			fmt.Fprintf(&m, "   Avg: RM%.0f | Range: RM%.0f - RM%.0f\n", avg, ts.min, ts.max)
		}
		m.WriteString("\n")
	}
	b.reply(ctx, chatID, m.String())
}

func (b *Bot) cmdReload(ctx context.Context, chatID int64) {
	if err := b.reload(); err != nil {
		b.logger.Warn("reload failed", "error", err)
		b.reply(ctx, chatID, "⚠️ Reload failed, keeping previous data.")
		return
	}
	b.reply(ctx, chatID, fmt.Sprintf("🔄 Data reloaded: %d properties", len(b.properties)))
}

// filter returns matching listings sorted by price ascending.
func (b *Bot) filter(match func(model.Listing) bool) []model.Listing {
	var results []model.Listing
	for _, prop := range b.properties {
		if match(prop.Listing) {
			results = append(results, prop.Listing)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].PriceValue < results[j].PriceValue
	})
	return results
}

func (b *Bot) replyResults(ctx context.Context, chatID int64, header string, results []model.Listing, hint string) {
	var m strings.Builder
	m.WriteString(header + "\n")
	fmt.Fprintf(&m, "Found %d result(s)\n\n", len(results))

	for i, l := range results {
		if i >= maxSearchResults {
			fmt.Fprintf(&m, "\n... and %d more. %s", len(results)-maxSearchResults, hint)
			break
		}
		m.WriteString(formatProperty(l, i+1) + "\n")
	}
	b.reply(ctx, chatID, m.String())
}

// formatProperty renders one listing for HTML display.
func formatProperty(l model.Listing, idx int) string {
	var m strings.Builder
	fmt.Fprintf(&m, "<b>%d. %s</b>\n", idx, esc(l.Title))
	fmt.Fprintf(&m, "   Type: %s\n", esc(l.PropertyType.Label()))
	fmt.Fprintf(&m, "   Price: %s\n", esc(l.Price))
	fmt.Fprintf(&m, "   Location: %s\n", esc(l.Location))
	fmt.Fprintf(&m, "   Size: %s\n", esc(l.Size))
	fmt.Fprintf(&m, "   Auction: %s\n", esc(l.AuctionDate))
	if l.URL != "" {
		fmt.Fprintf(&m, "   <a href=\"%s\">View Listing</a>\n", l.URL)
	}
	return m.String()
}

// parseAmount parses a price filter argument, accepting 500000, 500k, 1m.
func parseAmount(arg string) (float64, error) {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(arg), ",", ""))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "m")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v * multiplier, nil
}

func esc(s string) string {
	return html.EscapeString(s)
}

func formatChatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
