package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"lelongwatch/internal/differ"
	"lelongwatch/internal/model"
)

func summaryFixture() SummaryData {
	now := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	current := []model.Listing{
		{
			Title: "Radia Office Strata", Price: "RM320,000", PriceValue: 320000,
			Location: "Shah Alam, Selangor", Size: "1,755 sq.ft", SizeSqft: 1755,
			AuctionDate: "18 Sep 2025 (Thu)", PropertyType: model.TypeOffice,
		},
		{
			Title: "Emporis Shop Lot", Price: "RM735,900", PriceValue: 735900,
			Location: "Kota Damansara, Selangor", Size: "1,679 sq.ft", SizeSqft: 1679,
			AuctionDate: "25 Sep 2025 (Thu)", PropertyType: model.TypeShop,
		},
	}
	return SummaryData{
		Now:          now,
		Current:      current,
		New:          current[1:2],
		TotalTracked: 5,
		BenchmarkPSF: 1280,
		MaxNew:       3,
		MaxChanges:   2,
		Changed: []differ.Change{{
			Listing: current[0],
			Events: []model.ChangeEvent{{
				ID:         uuid.New(),
				PropertyID: "radia",
				Title:      "Radia Office Strata",
				Field:      model.FieldPrice,
				OldValue:   "RM351,000",
				NewValue:   "RM320,000",
				ChangedAt:  now,
			}},
		}},
	}
}

func TestDailySummaryWithAlerts(t *testing.T) {
	msg := DailySummary(summaryFixture())

	for _, want := range []string{
		"PROPERTY ALERTS",
		"Total Listings Available: *2*",
		"Total Properties Tracked: *5*",
		"New Listings Today: *1*",
		"Properties with Changes: *1*",
		"Office: 1",
		"Shop: 1",
		"Emporis Shop Lot",
		"RM351,000 → RM320,000",
		"Decreased by 8.8%",
		"Average Price: RM527,950",
		"Price Range: RM320,000 - RM735,900",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("summary missing %q\n%s", want, msg)
		}
	}

	if strings.Contains(msg, "market is stable") {
		t.Error("alert summary should not claim a stable market")
	}
}

func TestDailySummaryQuietDay(t *testing.T) {
	d := summaryFixture()
	d.New = nil
	d.Changed = nil

	msg := DailySummary(d)

	if !strings.Contains(msg, "DAILY PROPERTY SUMMARY") {
		t.Error("quiet summary should use the plain header")
	}
	if !strings.Contains(msg, "market is stable") {
		t.Error("quiet summary should note a stable market")
	}
	if strings.Contains(msg, "NEW LISTINGS TODAY") {
		t.Error("quiet summary should not list new listings")
	}
}

func TestDailySummarySavingsMetric(t *testing.T) {
	d := summaryFixture()
	// 735900 / 1679 ≈ RM438/sqft against RM1280 ≈ 66% below market.
	msg := DailySummary(d)
	if !strings.Contains(msg, "Potential Savings: 66% below market") {
		t.Errorf("summary missing savings metric\n%s", msg)
	}
}

func TestDailySummaryCapsLists(t *testing.T) {
	d := summaryFixture()
	d.MaxNew = 1
	extra := d.Current[0]
	extra.Title = "Another New Listing"
	d.New = append(d.New, extra, extra)

	msg := DailySummary(d)
	if !strings.Contains(msg, "...and 2 more new listings!") {
		t.Errorf("summary missing overflow footer\n%s", msg)
	}
}

func TestNoListingsNotice(t *testing.T) {
	msg := NoListingsNotice(12)
	if !strings.Contains(msg, "No properties found") {
		t.Errorf("notice missing body: %s", msg)
	}
	if !strings.Contains(msg, "Total tracked: 12") {
		t.Errorf("notice missing tracked count: %s", msg)
	}
}

func TestFailureAlert(t *testing.T) {
	now := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	msg := FailureAlert(now, errors.New("fetch page 1: listing source error 503"))
	if !strings.Contains(msg, "listing source error 503") {
		t.Errorf("alert missing error: %s", msg)
	}
	if !strings.Contains(msg, "2025-09-15 09:00:00") {
		t.Errorf("alert missing timestamp: %s", msg)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{351000, "351,000"},
		{1200000, "1,200,000"},
		{950, "950"},
		{527950, "527,950"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
