package report

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"lelongwatch/internal/differ"
	"lelongwatch/internal/model"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 9, 15, 9, 30, 0, 0, time.UTC)

	stats := model.ScanStats{
		Date:              now,
		TotalListings:     8,
		TotalTracked:      10,
		NewListings:       1,
		ChangedProperties: 1,
	}
	newListings := []model.Listing{{
		Title: "Emporis Shop Lot", Price: "RM735,900",
		AuctionDate: "25 Sep 2025 (Thu)", Location: "Kota Damansara, Selangor", Size: "1,679 sq.ft",
	}}
	changed := []differ.Change{{
		Listing: model.Listing{Title: "Radia Office Strata"},
		Events: []model.ChangeEvent{{
			ID: uuid.New(), Field: model.FieldPrice,
			OldValue: "RM351,000", NewValue: "RM320,000",
		}},
	}}

	path, err := Write(dir, now, stats, newListings, changed)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.HasSuffix(path, "scan-20250915-093000.txt") {
		t.Errorf("path = %q, want timestamped name", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"Total listings available: 8",
		"Emporis Shop Lot",
		"Auction Price: RM351,000 -> RM320,000",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}

func TestWriteEmptyScan(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	path, err := Write(dir, now, model.ScanStats{}, nil, nil)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if strings.Contains(string(data), "New listings\n") {
		t.Error("empty scan should not render a new listings section")
	}
}
