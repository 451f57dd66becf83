package differ

import (
	"math"
	"sort"

	"lelongwatch/internal/model"
)

// PercentDelta computes the percent change between two raw price strings,
// rounded to one decimal. ok is false when either price is malformed.
func PercentDelta(oldRaw, newRaw string) (float64, bool) {
	oldV, err := model.ParsePrice(oldRaw)
	if err != nil {
		return 0, false
	}
	newV, err := model.ParsePrice(newRaw)
	if err != nil {
		return 0, false
	}
	return round1((newV - oldV) / oldV * 100), true
}

// PricePerSqft computes the listing's auction price per square foot.
// ok is false when price or size is unparseable (recorded as zero).
func PricePerSqft(l model.Listing) (float64, bool) {
	if l.PriceValue <= 0 || l.SizeSqft <= 0 {
		return 0, false
	}
	return l.PriceValue / l.SizeSqft, true
}

// Savings computes how far below the benchmark market price per sqft the
// listing sits, as a percentage (positive = below market).
func Savings(l model.Listing, benchmarkPSF float64) (float64, bool) {
	psf, ok := PricePerSqft(l)
	if !ok || benchmarkPSF <= 0 {
		return 0, false
	}
	return (benchmarkPSF - psf) / benchmarkPSF * 100, true
}

// Insights aggregates prices over one scan's listings.
type Insights struct {
	Count    int
	AvgPrice float64
	MinPrice float64
	MaxPrice float64
}

// MarketInsights computes price aggregates over listings with parseable
// prices. ok is false when no listing has a usable price.
func MarketInsights(listings []model.Listing) (Insights, bool) {
	var in Insights
	var total float64
	for _, l := range listings {
		if l.PriceValue <= 0 {
			continue
		}
		if in.Count == 0 || l.PriceValue < in.MinPrice {
			in.MinPrice = l.PriceValue
		}
		if l.PriceValue > in.MaxPrice {
			in.MaxPrice = l.PriceValue
		}
		total += l.PriceValue
		in.Count++
	}
	if in.Count == 0 {
		return Insights{}, false
	}
	in.AvgPrice = total / float64(in.Count)
	return in, true
}

// TypeCount is one row of a per-type breakdown.
type TypeCount struct {
	Type  model.PropertyType
	Count int
}

// TypeBreakdown counts listings per property type, sorted by type label.
func TypeBreakdown(listings []model.Listing) []TypeCount {
	counts := make(map[model.PropertyType]int)
	for _, l := range listings {
		counts[l.PropertyType]++
	}
	breakdown := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		breakdown = append(breakdown, TypeCount{Type: t, Count: n})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Type < breakdown[j].Type
	})
	return breakdown
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
