package lelong

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"lelongwatch/internal/model"
)

// parsePage extracts listings from one search results page. Cards missing
// required fields or carrying malformed numerics are skipped with a
// warning and counted, never fatal.
func parsePage(body []byte, baseURL string, now time.Time, logger *slog.Logger) ([]model.Listing, int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("parse page html: %w", err)
	}

	var listings []model.Listing
	skipped := 0

	doc.Find("div.property-listing-box").Each(func(_ int, card *goquery.Selection) {
		l, err := parseCard(card, baseURL, now)
		if err != nil {
			skipped++
			logger.Warn("skipping malformed listing card", "err", err)
			return
		}
		listings = append(listings, l)
	})

	return listings, skipped, nil
}

func parseCard(card *goquery.Selection, baseURL string, now time.Time) (model.Listing, error) {
	title := strings.TrimSpace(card.Find("h2.property-title a").First().Text())
	if title == "" {
		title = strings.TrimSpace(card.Find("h2.property-title").First().Text())
	}
	if title == "" {
		return model.Listing{}, fmt.Errorf("listing card has no title")
	}

	price := strings.TrimSpace(card.Find("span.property-price").First().Text())
	if price == "" {
		return model.Listing{}, fmt.Errorf("listing %q has no price", title)
	}
	priceValue, err := model.ParsePrice(price)
	if err != nil {
		return model.Listing{}, err
	}

	location := strings.TrimSpace(card.Find("div.property-location").First().Text())
	size := strings.TrimSpace(card.Find("span.property-size").First().Text())
	auctionDate := strings.TrimSpace(card.Find("span.auction-date").First().Text())
	propertyType := model.ParsePropertyType(card.Find("span.property-type").First().Text())

	// Size is informational: an unparseable size only disables the
	// price-per-sqft metrics for this listing.
	sizeSqft, err := model.ParseSize(size)
	if err != nil {
		sizeSqft = 0
	}

	detailURL, _ := card.Find("h2.property-title a").First().Attr("href")
	if detailURL != "" && !strings.HasPrefix(detailURL, "http") {
		detailURL = strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(detailURL, "/")
	}

	return model.Listing{
		ID:           model.DeriveID(title, location, size),
		Title:        title,
		Price:        price,
		PriceValue:   priceValue,
		Location:     location,
		Size:         size,
		SizeSqft:     sizeSqft,
		AuctionDate:  auctionDate,
		PropertyType: propertyType,
		URL:          detailURL,
		FirstSeen:    now,
		LastUpdated:  now,
	}, nil
}
