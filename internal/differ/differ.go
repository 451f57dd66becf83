package differ

import (
	"time"

	"github.com/google/uuid"

	"lelongwatch/internal/model"
)

// Change pairs a listing's current state with the events recorded for it
// in one scan.
type Change struct {
	Listing model.Listing
	Events  []model.ChangeEvent
}

// Result is the outcome of diffing one scan against the database.
type Result struct {
	New       []model.Listing
	Changed   []Change
	Unchanged int
	Events    []model.ChangeEvent // All events from this scan, in input order
}

// Diff classifies fetched listings against db and mutates db in place:
// new listings are inserted with baseline histories, existing entries are
// updated (FirstSeen preserved, histories appended). Events are produced
// only for price and auction date differences on previously known
// identifiers, so re-running with identical data appends nothing.
func Diff(fetched []model.Listing, db map[string]model.StoredListing, now time.Time) Result {
	var result Result

	for _, current := range fetched {
		existing, known := db[current.ID]
		if !known {
			current.FirstSeen = now
			current.LastUpdated = now
			db[current.ID] = model.StoredListing{
				Listing:            current,
				PriceHistory:       []model.PricePoint{{Price: current.Price, Date: now}},
				AuctionDateHistory: []model.DatePoint{{AuctionDate: current.AuctionDate, Date: now}},
			}
			result.New = append(result.New, current)
			continue
		}

		var events []model.ChangeEvent

		if current.Price != existing.Price {
			events = append(events, model.ChangeEvent{
				ID:         uuid.New(),
				PropertyID: current.ID,
				Title:      current.Title,
				Field:      model.FieldPrice,
				OldValue:   existing.Price,
				NewValue:   current.Price,
				ChangedAt:  now,
			})
			existing.PriceHistory = append(existing.PriceHistory, model.PricePoint{Price: current.Price, Date: now})
		}

		if current.AuctionDate != existing.AuctionDate {
			events = append(events, model.ChangeEvent{
				ID:         uuid.New(),
				PropertyID: current.ID,
				Title:      current.Title,
				Field:      model.FieldAuctionDate,
				OldValue:   existing.AuctionDate,
				NewValue:   current.AuctionDate,
				ChangedAt:  now,
			})
			existing.AuctionDateHistory = append(existing.AuctionDateHistory, model.DatePoint{AuctionDate: current.AuctionDate, Date: now})
		}

		// Update the stored state with the current scan, keeping the
		// original first-seen timestamp.
		current.FirstSeen = existing.FirstSeen
		current.LastUpdated = now
		existing.Listing = current
		db[current.ID] = existing

		if len(events) == 0 {
			result.Unchanged++
			continue
		}

		result.Changed = append(result.Changed, Change{Listing: current, Events: events})
		result.Events = append(result.Events, events...)
	}

	return result
}
