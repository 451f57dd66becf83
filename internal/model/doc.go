// Package model defines shared data types used across the monitor.
//
// Conventions:
//   - Prices: raw source strings ("RM351,000") are kept alongside parsed
//     float64 Ringgit values
//   - Sizes: raw strings ("1,755 sq.ft") alongside parsed square feet
//   - Property IDs: strings derived from title/location/size, stable
//     across runs; change event IDs are uuid.UUID
package model
