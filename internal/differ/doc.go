// Package differ classifies freshly fetched listings against the stored
// database as new, changed, or unchanged, and computes derived price
// metrics (percent deltas, price per square foot, savings vs market).
package differ
