// Package store persists monitor state as JSON documents on disk.
//
// Files under the data directory:
//   - properties.json: property id -> latest known listing state + histories
//   - changes.json: append-only change event log
//   - daily_stats.json: latest scan statistics
//   - scraping_progress.json: latest fetch progress
//
// Every save writes a temp file in the same directory and renames it over
// the target, so an aborted run never leaves a partially written document.
package store
