// Package runner orchestrates one monitor invocation:
// fetch -> diff -> persist -> report -> notify.
//
// A fetch failure aborts the run with the store untouched. Report and
// notification failures are logged and never fail the run.
package runner
