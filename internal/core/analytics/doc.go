// Package analytics derives decision metrics from the funnel event log.
//
// Every function here is pure: it takes rows already read from storage and
// returns a fresh result, so calling it twice on an unchanged log yields the
// same output. Callers must not cache results without invalidating them on
// every appended event.
package analytics
