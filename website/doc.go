// Package website downloads puzzle inputs from the puzzle site.
//
// Downloads are polite: an input already on disk is never fetched again,
// and after every successful download a throttle file records the earliest
// time the next one may start (15 minutes later). Transient failures
// (network errors, 5xx responses) are retried with exponential backoff.
//
// The session cookie and the input directory come from config.Config.
package website
