// Package app wires the clock, defaults-file loader, formatter and
// resolver into a single conversion run. It owns configuration merging
// (flags over defaults file over built-ins) and logger construction.
package app
