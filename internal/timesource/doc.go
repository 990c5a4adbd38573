// ABOUTME: Display time source package
// ABOUTME: Samples the injected clock on demand and attaches sync status
// Package timesource pairs the sampled time with sync status. The host
// decides the refresh cadence; Source only keeps the newest sample.
package timesource
