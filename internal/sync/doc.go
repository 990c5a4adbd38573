// ABOUTME: Time sync status package
// ABOUTME: Owns the periodic sync check and the synced/offset status
// Package sync tracks whether the displayed time is confirmed against a
// reference clock.
//
// A Syncer runs one check when started and another every interval until
// stopped. Checks are pluggable: SimulatedChecker resolves after a fixed
// latency, NTPChecker queries an NTP server.
//
// Example:
//
//	s := sync.NewSyncer(sync.Config{Interval: time.Minute})
//	if err := s.Start(ctx); err != nil {
//	    return err
//	}
//	defer s.Stop()
//	fmt.Println(s.Status().Synced)
package sync
