// ABOUTME: Clock face math and readout formatting
// ABOUTME: Turns an Instant into hand angles, binary columns and display strings
// Package clock provides the pure time decomposition behind the widget.
//
// Everything here is a total function of an Instant:
//   - HandAngles: hour, minute and second hand rotation in degrees
//   - BinaryColumns: the six BCD digits of HH:MM:SS with their cell states
//   - Ticks, Hands: static and time-dependent analog face geometry
//   - Format*: UTC, local and POSIX readouts
//
// Example:
//
//	inst := clock.NewInstant(time.Now(), time.Local)
//	d := clock.Decompose(inst)
//	fmt.Printf("second hand at %.1f°\n", d.Angles.Second)
//	fmt.Println(clock.FormatUTCTime(inst), clock.FormatPOSIX(inst))
package clock
