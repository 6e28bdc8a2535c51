// Package analysis characterizes how a recorded session was flown.
//
//   - [DominantFrequency]: strongest oscillation of one control axis, from
//     a sample and hold resampling of its step changes
//   - [AttitudeMap]: how often each pitch and roll cell was held
//
// # Oscillation
//
// Rapid reversals on one axis show up as a clear spectral peak:
//
//	hz, ok := analysis.DominantFrequency(times, throttle, 30)
//	if ok && hz > 2 {
//	    // pilot is pumping the throttle
//	}
package analysis
