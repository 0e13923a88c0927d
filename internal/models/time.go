package models

// millisThreshold separates epoch-seconds values from epoch-milliseconds
// values: 10^12 ms is September 2001, while 10^12 s is ~33,000 years out.
const millisThreshold = 1_000_000_000_000

// EnsureMillis normalizes a time value to epoch milliseconds: anything below
// the threshold is assumed to be epoch seconds and multiplied by 1000.
//
// This is a heuristic and a known fragility: a genuine millisecond value
// before September 2001 would be misread as seconds. Imported data is old
// enough in practice that the trade-off holds; all call sites go through
// this one function so the threshold lives in exactly one place.
func EnsureMillis(t int64) int64 {
	if t < millisThreshold {
		return t * 1000
	}
	return t
}
