// Booking policy: capacity, warning threshold, duration and overlap rules.
// All checks here are pure; the usecase layer decides what to do with them.
package booking

// ExceedsCapacity reports whether accepting one more booking would push the
// day past maxPerDay. The Nth booking of a day is accepted, the (N+1)th
// rejected.
func ExceedsCapacity(existingCount, maxPerDay int) bool {
	return existingCount >= maxPerDay
}

// AtWarningThreshold reports whether the day has reached the operator
// warning level. It holds exactly when the existing count equals the
// threshold, so the warning accompanies a single submission.
func AtWarningThreshold(existingCount, threshold int) bool {
	return existingCount == threshold
}

// ExceedsDuration reports whether the slot is longer than maxMinutes.
// A slot of exactly maxMinutes passes.
func ExceedsDuration(slot Interval, maxMinutes int) bool {
	return slot.DurationMinutes() > maxMinutes
}

// Overlaps reports whether the candidate slot intersects any existing slot
// under half-open [start,end) semantics. Touching boundaries do not overlap.
func Overlaps(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if overlapsOne(candidate, e) {
			return true
		}
	}
	return false
}

func overlapsOne(c, e Interval) bool {
	cs, ce := c.Start().Minutes(), c.End().Minutes()
	es, ee := e.Start().Minutes(), e.End().Minutes()
	// Equivalent to cs < ee && ce > es for well-formed intervals.
	if cs <= es && ce > es {
		return true
	}
	if cs < ee && ce >= ee {
		return true
	}
	if cs >= es && ce <= ee {
		return true
	}
	return false
}
