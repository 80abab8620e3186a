package pipeline

import (
	"fmt"
	"strconv"
)

// computeDurations derives the resolution latency in seconds for every
// merged record. Resolution clocks are assumed to be at or after the problem
// clock; no skew correction happens here. A non-numeric timestamp is a
// batch-level contract violation.
func computeDurations(events []correlatedEvent) ([]correlatedEvent, error) {
	timed := make([]correlatedEvent, 0, len(events))
	for _, event := range events {
		clock, err := strconv.ParseInt(event.clock, 10, 64)
		if err != nil {
			return nil, NewContractViolationError(fmt.Sprintf("event %s has a non-numeric clock %q", event.eventID, event.clock))
		}
		rClock, err := strconv.ParseInt(event.rClock, 10, 64)
		if err != nil {
			return nil, NewContractViolationError(fmt.Sprintf("event %s has a non-numeric resolution clock %q", event.eventID, event.rClock))
		}
		event.clockSeconds = clock
		event.rtsSeconds = rClock - clock
		timed = append(timed, event)
	}
	return timed, nil
}
