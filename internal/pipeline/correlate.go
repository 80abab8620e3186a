package pipeline

// correlatedEvent is a problem event merged with the clock of its resolution
// event. Timestamps stay strings until computeDurations coerces them.
type correlatedEvent struct {
	projectedEvent
	rClock       string
	clockSeconds int64
	rtsSeconds   int64
}

// correlate pairs each problem event with its resolution event. The
// r_eventid field on a problem event is a foreign key into the batch's own
// eventid column; an inner join keeps only problems whose resolution fired
// inside the same batch. Problems with no r_eventid, a zero r_eventid, or an
// r_eventid pointing outside the batch are excluded. Duplicate eventids are
// undefined behavior upstream; the index keeps the last one seen.
func correlate(events []projectedEvent) []correlatedEvent {
	index := make(map[string]string, len(events))
	for _, event := range events {
		index[event.eventID] = event.clock
	}

	merged := make([]correlatedEvent, 0, len(events))
	for _, event := range events {
		if event.rEventID == "" || event.rEventID == "0" {
			continue
		}
		rClock, ok := index[event.rEventID]
		if !ok {
			continue
		}
		merged = append(merged, correlatedEvent{
			projectedEvent: event,
			rClock:         rClock,
		})
	}
	return merged
}
