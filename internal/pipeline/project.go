package pipeline

import (
	"fmt"

	"github.com/zabbix-tools/problem-report/internal/types"
)

// projectedEvent carries only the fields the later stages need. Everything
// else from the raw record (acknowledgement flags, correlation id, object
// ids, ...) is dropped here.
type projectedEvent struct {
	eventID  string
	clock    string
	rEventID string
	severity string
	hosts    []types.HostDescriptor
	name     string
}

// projectFields reduces each raw event to the retained columns. An event
// without an id, clock or severity means the upstream contract is broken and
// the whole batch is rejected.
func projectFields(events []types.RawEvent) ([]projectedEvent, error) {
	projected := make([]projectedEvent, 0, len(events))
	for i, event := range events {
		if event.EventID == "" || event.Clock == "" || event.Severity == "" {
			return nil, NewContractViolationError(fmt.Sprintf("event at position %d is missing a required field (eventid=%q clock=%q severity=%q)", i, event.EventID, event.Clock, event.Severity))
		}
		projected = append(projected, projectedEvent{
			eventID:  event.EventID,
			clock:    event.Clock,
			rEventID: event.REventID,
			severity: event.Severity,
			hosts:    event.Hosts,
			name:     event.Name,
		})
	}
	return projected, nil
}
