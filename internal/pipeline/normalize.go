package pipeline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zabbix-tools/problem-report/internal/types"
)

// finalize enforces the output column types: display-formatted onset
// timestamp, integer event id, severity label, and HH:MM:SS resolution
// latency. An unmapped severity code keeps the row with an empty label and a
// warning; it must stay visible downstream rather than being coerced to a
// valid-looking label. Durations of a day or more wrap past the hour field.
func (p *ProblemPipeline) finalize(events []namedEvent) ([]types.ResolvedProblem, error) {
	problems := make([]types.ResolvedProblem, 0, len(events))
	for _, event := range events {
		eventID, err := strconv.ParseInt(event.eventID, 10, 64)
		if err != nil {
			return nil, NewContractViolationError(fmt.Sprintf("event has a non-numeric eventid %q", event.eventID))
		}
		label, ok := types.SeverityLabel(event.severity)
		if !ok {
			p.logger.WithFields(logrus.Fields{
				"eventid":  event.eventID,
				"severity": event.severity,
			}).Warn("severity code has no label")
		}
		problems = append(problems, types.ResolvedProblem{
			EventID:  eventID,
			Clock:    time.Unix(event.clockSeconds, 0).UTC().Format(types.ClockLayout),
			RtsClock: time.Unix(event.rtsSeconds, 0).UTC().Format(types.DurationLayout),
			Severity: label,
			Hosts:    event.host,
			Name:     event.name,
		})
	}
	return problems, nil
}
