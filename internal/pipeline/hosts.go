package pipeline

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zabbix-tools/problem-report/internal/types"
)

// namedEvent is the row shape after host normalization: one canonical host
// name, resolution foreign keys dropped.
type namedEvent struct {
	eventID      string
	clockSeconds int64
	rtsSeconds   int64
	severity     string
	host         string
	name         string
}

// normalizeHosts extracts a single canonical host name per record and drops
// rows that do not fit the expected shape. Zero or multiple host descriptors
// are unsupported input, not an error: the row is excluded and the batch
// continues. Rows with any empty field after extraction are excluded too.
func (p *ProblemPipeline) normalizeHosts(events []correlatedEvent) []namedEvent {
	named := make([]namedEvent, 0, len(events))
	for _, event := range events {
		host, ok := canonicalHost(event.hosts)
		if !ok {
			p.logger.WithFields(logrus.Fields{
				"eventid":    event.eventID,
				"host_count": len(event.hosts),
			}).Debug("dropping event with unsupported host shape")
			continue
		}
		if event.name == "" {
			continue
		}
		named = append(named, namedEvent{
			eventID:      event.eventID,
			clockSeconds: event.clockSeconds,
			rtsSeconds:   event.rtsSeconds,
			severity:     event.severity,
			host:         host,
			name:         event.name,
		})
	}
	return named
}

// canonicalHost selects the display-name attribute from the expected
// single-descriptor shape and upper-cases it.
func canonicalHost(hosts []types.HostDescriptor) (string, bool) {
	if len(hosts) != 1 {
		return "", false
	}
	host := strings.ToUpper(hosts[0].Host)
	if host == "" {
		return "", false
	}
	return host, true
}
