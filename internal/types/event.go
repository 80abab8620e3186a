package types

// Display formats shared by the pipeline and the report builder.
const (
	ClockLayout    = "01/02/2006 15:04:05"
	DurationLayout = "15:04:05"
)

// RawEvent is a single monitoring event as returned by the Zabbix API
// (event.get with output "extend" and selectHosts ["host"]). Zabbix encodes
// every scalar as a JSON string, so numeric fields stay strings until the
// pipeline coerces them.
type RawEvent struct {
	EventID       string           `json:"eventid"`
	Clock         string           `json:"clock"`
	REventID      string           `json:"r_eventid"`
	Severity      string           `json:"severity"`
	Hosts         []HostDescriptor `json:"hosts"`
	Name          string           `json:"name"`
	Acknowledged  string           `json:"acknowledged"`
	CEventID      string           `json:"c_eventid"`
	CorrelationID string           `json:"correlationid"`
	NS            string           `json:"ns"`
	Object        string           `json:"object"`
	ObjectID      string           `json:"objectid"`
	Source        string           `json:"source"`
	Suppressed    string           `json:"suppressed"`
	UserID        string           `json:"userid"`
	Value         string           `json:"value"`
}

// HostDescriptor describes one monitored host attached to an event. Only the
// display name survives into the cleaned record.
type HostDescriptor struct {
	HostID string `json:"hostid"`
	Host   string `json:"host"`
}

// ResolvedProblem is one cleaned output record: a problem event merged with
// its resolution event.
type ResolvedProblem struct {
	EventID  int64  `json:"eventid"`
	Clock    string `json:"clock"`
	RtsClock string `json:"rts_clock"`
	Severity string `json:"severity"`
	Hosts    string `json:"hosts"`
	Name     string `json:"name"`
}
