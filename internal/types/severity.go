package types

const (
	SeverityNotClassified = "Not Classified"
	SeverityInformation   = "Information"
	SeverityWarning       = "Warning"
	SeverityAverage       = "Average"
	SeverityHigh          = "High"
	SeverityDisaster      = "Disaster"
)

var severityLabels = map[string]string{
	"0": SeverityNotClassified,
	"1": SeverityInformation,
	"2": SeverityWarning,
	"3": SeverityAverage,
	"4": SeverityHigh,
	"5": SeverityDisaster,
}

// Zabbix frontend colors, keyed by severity label.
var severityColors = map[string]string{
	SeverityNotClassified: "#97AAB3",
	SeverityInformation:   "#7499FF",
	SeverityWarning:       "#FFC859",
	SeverityAverage:       "#FFA059",
	SeverityHigh:          "#E97659",
	SeverityDisaster:      "#E45959",
}

// SeverityLabel maps a Zabbix severity code to its label. Codes outside
// {"0".."5"} return an empty label and false; callers must surface that as a
// data-quality signal instead of substituting a valid-looking label.
func SeverityLabel(code string) (string, bool) {
	label, ok := severityLabels[code]
	return label, ok
}

// SeverityLabels returns the six labels ordered by ascending severity code.
func SeverityLabels() []string {
	return []string{
		SeverityNotClassified,
		SeverityInformation,
		SeverityWarning,
		SeverityAverage,
		SeverityHigh,
		SeverityDisaster,
	}
}

// SeverityColor returns the chart color for a severity label, empty when the
// label is unknown.
func SeverityColor(label string) string {
	return severityColors[label]
}
