package constant

// FullDayMinutes is the standard working day. Records below it are
// under-time, minutes above it count as excess.
const FullDayMinutes = 480

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Accepted year range for monthly report queries.
const (
	MinReportYear = 1990
	MaxReportYear = 2030
)
