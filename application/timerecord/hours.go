package timerecord

import (
	"math"
	"time"

	"github.com/timetrkkr/timetrkkr/constant"
	"github.com/timetrkkr/timetrkkr/model"
	"github.com/timetrkkr/timetrkkr/utils/errors"
)

// elapsedMinutes returns the worked span at minute granularity. A record
// that is still open counts as zero until it is closed.
func elapsedMinutes(rec *model.TimeRecordEntity) int64 {
	if rec.TimeOut == nil {
		return 0
	}
	return int64(rec.TimeOut.Sub(rec.TimeIn) / time.Minute)
}

// ceilHours rounds an hour total up to two decimals. Rendered and overtime
// hours must never under-report toward the paying side, so rounding is
// always toward the ceiling: 7.001 becomes 7.01.
func ceilHours(hours float64) float64 {
	return math.Ceil(hours*100) / 100
}

// parseClock accepts a wall-clock time with or without seconds.
func parseClock(s string) (time.Time, error) {
	clock, err := time.Parse(constant.ClockLayout, s)
	if err == nil {
		return clock, nil
	}
	clock, err = time.Parse("15:04:05", s)
	if err != nil {
		return time.Time{}, errors.SetCustomErrorMessage(constant.ErrValidation,
			"Logout time "+s+" is invalid!")
	}
	return clock, nil
}
