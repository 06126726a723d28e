package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30). All "today"
// computations (invoice numbering, period cutoffs) run in IST.
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// StartOfDay returns the start of day (00:00:00) in IST for the given time
func StartOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 0, 0, 0, 0, IST)
}

// EndOfDay returns the end of day (23:59:59.999...) in IST for the given time
func EndOfDay(t time.Time) time.Time {
	ist := t.In(IST)
	return time.Date(ist.Year(), ist.Month(), ist.Day(), 23, 59, 59, 999999999, IST)
}

// EndOfMonth returns the end of the last day of t's month in IST.
func EndOfMonth(t time.Time) time.Time {
	ist := t.In(IST)
	firstOfNext := time.Date(ist.Year(), ist.Month(), 1, 0, 0, 0, 0, IST).AddDate(0, 1, 0)
	return EndOfDay(firstOfNext.AddDate(0, 0, -1))
}

// EndOfYear returns Dec 31 23:59:59.999... of the given year in IST.
func EndOfYear(year int) time.Time {
	return time.Date(year, time.December, 31, 23, 59, 59, 999999999, IST)
}

// DateStamp formats t as YYYYMMDD in IST, the form embedded in invoice
// numbers.
func DateStamp(t time.Time) string {
	return t.In(IST).Format("20060102")
}

// Common layouts for IST formatting
const (
	DateLayout    = "2006-01-02"
	MonthDay      = "Jan 2"
	MonthYear     = "Jan 2006"
	DisplayLayout = "02 Jan 2006"
)
