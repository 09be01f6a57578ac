package reports

import (
	"fmt"
	"time"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// SeriesLength is the fixed number of monthly buckets in a revenue series.
const SeriesLength = 6

// MonthBucket is one calendar month of revenue.
type MonthBucket struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthLabel formats a month the way the dashboards display it.
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", frenchMonths[month-1], year)
}

// MonthlyRevenue produces exactly SeriesLength buckets, one per calendar
// month, oldest to newest, ending at the anchor's month. A bucket holds the
// sum of paid payment amounts whose effective date falls in that calendar
// month (month/year equality in the anchor's location, not a rolling
// window). Months with no payments appear with value 0; the series is never
// sparse.
func MonthlyRevenue(payments []models.Payment, anchor time.Time) []MonthBucket {
	loc := anchor.Location()
	series := make([]MonthBucket, SeriesLength)

	// Anchor on the first of the month so stepping back never overflows
	// into a neighbouring month (Jan 31 minus two months is not Dec 1).
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)

	type monthKey struct {
		year  int
		month time.Month
	}
	index := make(map[monthKey]int, SeriesLength)
	for i := 0; i < SeriesLength; i++ {
		m := first.AddDate(0, i-(SeriesLength-1), 0)
		key := monthKey{m.Year(), m.Month()}
		series[i] = MonthBucket{Label: MonthLabel(key.year, key.month)}
		index[key] = i
	}

	for i := range payments {
		p := &payments[i]
		if p.Status != models.PaymentPaid {
			continue
		}
		d, ok := p.EffectiveDate()
		if !ok {
			continue
		}
		d = d.In(loc)
		if at, ok := index[monthKey{d.Year(), d.Month()}]; ok {
			series[at].Value += p.Amount
		}
	}
	return series
}

// monthBounds returns the half-open [start, next) interval of the calendar
// month containing t, in t's location.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// PreviousMonth returns an instant inside the calendar month before the one
// containing t. Callers use it instead of AddDate(0, -1, 0), which skips a
// month when t is past the 28th.
func PreviousMonth(t time.Time) time.Time {
	start, _ := monthBounds(t)
	return start.AddDate(0, 0, -1)
}

// MonthRevenue sums paid payment amounts whose effective date falls in the
// calendar month containing t.
func MonthRevenue(payments []models.Payment, t time.Time) int64 {
	start, next := monthBounds(t)
	var total int64
	for i := range payments {
		p := &payments[i]
		if p.Status != models.PaymentPaid {
			continue
		}
		d, ok := p.EffectiveDate()
		if !ok {
			continue
		}
		d = d.In(t.Location())
		if !d.Before(start) && d.Before(next) {
			total += p.Amount
		}
	}
	return total
}
