package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

func TestMonthlyRevenueAlwaysSixBuckets(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	series := MonthlyRevenue(nil, anchor)

	require.Len(t, series, SeriesLength)
	for _, b := range series {
		assert.Equal(t, int64(0), b.Value)
		assert.NotEmpty(t, b.Label)
	}
	assert.Equal(t, "janvier 2024", series[0].Label)
	assert.Equal(t, "juin 2024", series[5].Label)
}

func TestMonthlyRevenueBucketsByCalendarMonth(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "p1", Amount: 1000, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "p2", Amount: 500, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC))},
		{ID: "p3", Amount: 700, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))},
		// pending payments never count toward revenue
		{ID: "p4", Amount: 900, Status: models.PaymentPending, CreatedAt: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		// outside the 6-month window
		{ID: "p5", Amount: 800, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))},
	}

	series := MonthlyRevenue(payments, anchor)

	require.Len(t, series, SeriesLength)
	assert.Equal(t, int64(1500), series[5].Value) // juin
	assert.Equal(t, int64(700), series[3].Value)  // avril
	assert.Equal(t, int64(0), series[0].Value)    // janvier
}

func TestMonthlyRevenueUsesCreatedAtWhenPaidAtMissing(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "p1", Amount: 250, Status: models.PaymentPaid, CreatedAt: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		// no usable date at all: silently excluded
		{ID: "p2", Amount: 999, Status: models.PaymentPaid},
	}

	series := MonthlyRevenue(payments, anchor)

	assert.Equal(t, int64(250), series[4].Value) // mai
	var total int64
	for _, b := range series {
		total += b.Value
	}
	assert.Equal(t, int64(250), total)
}

func TestMonthlyRevenueSpansYearBoundary(t *testing.T) {
	anchor := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	series := MonthlyRevenue(nil, anchor)

	assert.Equal(t, "septembre 2023", series[0].Label)
	assert.Equal(t, "décembre 2023", series[3].Label)
	assert.Equal(t, "février 2024", series[5].Label)
}

func TestMonthlyRevenueIsPure(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "p1", Amount: 100, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))},
	}

	first := MonthlyRevenue(payments, anchor)
	second := MonthlyRevenue(payments, anchor)

	assert.Equal(t, first, second)
}

func TestPreviousMonthAtMonthEnd(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	prev := PreviousMonth(jan31)
	assert.Equal(t, time.December, prev.Month())
	assert.Equal(t, 2023, prev.Year())

	mar31 := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.February, PreviousMonth(mar31).Month())
}

func TestMonthlyRevenueAnchoredAtMonthEnd(t *testing.T) {
	anchor := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	series := MonthlyRevenue(nil, anchor)

	require.Len(t, series, SeriesLength)
	assert.Equal(t, "octobre 2023", series[0].Label)
	assert.Equal(t, "mars 2024", series[5].Label)
}

func TestMonthRevenue(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: "p1", Amount: 100, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "p2", Amount: 200, Status: models.PaymentPaid, PaidAt: datePtr(time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC))},
	}

	assert.Equal(t, int64(100), MonthRevenue(payments, now))
	assert.Equal(t, int64(200), MonthRevenue(payments, now.AddDate(0, -1, 0)))
}
