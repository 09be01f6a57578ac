package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

func TestBreakdownByTypePreservesCallerOrder(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Amount: 1000, Status: models.PaymentPaid, Type: models.PaymentTypeTuition},
		{ID: "p2", Amount: 0, Status: models.PaymentPaid, Type: models.PaymentTypeSubscription},
	}
	order := []models.PaymentType{
		models.PaymentTypeTuition,
		models.PaymentTypeSubscription,
		models.PaymentTypeOther,
	}

	out := BreakdownByType(payments, nil, order)

	require.Len(t, out, 3)
	assert.Equal(t, CategoryTotal{Category: models.PaymentTypeTuition, Value: 1000}, out[0])
	assert.Equal(t, CategoryTotal{Category: models.PaymentTypeSubscription, Value: 0}, out[1])
	assert.Equal(t, CategoryTotal{Category: models.PaymentTypeOther, Value: 0}, out[2])
}

func TestBreakdownByTypeFiltersByStatus(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Amount: 300, Status: models.PaymentPaid, Type: models.PaymentTypeTuition},
		{ID: "p2", Amount: 400, Status: models.PaymentPending, Type: models.PaymentTypeTuition},
		{ID: "p3", Amount: 500, Status: models.PaymentFailed, Type: models.PaymentTypeTuition},
	}
	order := []models.PaymentType{models.PaymentTypeTuition}

	out := BreakdownByType(payments, nil, order)

	assert.Equal(t, int64(300), out[0].Value)
}

func TestBreakdownByTypeIgnoresUnlistedCategories(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Amount: 300, Status: models.PaymentPaid, Type: models.PaymentTypeOther},
	}
	order := []models.PaymentType{models.PaymentTypeTuition}

	out := BreakdownByType(payments, nil, order)

	require.Len(t, out, 1)
	assert.Equal(t, int64(0), out[0].Value)
}

func TestBreakdownByTypeEmptyInput(t *testing.T) {
	order := []models.PaymentType{models.PaymentTypeTuition, models.PaymentTypeOther}

	out := BreakdownByType(nil, nil, order)

	require.Len(t, out, 2)
	for _, c := range out {
		assert.Equal(t, int64(0), c.Value)
	}
}
