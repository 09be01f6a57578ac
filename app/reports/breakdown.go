package reports

import "github.com/DigiPoint-niger/scolatek-sub000/app/models"

// CategoryTotal is one slice of a categorical breakdown.
type CategoryTotal struct {
	Category models.PaymentType `json:"category"`
	Value    int64              `json:"value"`
}

// BreakdownByType sums payment amounts per type over payments whose status is
// in the counted set ({paid} when empty). The result follows the
// caller-supplied category order exactly, one entry per requested category,
// 0 for categories with no matching rows. Payments whose type is not in the
// requested order are ignored. Chart legends rely on the order being stable.
func BreakdownByType(payments []models.Payment, counted map[models.PaymentStatus]bool, order []models.PaymentType) []CategoryTotal {
	if len(counted) == 0 {
		counted = map[models.PaymentStatus]bool{models.PaymentPaid: true}
	}

	index := make(map[models.PaymentType]int, len(order))
	out := make([]CategoryTotal, len(order))
	for i, cat := range order {
		out[i] = CategoryTotal{Category: cat}
		index[cat] = i
	}

	for i := range payments {
		p := &payments[i]
		if !counted[p.Status] {
			continue
		}
		if at, ok := index[p.Type]; ok {
			out[at].Value += p.Amount
		}
	}
	return out
}
