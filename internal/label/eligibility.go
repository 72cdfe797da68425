package label

import "time"

// RefundWindowDays is how long after creation a label may be refunded.
const RefundWindowDays = 30

// IsRefundEligible reports whether a refund may be requested for l at now.
// The window is computed with calendar-day arithmetic in now's location, and a
// label created exactly RefundWindowDays ago is already outside it.
func IsRefundEligible(l ShippingLabel, now time.Time) bool {
	if l.Anonymized || l.UsedDate != nil {
		return false
	}
	if l.CreatedDate != nil {
		windowStart := now.AddDate(0, 0, -RefundWindowDays)
		if !l.CreatedDate.After(windowStart) {
			return false
		}
	}
	return true
}

// IsReprintEligible reports whether l may still be reprinted at now.
func IsReprintEligible(l ShippingLabel, now time.Time) bool {
	if l.Anonymized || l.UsedDate != nil {
		return false
	}
	if l.ExpiryDate != nil && l.ExpiryDate.Before(now) {
		return false
	}
	return true
}

func IsDetailsOffered(l ShippingLabel) bool {
	return l.ShowDetails
}

// Actions evaluates every action for l. Refund and reprint live inside the
// detail view, so neither is offered while it is hidden.
func Actions(l ShippingLabel, now time.Time) ActionSet {
	if !IsDetailsOffered(l) {
		return ActionSet{}
	}
	return ActionSet{
		Details: true,
		Refund:  IsRefundEligible(l, now),
		Reprint: IsReprintEligible(l, now),
	}
}
