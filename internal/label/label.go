package label

import "time"

// ShippingLabel is a snapshot of a purchased label as the store holds it.
// Nil dates mean the event has not happened yet.
type ShippingLabel struct {
	LabelID     int64
	LabelIndex  int
	OrderID     int64
	SiteID      int64
	CreatedDate *time.Time
	UsedDate    *time.Time
	ExpiryDate  *time.Time
	Anonymized  bool
	Tracking    string
	CarrierID   string
	ShowDetails bool
}

// ActionSet lists which label actions are offered.
type ActionSet struct {
	Details bool `json:"details"`
	Refund  bool `json:"refund"`
	Reprint bool `json:"reprint"`
}

// ItemView is what a rendering layer needs to draw one label row.
type ItemView struct {
	LabelID     int64     `json:"label_id"`
	Number      int       `json:"number"`
	ShowDetails bool      `json:"show_details"`
	Tracking    string    `json:"tracking,omitempty"`
	CarrierID   string    `json:"carrier_id,omitempty"`
	Actions     ActionSet `json:"actions"`
}

func Present(l ShippingLabel, now time.Time) ItemView {
	view := ItemView{
		LabelID:     l.LabelID,
		Number:      l.LabelIndex + 1,
		ShowDetails: l.ShowDetails,
		Actions:     Actions(l, now),
	}
	if l.ShowDetails {
		view.Tracking = l.Tracking
		view.CarrierID = l.CarrierID
	}
	return view
}
