package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Label struct {
	LabelID     int64      `db:"label_id"`
	OrderID     int64      `db:"order_id"`
	SiteID      int64      `db:"site_id"`
	LabelIndex  int        `db:"label_index"`
	Tracking    string     `db:"tracking"`
	CarrierID   string     `db:"carrier_id"`
	Anonymized  bool       `db:"anonymized"`
	ShowDetails bool       `db:"show_details"`
	CreatedDate *time.Time `db:"created_date"`
	UsedDate    *time.Time `db:"used_date"`
	ExpiryDate  *time.Time `db:"expiry_date"`
}

type StoredCard struct {
	ID             string    `db:"id"`
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	CardType       string    `db:"card_type"`
	LastDigits     string    `db:"last_digits"`
	Expiry         string    `db:"expiry"`
	PaymentPartner string    `db:"payment_partner"`
	AddedAt        time.Time `db:"added_at"`
}
