package intent

import (
	"encoding/json"
	"fmt"
)

type Kind string

const (
	KindOpenRefundDialog  Kind = "open_refund_dialog"
	KindOpenReprintDialog Kind = "open_reprint_dialog"
	KindOpenDetailsDialog Kind = "open_details_dialog"
	KindRecordTracksEvent Kind = "record_tracks_event"
)

const TrackingNumberCopyEvent = "calypso_woocommerce_order_tracking_number_copy"

// Intent is a message asking an external handler to do something. Dialog
// intents carry the label address, telemetry intents carry an event.
type Intent struct {
	Kind       Kind              `json:"kind"`
	OrderID    int64             `json:"order_id,omitempty"`
	SiteID     int64             `json:"site_id,omitempty"`
	LabelID    int64             `json:"label_id,omitempty"`
	EventName  string            `json:"event_name,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

func OpenRefundDialog(orderID, siteID, labelID int64) Intent {
	return Intent{Kind: KindOpenRefundDialog, OrderID: orderID, SiteID: siteID, LabelID: labelID}
}

func OpenReprintDialog(orderID, siteID, labelID int64) Intent {
	return Intent{Kind: KindOpenReprintDialog, OrderID: orderID, SiteID: siteID, LabelID: labelID}
}

func OpenDetailsDialog(orderID, siteID, labelID int64) Intent {
	return Intent{Kind: KindOpenDetailsDialog, OrderID: orderID, SiteID: siteID, LabelID: labelID}
}

func RecordTracksEvent(eventName string, properties map[string]string) Intent {
	return Intent{Kind: KindRecordTracksEvent, EventName: eventName, Properties: properties}
}

// Topic returns the broker topic an intent is published to.
func (in Intent) Topic() string {
	if in.Kind == KindRecordTracksEvent {
		return "label_telemetry"
	}
	return "label_dialogs"
}

func (in Intent) Marshal() (json.RawMessage, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s intent: %w", in.Kind, err)
	}
	return payload, nil
}

func Unmarshal(payload []byte) (Intent, error) {
	var in Intent
	if err := json.Unmarshal(payload, &in); err != nil {
		return Intent{}, fmt.Errorf("failed to decode intent: %w", err)
	}
	if in.Kind == "" {
		return Intent{}, fmt.Errorf("failed to decode intent: missing kind")
	}
	return in, nil
}
