package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogIntents(t *testing.T) {
	tests := []struct {
		name     string
		got      Intent
		expected Kind
	}{
		{"refund", OpenRefundDialog(10, 20, 30), KindOpenRefundDialog},
		{"reprint", OpenReprintDialog(10, 20, 30), KindOpenReprintDialog},
		{"details", OpenDetailsDialog(10, 20, 30), KindOpenDetailsDialog},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got.Kind)
			assert.Equal(t, int64(10), tc.got.OrderID)
			assert.Equal(t, int64(20), tc.got.SiteID)
			assert.Equal(t, int64(30), tc.got.LabelID)
			assert.Equal(t, "label_dialogs", tc.got.Topic())
		})
	}
}

func TestRecordTracksEvent(t *testing.T) {
	in := RecordTracksEvent(TrackingNumberCopyEvent, map[string]string{"carrier_id": "usps"})

	assert.Equal(t, "label_telemetry", in.Topic())

	payload, err := in.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "record_tracks_event",
		"event_name": "calypso_woocommerce_order_tracking_number_copy",
		"properties": {"carrier_id": "usps"}
	}`, string(payload))
}

func TestUnmarshal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in, err := Unmarshal([]byte(`{"kind":"open_reprint_dialog","order_id":1,"site_id":2,"label_id":3}`))
		require.NoError(t, err)
		assert.Equal(t, OpenReprintDialog(1, 2, 3), in)
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := Unmarshal([]byte(`{"order_id":1}`))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Unmarshal([]byte(`not json`))
		assert.Error(t, err)
	})
}
