package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDecode(t *testing.T) {
	body := `{
		"messageVersion": "1.0",
		"invocationSource": "DialogCodeHook",
		"userId": "u-1",
		"sessionAttributes": {"k": "v"},
		"bot": {"name": "BookUrMovie", "alias": "$LATEST", "version": "$LATEST"},
		"currentIntent": {
			"name": "BookMovie",
			"slots": {"MovieName": "Kabuliwala", "Date": null},
			"confirmationStatus": "None"
		}
	}`

	var req Request
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, DialogCodeHook, req.InvocationSource)
	assert.Equal(t, "BookUrMovie", req.Bot.Name)
	assert.Equal(t, ConfirmationNone, req.CurrentIntent.ConfirmationStatus)
	assert.Equal(t, Attributes{"k": "v"}, req.SessionAttributes)

	movie, ok := req.CurrentIntent.Slots.Get(SlotMovieName)
	assert.True(t, ok)
	assert.Equal(t, "Kabuliwala", movie)

	_, ok = req.CurrentIntent.Slots.Get(SlotDate)
	assert.False(t, ok)
	_, ok = req.CurrentIntent.Slots.Get(SlotTime)
	assert.False(t, ok)
}

func TestAttributesMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "null", raw: `null`},
		{name: "string", raw: `"oops"`},
		{name: "non-string values", raw: `{"a": 1, "b": {"c": true}}`},
		{name: "array", raw: `["a"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(`{"sessionAttributes": `+tt.raw+`}`), &req))
			assert.NotNil(t, req.SessionAttributes)
			assert.Empty(t, req.SessionAttributes)
		})
	}
}

func TestSlotsClone(t *testing.T) {
	v := "PVR"
	orig := Slots{SlotTheatre: &v, SlotDate: nil}

	c := orig.Clone()
	*c[SlotTheatre] = "INOX"
	c[SlotDate] = &v

	assert.Equal(t, "PVR", *orig[SlotTheatre])
	assert.Nil(t, orig[SlotDate])
}

func TestDialogActionEncode(t *testing.T) {
	resp := Response{
		SessionAttributes: Attributes{},
		DialogAction: DialogAction{
			Type:         ActionElicitSlot,
			IntentName:   "BookMovie",
			Slots:        Slots{SlotTime: nil},
			SlotToElicit: SlotTime,
		},
	}

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sessionAttributes": {},
		"dialogAction": {
			"type": "ElicitSlot",
			"intentName": "BookMovie",
			"slots": {"Time": null},
			"slotToElicit": "Time"
		}
	}`, string(b))
}

func TestDialogActionSlotsAlwaysSent(t *testing.T) {
	tests := []struct {
		name   string
		action DialogAction
		want   string
	}{
		{
			name:   "delegate_nil_slots",
			action: DialogAction{Type: ActionDelegate},
			want:   `{"type": "Delegate", "slots": {}}`,
		},
		{
			name:   "delegate_empty_slots",
			action: DialogAction{Type: ActionDelegate, Slots: Slots{}},
			want:   `{"type": "Delegate", "slots": {}}`,
		},
		{
			name:   "confirm_intent",
			action: DialogAction{Type: ActionConfirmIntent, IntentName: "BookMovie"},
			want:   `{"type": "ConfirmIntent", "intentName": "BookMovie", "slots": {}}`,
		},
		{
			name: "close",
			action: DialogAction{
				Type:             ActionClose,
				FulfillmentState: Fulfilled,
				Message:          PlainText("done"),
			},
			want: `{"type": "Close", "fulfillmentState": "Fulfilled",
				"message": {"contentType": "PlainText", "content": "done"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.action)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}
