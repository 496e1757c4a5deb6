package models

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12, "b": "abc", "c": null}`), &v))
	assert.Equal(t, ID("12"), v.A)
	assert.Equal(t, ID("abc"), v.B)
	assert.Equal(t, ID(""), v.C)

	require.Error(t, json.Unmarshal([]byte(`{"a": true}`), &v))
}

func TestAppointment_CounterpartyKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "client view", in: `{"id":1,"lawyerName":"John Smith","status":"upcoming"}`, want: "John Smith"},
		{name: "lawyer view", in: `{"id":2,"clientName":"Jane Doe"}`, want: "Jane Doe"},
		{name: "canonical", in: `{"id":3,"counterpartyName":"Bob","lawyerName":"ignored"}`, want: "Bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Appointment
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a.CounterpartyName)
		})
	}
}

func TestDocumentSize_UnmarshalJSON(t *testing.T) {
	var docs []Document
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"size":"2.5 MB"},{"id":2,"size":1500000}]`), &docs))
	assert.Equal(t, DocumentSize("2.5 MB"), docs[0].Size)
	assert.Equal(t, DocumentSize("1.5 MB"), docs[1].Size)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("lawyer")
	require.NoError(t, err)
	assert.Equal(t, RoleLawyer, r)

	_, err = ParseRole("judge")
	require.Error(t, err)
}

func TestCaseStatus_Color(t *testing.T) {
	assert.Equal(t, "#007bff", CaseInProgress.Color())
	assert.Equal(t, "#28a745", CaseCompleted.Color())
	assert.Equal(t, "#6c757d", CaseStatus("Archived").Color())
}

func TestByTimestamp_StableOldestFirst(t *testing.T) {
	t0 := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	msgs := []Message{
		{ID: "c", Timestamp: t0.Add(time.Minute)},
		{ID: "a", Timestamp: t0},
		{ID: "b", Timestamp: t0},
	}
	slices.SortStableFunc(msgs, ByTimestamp)

	var ids []ID
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []ID{"a", "b", "c"}, ids)
}
