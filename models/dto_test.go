package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    ItemID
		wantErr bool
	}{
		{name: "number", body: `{"itemId": 5}`, want: "5"},
		{name: "zero", body: `{"itemId": 0}`, want: "0"},
		{name: "string", body: `{"itemId": "12"}`, want: "12"},
		{name: "null", body: `{"itemId": null}`, wantErr: true},
		{name: "empty string", body: `{"itemId": ""}`, wantErr: true},
		{name: "float", body: `{"itemId": 1.5}`, wantErr: true},
		{name: "missing", body: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CartItemRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ItemID)
		})
	}
}

func TestNewCart(t *testing.T) {
	cart := NewCart()

	assert.Len(t, cart, CartSlots+1)
	assert.Equal(t, 0, cart["0"])
	assert.Equal(t, 0, cart["300"])
	_, ok := cart["301"]
	assert.False(t, ok)
}
