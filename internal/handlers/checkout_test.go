package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func orderPayload(address string) map[string]any {
	return map[string]any{
		"address": address,
		"lines": []map[string]any{
			{"item": map[string]any{"id": 1, "name": "Regular Veg Thali", "price": 120}, "quantity": 2},
			{"item": map[string]any{"id": 2, "name": "Gulab Jamun", "price": 50}, "quantity": 1},
		},
	}
}

func TestOrderLink(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/checkout/link", orderPayload("42 Spice Street, Ghaziabad"))
	require.NoError(t, env.Checkout.OrderLink(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		URL     string `json:"url"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.URL, "https://wa.me/919310153299?text=")
	require.Contains(t, resp.Message, "• 2 x Regular Veg Thali (₹240)")
	require.Contains(t, resp.Message, "*Total Amount: ₹290*")
	require.Contains(t, resp.Message, "42 Spice Street, Ghaziabad")
}

func TestOrderLinkRequiresAddress(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/checkout/link", orderPayload("  "))
	require.NoError(t, env.Checkout.OrderLink(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderLinkRequiresItems(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/checkout/link", map[string]any{
		"address": "42 Spice Street",
		"lines":   []map[string]any{},
	})
	require.NoError(t, env.Checkout.OrderLink(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
