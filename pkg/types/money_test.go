package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMoneyMarshalsTwoDecimals(t *testing.T) {
	out, err := json.Marshal(map[string]Money{
		"total":    NewMoney(decimal.RequireFromString("92")),
		"shipping": NewMoney(decimal.Zero),
		"price":    NewMoney(decimal.RequireFromString("24.999")),
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"total":"92.00","shipping":"0.00","price":"25.00"}`, string(out))
}

func TestMoneyUnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	var payload struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"28.00","b":32.5}`), &payload))
	require.Equal(t, "28.00", payload.A.String())
	require.Equal(t, "32.50", payload.B.String())

	require.Error(t, json.Unmarshal([]byte(`{"a":"abc"}`), &payload))
}
