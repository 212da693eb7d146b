package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlexTime_AcceptedShapes(t *testing.T) {
	expected := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
	}{
		{"rfc3339", `"2025-06-14T12:00:00Z"`},
		{"date wrapper string", `{"$date": "2025-06-14T12:00:00Z"}`},
		{"epoch millis", `1749902400000`},
		{"date wrapper millis", `{"$date": 1749902400000}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FlexTime
			assert.NoError(t, json.Unmarshal([]byte(tc.raw), &ft))
			assert.True(t, ft.Valid())
			assert.True(t, ft.Time.Equal(expected), "got %s", ft.Time)
		})
	}
}

func TestFlexTime_MalformedDegradesToZero(t *testing.T) {
	for _, raw := range []string{`"not a date"`, `null`, `{"$date": "garbage"}`, `{}`, `true`} {
		var ft FlexTime
		assert.NoError(t, json.Unmarshal([]byte(raw), &ft), "input %s", raw)
		assert.False(t, ft.Valid(), "input %s should be invalid", raw)
	}
}

func TestFlexTime_PlainDate(t *testing.T) {
	var ft FlexTime
	assert.NoError(t, json.Unmarshal([]byte(`"2025-06-14"`), &ft))
	assert.True(t, ft.Valid())
	assert.Equal(t, 2025, ft.Year())
	assert.Equal(t, time.June, ft.Month())
	assert.Equal(t, 14, ft.Day())
}

func TestFlexNumber_LenientParse(t *testing.T) {
	cases := []struct {
		raw      string
		expected float64
	}{
		{`150`, 150},
		{`"150"`, 150},
		{`"149.99"`, 149.99},
		{`null`, 0},
		{`"not a number"`, 0},
		{`true`, 0},
	}

	for _, tc := range cases {
		var n FlexNumber
		assert.NoError(t, json.Unmarshal([]byte(tc.raw), &n), "input %s", tc.raw)
		assert.Equal(t, tc.expected, float64(n), "input %s", tc.raw)
	}
}

func TestAdvanceList_ScalarAndListNormalizeToSameSum(t *testing.T) {
	var fromList AdvanceList
	assert.NoError(t, json.Unmarshal([]byte(`[{"amount": 2000}, {"amount": "500"}]`), &fromList))
	assert.Equal(t, 2500.0, fromList.Total())

	var fromScalar AdvanceList
	assert.NoError(t, json.Unmarshal([]byte(`2500`), &fromScalar))
	assert.Equal(t, 2500.0, fromScalar.Total())

	var fromNull AdvanceList
	assert.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))
	assert.Equal(t, 0.0, fromNull.Total())
}

func TestOrderItem_ResolvedNonChargeable(t *testing.T) {
	var item OrderItem
	assert.NoError(t, json.Unmarshal([]byte(`{"name": "Peanuts", "quantity": 2, "nc": true}`), &item))
	assert.False(t, item.NonChargeable)
	assert.True(t, item.ResolvedNonChargeable())

	assert.True(t, OrderItem{NonChargeable: true}.ResolvedNonChargeable())
	assert.False(t, OrderItem{IsFree: true}.ResolvedNonChargeable())
	assert.False(t, OrderItem{}.ResolvedNonChargeable())
}

func TestOrderItem_ResolvedUnitPrice(t *testing.T) {
	price := FlexNumber(80)
	unitPrice := FlexNumber(100)

	assert.Equal(t, 100.0, OrderItem{UnitPrice: &unitPrice}.ResolvedUnitPrice())
	assert.Equal(t, 80.0, OrderItem{Price: &price}.ResolvedUnitPrice())
	// unitPrice wins when both are present
	assert.Equal(t, 100.0, OrderItem{UnitPrice: &unitPrice, Price: &price}.ResolvedUnitPrice())
	assert.Equal(t, 0.0, OrderItem{}.ResolvedUnitPrice())
}

func TestStay_FullWireDecode(t *testing.T) {
	raw := `{
		"_id": "stay9",
		"guestName": "Meera Nair",
		"checkIn": {"$date": 1749902400000},
		"checkOut": "2025-06-16T12:00:00Z",
		"roomRates": [
			{"roomNumber": "101", "customRate": 2000, "extraBed": true,
			 "extraBedStartDate": "2025-06-15"}
		],
		"discountPercent": 10,
		"lateCheckout": {"amount": "500", "applied": true, "waived": false},
		"amendments": [{"totalAdjustment": -150}],
		"advance": [{"amount": 1000}]
	}`

	var stay Stay
	assert.NoError(t, json.Unmarshal([]byte(raw), &stay))

	assert.True(t, stay.CheckIn.Valid())
	assert.True(t, stay.CheckOut.Valid())
	assert.Len(t, stay.RoomRates, 1)
	assert.True(t, stay.RoomRates[0].ExtraBed)
	assert.True(t, stay.RoomRates[0].ExtraBedStart.Valid())
	assert.Equal(t, 500.0, float64(stay.LateCheckout.Amount))
	assert.Equal(t, -150.0, float64(stay.Amendments[0].TotalAdjustment))
	assert.Equal(t, 1000.0, stay.Advance.Total())
}
