// models/stay_models.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// FlexTime accepts the timestamp shapes the booking sources actually send:
// an RFC3339 string, a plain date string, epoch milliseconds, or a Mongo
// export style {"$date": ...} wrapper. Anything unparsable decodes to the
// zero time instead of failing, so a half-loaded stay still computes.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	// {"$date": ...} wrapper
	if data[0] == '{' {
		var wrapper struct {
			Date json.RawMessage `json:"$date"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || len(wrapper.Date) == 0 {
			t.Time = time.Time{}
			return nil
		}
		return t.UnmarshalJSON(wrapper.Date)
	}

	// epoch milliseconds
	if data[0] != '"' {
		millis, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			t.Time = time.Time{}
			return nil
		}
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time)
}

// Valid reports whether a usable timestamp was decoded.
func (t FlexTime) Valid() bool {
	return !t.IsZero()
}

// FlexNumber accepts a JSON number or a numeric string and collapses
// anything else to 0. Several legacy records store amounts as strings.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*n = 0
			return nil
		}
		*n = FlexNumber(parsed)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(f)
	return nil
}

// AdvancePayment is a single advance taken against a stay.
type AdvancePayment struct {
	Amount FlexNumber `json:"amount"`
	Method string     `json:"method,omitempty"`
	PaidAt FlexTime   `json:"paidAt,omitempty"`
}

// AdvanceList accepts both advance shapes in the wild: a list of payment
// records, or a single legacy numeric total. Both normalize to the same sum.
type AdvanceList []AdvancePayment

func (a *AdvanceList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}
	if data[0] == '[' {
		var payments []AdvancePayment
		if err := json.Unmarshal(data, &payments); err != nil {
			*a = nil
			return nil
		}
		*a = payments
		return nil
	}

	// legacy scalar total
	var total FlexNumber
	if err := json.Unmarshal(data, &total); err != nil || total == 0 {
		*a = nil
		return nil
	}
	*a = AdvanceList{{Amount: total}}
	return nil
}

// Total sums all advance payments.
func (a AdvanceList) Total() float64 {
	var total float64
	for _, p := range a {
		total += float64(p.Amount)
	}
	return total
}

// RoomRate is one room on a stay with its negotiated nightly rate.
type RoomRate struct {
	RoomNumber    string     `json:"roomNumber"`
	CustomRate    FlexNumber `json:"customRate"`
	ExtraBed      bool       `json:"extraBed"`
	ExtraBedStart FlexTime   `json:"extraBedStartDate"`
}

// LateCheckoutFee is charged only when applied and not waived.
type LateCheckoutFee struct {
	Amount  FlexNumber `json:"amount"`
	Applied bool       `json:"applied"`
	Waived  bool       `json:"waived"`
}

// Amendment records a post-booking change with a signed price adjustment.
type Amendment struct {
	ID              string     `json:"_id,omitempty"`
	Description     string     `json:"description,omitempty"`
	TotalAdjustment FlexNumber `json:"totalAdjustment"`
	CreationTime    int64      `json:"_creationTime,omitempty"`
}

// Stay represents one guest stay and everything billable against it.
type Stay struct {
	ID           string `json:"_id"`
	CreationTime int64  `json:"_creationTime"`
	ShareCode    string `json:"shareCode,omitempty"`
	ShareToken   string `json:"shareToken,omitempty"`
	GuestName    string `json:"guestName"`
	GuestPhone   string `json:"guestPhone,omitempty"`
	Status       string `json:"status,omitempty"`

	CheckIn  FlexTime `json:"checkIn"`
	CheckOut FlexTime `json:"checkOut"`

	RoomRates       []RoomRate `json:"roomRates,omitempty"`
	DiscountPercent float64    `json:"discountPercent,omitempty"`

	// Percent overrides; nil means the 2.5/2.5 defaults apply.
	CGSTPercent *float64 `json:"cgstPercent,omitempty"`
	SGSTPercent *float64 `json:"sgstPercent,omitempty"`

	ExtraBedCharge float64 `json:"extraBedCharge,omitempty"`

	// Legacy single-rate stays carry a flat nightly amount instead of
	// per-room rates.
	TaxableAmount FlexNumber `json:"taxableAmount,omitempty"`
	Rate          FlexNumber `json:"rate,omitempty"`

	LateCheckout *LateCheckoutFee `json:"lateCheckout,omitempty"`
	Amendments   []Amendment      `json:"amendments,omitempty"`
	Advance      AdvanceList      `json:"advance,omitempty"`
}

// CreateStayRequest request model
type CreateStayRequest struct {
	GuestName       string     `json:"guestName" binding:"required"`
	GuestPhone      string     `json:"guestPhone"`
	CheckIn         FlexTime   `json:"checkIn" binding:"required"`
	CheckOut        FlexTime   `json:"checkOut" binding:"required"`
	RoomRates       []RoomRate `json:"roomRates" binding:"required"`
	DiscountPercent float64    `json:"discountPercent"`
	CGSTPercent     *float64   `json:"cgstPercent"`
	SGSTPercent     *float64   `json:"sgstPercent"`
	ExtraBedCharge  float64    `json:"extraBedCharge"`
}

// AmendStayRequest request model
type AmendStayRequest struct {
	StayID          string     `json:"stayId" binding:"required"`
	Description     string     `json:"description"`
	TotalAdjustment FlexNumber `json:"totalAdjustment"`
}

// AddAdvanceRequest request model
type AddAdvanceRequest struct {
	StayID string  `json:"stayId" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method"`
}

// SetLateCheckoutRequest request model
type SetLateCheckoutRequest struct {
	StayID  string  `json:"stayId" binding:"required"`
	Amount  float64 `json:"amount" binding:"min=0"`
	Applied bool    `json:"applied"`
	Waived  bool    `json:"waived"`
}

// ListStaysRequest request model; lists stays in house on a business date
type ListStaysRequest struct {
	BusinessDate string `json:"businessDate" binding:"required"`
}

// GetStayByCodeRequest request model for the public invoice link
type GetStayByCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
