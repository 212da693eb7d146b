// models/folio_models.go
package models

// ChargeLine is the uniform shape every order line normalizes to before
// aggregation. Amounts are derived, never stored.
type ChargeLine struct {
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Chargeable bool    `json:"chargeable"`
}

// Amount returns the billable value of the line.
func (l ChargeLine) Amount() float64 {
	if !l.Chargeable {
		return 0
	}
	return l.Quantity * l.UnitPrice
}

// FolioSummary is the single financial summary of a stay. It is derived on
// every read and consumed identically by the live folio screen, the public
// invoice, and the night audit; the three must never diverge numerically.
type FolioSummary struct {
	StayID string `json:"stayId,omitempty"`

	Nights       int     `json:"nights"`
	RoomCost     float64 `json:"roomCost"`
	ExtraBedCost float64 `json:"extraBedCost"`
	RoomSubtotal float64 `json:"roomSubtotal"`

	DiscountPercent   float64 `json:"discountPercent"`
	DiscountAmount    float64 `json:"discountAmount"`
	RoomAfterDiscount float64 `json:"roomAfterDiscount"`

	RoomServiceTotal float64 `json:"roomServiceTotal"`
	RestaurantTotal  float64 `json:"restaurantTotal"`
	LaundryTotal     float64 `json:"laundryTotal"`

	LateCheckoutFee     float64 `json:"lateCheckoutFee"`
	AmendmentAdjustment float64 `json:"amendmentAdjustment"`

	PreTaxSubtotal float64 `json:"preTaxSubtotal"`
	CGSTPercent    float64 `json:"cgstPercent"`
	SGSTPercent    float64 `json:"sgstPercent"`
	CGSTAmount     float64 `json:"cgstAmount"`
	SGSTAmount     float64 `json:"sgstAmount"`

	ExactTotal   float64 `json:"exactTotal"`
	RoundedTotal float64 `json:"roundedTotal"`
	RoundOff     float64 `json:"roundOff"`

	TotalAdvance float64 `json:"totalAdvance"`
	BalanceDue   float64 `json:"balanceDue"`
}

// ComputeFolioRequest carries inline collections for screens that already
// hold the data and only need the arithmetic.
type ComputeFolioRequest struct {
	Stay             Stay          `json:"stay" binding:"required"`
	ServiceOrders    []ChargeOrder `json:"serviceOrders"`
	RestaurantOrders []ChargeOrder `json:"restaurantOrders"`
	LaundryOrders    []ChargeOrder `json:"laundryOrders"`
}

// FolioResponse is the live folio payload: the summary plus the stay and
// order collections it was derived from.
type FolioResponse struct {
	Stay             *Stay         `json:"stay"`
	ServiceOrders    []ChargeOrder `json:"serviceOrders"`
	RestaurantOrders []ChargeOrder `json:"restaurantOrders"`
	LaundryOrders    []ChargeOrder `json:"laundryOrders"`
	Summary          *FolioSummary `json:"summary"`
}

// InvoiceResponse is the public shareable invoice payload. It exposes no
// operational identifiers beyond the share code.
type InvoiceResponse struct {
	ShareCode   string        `json:"shareCode"`
	GuestName   string        `json:"guestName"`
	RoomLabel   string        `json:"roomLabel"`
	CheckIn     FlexTime      `json:"checkIn"`
	CheckOut    FlexTime      `json:"checkOut"`
	Summary     *FolioSummary `json:"summary"`
	GeneratedAt int64         `json:"generatedAt"`
}
