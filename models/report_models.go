// models/report_models.go
package models

// NightAuditRow is one stay's folio inside a night-audit report.
type NightAuditRow struct {
	StayID    string        `json:"stayId"`
	GuestName string        `json:"guestName"`
	RoomLabel string        `json:"roomLabel"`
	Status    string        `json:"status,omitempty"`
	Summary   *FolioSummary `json:"summary"`
}

// NightAuditReport aggregates every open folio for a business date. Each
// row's summary comes from the same computation as the live folio screen,
// so the rollup can never drift from what guests were shown.
type NightAuditReport struct {
	BusinessDate string          `json:"businessDate"`
	StayCount    int             `json:"stayCount"`
	Rows         []NightAuditRow `json:"rows"`

	RoomRevenue      float64 `json:"roomRevenue"`
	DiscountTotal    float64 `json:"discountTotal"`
	RoomServiceTotal float64 `json:"roomServiceTotal"`
	RestaurantTotal  float64 `json:"restaurantTotal"`
	LaundryTotal     float64 `json:"laundryTotal"`
	LateFeeTotal     float64 `json:"lateFeeTotal"`
	AmendmentTotal   float64 `json:"amendmentTotal"`
	CGSTTotal        float64 `json:"cgstTotal"`
	SGSTTotal        float64 `json:"sgstTotal"`
	RoundOffTotal    float64 `json:"roundOffTotal"`
	GrossTotal       float64 `json:"grossTotal"`
	AdvanceTotal     float64 `json:"advanceTotal"`
	BalanceTotal     float64 `json:"balanceTotal"`
}

// NightAuditRequest request model
type NightAuditRequest struct {
	BusinessDate string `json:"businessDate" binding:"required"`
}
