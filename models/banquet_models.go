// models/banquet_models.go
package models

// BanquetBooking is a hall booking with per-plate pricing. The estimate is
// taxed and rounded with the same policy as guest folios.
type BanquetBooking struct {
	ID           string   `json:"_id"`
	CreationTime int64    `json:"_creationTime"`
	HallName     string   `json:"hallName"`
	CustomerName string   `json:"customerName"`
	Phone        string   `json:"phone,omitempty"`
	EventDate    FlexTime `json:"eventDate"`
	EventType    string   `json:"eventType,omitempty"`

	Plates     int        `json:"plates"`
	PlateRate  FlexNumber `json:"plateRate"`
	HallCharge FlexNumber `json:"hallCharge"`

	CGSTPercent *float64    `json:"cgstPercent,omitempty"`
	SGSTPercent *float64    `json:"sgstPercent,omitempty"`
	Advance     AdvanceList `json:"advance,omitempty"`
	Status      string      `json:"status,omitempty"`
}

// BanquetEstimate is the derived financial summary of a banquet booking.
type BanquetEstimate struct {
	PlatesTotal    float64 `json:"platesTotal"`
	HallCharge     float64 `json:"hallCharge"`
	PreTaxSubtotal float64 `json:"preTaxSubtotal"`
	CGSTAmount     float64 `json:"cgstAmount"`
	SGSTAmount     float64 `json:"sgstAmount"`
	ExactTotal     float64 `json:"exactTotal"`
	RoundedTotal   float64 `json:"roundedTotal"`
	RoundOff       float64 `json:"roundOff"`
	TotalAdvance   float64 `json:"totalAdvance"`
	BalanceDue     float64 `json:"balanceDue"`
}

// CreateBanquetRequest request model
type CreateBanquetRequest struct {
	HallName     string   `json:"hallName" binding:"required"`
	CustomerName string   `json:"customerName" binding:"required"`
	Phone        string   `json:"phone"`
	EventDate    FlexTime `json:"eventDate" binding:"required"`
	EventType    string   `json:"eventType"`
	Plates       int      `json:"plates" binding:"min=0"`
	PlateRate    float64  `json:"plateRate" binding:"min=0"`
	HallCharge   float64  `json:"hallCharge" binding:"min=0"`
	CGSTPercent  *float64 `json:"cgstPercent"`
	SGSTPercent  *float64 `json:"sgstPercent"`
}

// ListBanquetsRequest request model
type ListBanquetsRequest struct {
	From FlexTime `json:"from"`
	To   FlexTime `json:"to"`
}
