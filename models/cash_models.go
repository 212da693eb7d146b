// models/cash_models.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashSession is the lifecycle of one register drawer between open and close.
// Expected amount on close is opening float plus the sum of movements.
type CashSession struct {
	ID           string           `json:"id"`
	RegisterName string           `json:"registerName"`
	OpenedBy     string           `json:"openedBy"`
	OpeningFloat decimal.Decimal  `json:"openingFloat"`
	Expected     *decimal.Decimal `json:"expected,omitempty"`
	Declared     *decimal.Decimal `json:"declared,omitempty"`
	Deviation    *decimal.Decimal `json:"deviation,omitempty"`
	DeviationPct *decimal.Decimal `json:"deviationPct,omitempty"`
	// Classification: normal | warning | critical, set on close
	Classification string     `json:"classification,omitempty"`
	Status         string     `json:"status"`
	OpenedAt       time.Time  `json:"openedAt"`
	ClosedAt       *time.Time `json:"closedAt,omitempty"`

	Movements []CashMovement `json:"movements,omitempty"`
}

// CashMovement is an immutable entry in the drawer ledger. Movements are
// never updated or deleted; corrections are inverse reversal entries.
type CashMovement struct {
	ID          string          `json:"id"`
	SessionID   string          `json:"sessionId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	// ReferenceID links to the originating folio or movement being reversed
	ReferenceID string    `json:"referenceId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OpenCashSessionRequest request model
type OpenCashSessionRequest struct {
	RegisterName string  `json:"registerName" binding:"required"`
	OpenedBy     string  `json:"openedBy" binding:"required"`
	OpeningFloat float64 `json:"openingFloat" binding:"min=0"`
}

// AddCashMovementRequest request model
type AddCashMovementRequest struct {
	SessionID   string  `json:"sessionId" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ReferenceID string  `json:"referenceId"`
}

// CloseCashSessionRequest request model
type CloseCashSessionRequest struct {
	SessionID string  `json:"sessionId" binding:"required"`
	Declared  float64 `json:"declared" binding:"min=0"`
}
