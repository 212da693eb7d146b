// models/order_models.go
package models

// OrderItem is one line on a charge order. Unit price arrives under
// different keys depending on the source screen; ResolvedUnitPrice picks
// the first one present. Three historical flags all mean "do not bill".
type OrderItem struct {
	Name     string     `json:"name"`
	Quantity FlexNumber `json:"quantity"`

	UnitPrice *FlexNumber `json:"unitPrice,omitempty"`
	Price     *FlexNumber `json:"price,omitempty"`

	NonChargeable bool `json:"nonChargeable,omitempty"`
	IsFree        bool `json:"isFree,omitempty"`
	NC            bool `json:"nc,omitempty"`

	// Laundry lines carry a status; "lost" is never billed.
	Status string `json:"status,omitempty"`
}

// ResolvedNonChargeable folds the legacy nc alias into the canonical
// non-chargeable flag, so the stored shape carries a single column.
func (it OrderItem) ResolvedNonChargeable() bool {
	return it.NonChargeable || it.NC
}

// ResolvedUnitPrice resolves the unit price from whichever key the source
// populated, defaulting to 0 when neither exists.
func (it OrderItem) ResolvedUnitPrice() float64 {
	if it.UnitPrice != nil {
		return float64(*it.UnitPrice)
	}
	if it.Price != nil {
		return float64(*it.Price)
	}
	return 0
}

// ChargeOrder is a room-service, restaurant, or laundry order against a stay.
type ChargeOrder struct {
	ID            string      `json:"_id"`
	CreationTime  int64       `json:"_creationTime"`
	StayID        string      `json:"stayId"`
	Category      string      `json:"category"`
	NonChargeable bool        `json:"nonChargeable,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	Items         []OrderItem `json:"items"`
}

// CreateOrderRequest request model
type CreateOrderRequest struct {
	StayID   string      `json:"stayId" binding:"required"`
	Category string      `json:"category" binding:"required"`
	Notes    string      `json:"notes"`
	Items    []OrderItem `json:"items" binding:"required"`
}

// VoidOrderRequest marks an entire order non-chargeable
type VoidOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// VoidOrderLineRequest marks one line of an order non-chargeable,
// addressed by its position in the order
type VoidOrderLineRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	ItemIndex int    `json:"itemIndex" binding:"min=0"`
}

// ListOrdersRequest request model
type ListOrdersRequest struct {
	StayID   string `json:"stayId" binding:"required"`
	Category string `json:"category"`
}
