// models/room_models.go
package models

// Room is one sellable room in the property inventory.
type Room struct {
	Number     string  `json:"number"`
	Type       string  `json:"type"`
	BaseRate   float64 `json:"baseRate"`
	Floor      int     `json:"floor,omitempty"`
	Occupied   bool    `json:"occupied"`
	OutOfOrder bool    `json:"outOfOrder,omitempty"`
}

// CreateRoomRequest request model
type CreateRoomRequest struct {
	Number   string  `json:"number" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	BaseRate float64 `json:"baseRate" binding:"required,gt=0"`
	Floor    int     `json:"floor"`
}

// UpdateRoomStatusRequest request model
type UpdateRoomStatusRequest struct {
	Number     string `json:"number" binding:"required"`
	Occupied   bool   `json:"occupied"`
	OutOfOrder bool   `json:"outOfOrder"`
}
