package utils

const (
	// Charge order categories
	CategoryRoomService = "room_service"
	CategoryRestaurant  = "restaurant"
	CategoryLaundry     = "laundry"

	// Laundry line status that is never chargeable
	LaundryStatusLost = "lost"

	// Cash movement types
	CashMovementSale      = "sale"
	CashMovementManualIn  = "manual_in"
	CashMovementManualOut = "manual_out"
	CashMovementReversal  = "reversal"

	// Cash session states
	CashSessionOpen   = "open"
	CashSessionClosed = "closed"

	// Cash deviation classification
	DeviationNormal   = "normal"
	DeviationWarning  = "warning"
	DeviationCritical = "critical"

	// ID and code generation
	IDCharset   = "abcdefghijklmnopqrstuvwxyz0123456789"
	CodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	IDLength    = 20
	CodeLength  = 6

	// HTTP status messages
	ErrInvalidRequest  = "Invalid request"
	ErrStayNotFound    = "Stay not found"
	ErrOrderNotFound   = "Order not found"
	ErrRoomNotFound    = "Room not found"
	ErrSessionNotFound = "Cash session not found"
	ErrFailedToStore   = "Failed to store data"
	ErrCodeRequired    = "Code is required"

	// Billing defaults
	DefaultCGSTPercent    = 2.5
	DefaultSGSTPercent    = 2.5
	DefaultExtraBedCharge = 500.0

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
