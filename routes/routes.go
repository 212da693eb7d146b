package routes

import (
	"github.com/ashwinpura/hoteldesk-backend/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Initialize handlers
	handlers.InitHandlers()

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Room inventory
		v1.POST("/rooms/create", handlers.CreateRoom)
		v1.GET("/rooms", handlers.ListRooms)
		v1.POST("/rooms/updateStatus", handlers.UpdateRoomStatus)

		// Stay endpoints
		v1.POST("/stays/create", handlers.CreateStay)
		v1.POST("/stays/list", handlers.ListStays)
		v1.GET("/stays/:id", handlers.GetStay)
		v1.POST("/stays/:id/checkout", handlers.CheckoutStay)
		v1.POST("/stays/amend", handlers.AmendStay)
		v1.POST("/stays/addAdvance", handlers.AddAdvance)
		v1.POST("/stays/lateCheckout", handlers.SetLateCheckout)

		// Charge orders (room service / restaurant / laundry)
		v1.POST("/orders/create", handlers.CreateOrder)
		v1.POST("/orders/list", handlers.ListOrders)
		v1.POST("/orders/void", handlers.VoidOrder)
		v1.POST("/orders/voidLine", handlers.VoidOrderLine)

		// Folio: the live billing surface
		v1.GET("/stays/:id/folio", handlers.GetFolio)
		v1.POST("/folios/compute", handlers.ComputeFolio)

		// Cash sessions
		v1.POST("/cash/open", handlers.OpenCashSession)
		v1.GET("/cash/:id", handlers.GetCashSession)
		v1.POST("/cash/movement", handlers.AddCashMovement)
		v1.POST("/cash/close", handlers.CloseCashSession)

		// Banquet
		v1.POST("/banquets/create", handlers.CreateBanquetBooking)
		v1.GET("/banquets/:id", handlers.GetBanquetBooking)
		v1.POST("/banquets/list", handlers.ListBanquetBookings)
		v1.POST("/banquets/addAdvance", handlers.AddBanquetAdvance)

		// Night audit
		v1.POST("/reports/nightAudit", handlers.RunNightAudit)
		v1.POST("/reports/nightAudit/export", handlers.ExportNightAuditToExcel)
	}

	// Public invoice link (no auth; resolved by share code)
	router.POST("/invoices/getByCode", handlers.GetInvoiceByCode)
}
