// handlers/banquet_handlers.go
package handlers

import (
	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// BanquetAdvanceRequest request model
type BanquetAdvanceRequest struct {
	BookingID string  `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method"`
}

// CreateBanquetBooking adds a banquet hall booking
func CreateBanquetBooking(c *gin.Context) {
	var request models.CreateBanquetRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	booking, err := handlerServices.BanquetService.CreateBooking(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, booking)
}

// GetBanquetBooking retrieves a booking with its derived estimate
func GetBanquetBooking(c *gin.Context) {
	booking, err := handlerServices.BanquetService.GetBooking(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"booking":  booking,
		"estimate": handlerServices.BanquetService.Estimate(booking),
	})
}

// ListBanquetBookings retrieves bookings in an event-date range
func ListBanquetBookings(c *gin.Context) {
	var request models.ListBanquetsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	bookings, err := handlerServices.BanquetService.ListBookings(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, bookings)
}

// AddBanquetAdvance records an advance against a banquet booking
func AddBanquetAdvance(c *gin.Context) {
	var request BanquetAdvanceRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	booking, err := handlerServices.BanquetService.AddAdvance(request.BookingID, request.Amount, request.Method)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, booking)
}
