// handlers/folio_handlers.go
package handlers

import (
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// ComputeFolio computes a folio summary from inline collections. Screens
// that already hold the stay and order data use this to get the arithmetic
// without a second fetch.
func ComputeFolio(c *gin.Context) {
	var request models.ComputeFolioRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	summary := handlerServices.FolioService.ComputeFolio(
		&request.Stay,
		request.ServiceOrders,
		request.RestaurantOrders,
		request.LaundryOrders,
	)

	utils.HandleSuccess(c, summary)
}

// GetFolio returns the live folio for a stay: the stored stay, its three
// order collections, and the summary computed from them.
func GetFolio(c *gin.Context) {
	stay, err := handlerServices.StayService.GetStay(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	response, err := buildFolioResponse(stay)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, response)
}

// GetInvoiceByCode is the public shareable invoice: it resolves a stay by
// its share code and returns the same summary the folio screen shows.
func GetInvoiceByCode(c *gin.Context) {
	var request models.GetStayByCodeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrCodeRequired))
		return
	}

	stay, err := handlerServices.StayService.GetStayByCode(request.Code)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	response, err := buildFolioResponse(stay)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	numbers := make([]string, 0, len(stay.RoomRates))
	for _, rate := range stay.RoomRates {
		numbers = append(numbers, rate.RoomNumber)
	}

	utils.HandleSuccess(c, models.InvoiceResponse{
		ShareCode:   stay.ShareCode,
		GuestName:   stay.GuestName,
		RoomLabel:   utils.FormatRoomNumbers(numbers),
		CheckIn:     stay.CheckIn,
		CheckOut:    stay.CheckOut,
		Summary:     response.Summary,
		GeneratedAt: time.Now().UnixMilli(),
	})
}

func buildFolioResponse(stay *models.Stay) (*models.FolioResponse, error) {
	serviceOrders, err := handlerServices.OrderService.ListOrders(stay.ID, utils.CategoryRoomService)
	if err != nil {
		return nil, err
	}
	restaurantOrders, err := handlerServices.OrderService.ListOrders(stay.ID, utils.CategoryRestaurant)
	if err != nil {
		return nil, err
	}
	laundryOrders, err := handlerServices.OrderService.ListOrders(stay.ID, utils.CategoryLaundry)
	if err != nil {
		return nil, err
	}

	summary := handlerServices.FolioService.ComputeFolio(stay, serviceOrders, restaurantOrders, laundryOrders)

	return &models.FolioResponse{
		Stay:             stay,
		ServiceOrders:    serviceOrders,
		RestaurantOrders: restaurantOrders,
		LaundryOrders:    laundryOrders,
		Summary:          summary,
	}, nil
}
