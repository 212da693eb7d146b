// handlers/order_handlers.go
package handlers

import (
	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateOrder adds a charge order (room service, restaurant, or laundry)
func CreateOrder(c *gin.Context) {
	var request models.CreateOrderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	order, err := handlerServices.OrderService.CreateOrder(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, order)
}

// ListOrders retrieves a stay's charge orders
func ListOrders(c *gin.Context) {
	var request models.ListOrdersRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	orders, err := handlerServices.OrderService.ListOrders(request.StayID, request.Category)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, orders)
}

// VoidOrder marks an entire order non-chargeable
func VoidOrder(c *gin.Context) {
	var request models.VoidOrderRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.OrderService.VoidOrder(request.OrderID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"voided": true})
}

// VoidOrderLine marks one line of an order non-chargeable
func VoidOrderLine(c *gin.Context) {
	var request models.VoidOrderLineRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.OrderService.VoidOrderLine(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"voided": true})
}
