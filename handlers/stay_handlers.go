// handlers/stay_handlers.go
package handlers

import (
	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateStay handles the creation of a new stay
func CreateStay(c *gin.Context) {
	var request models.CreateStayRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stay, err := handlerServices.StayService.CreateStay(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stay)
}

// GetStay handles retrieving a stay by ID
func GetStay(c *gin.Context) {
	stay, err := handlerServices.StayService.GetStay(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stay)
}

// ListStays retrieves every stay in house on a business date
func ListStays(c *gin.Context) {
	var request models.ListStaysRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stays, err := handlerServices.StayService.ListStays(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stays)
}

// CheckoutStay marks a stay as checked out
func CheckoutStay(c *gin.Context) {
	stay, err := handlerServices.StayService.Checkout(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stay)
}

// AmendStay appends a signed adjustment to a stay
func AmendStay(c *gin.Context) {
	var request models.AmendStayRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stay, err := handlerServices.StayService.AmendStay(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stay)
}

// AddAdvance records an advance payment against a stay
func AddAdvance(c *gin.Context) {
	var request models.AddAdvanceRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stay, err := handlerServices.StayService.AddAdvance(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stay)
}

// SetLateCheckout sets or waives the late-checkout fee on a stay
func SetLateCheckout(c *gin.Context) {
	var request models.SetLateCheckoutRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stay, err := handlerServices.StayService.SetLateCheckout(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, stay)
}
