// handlers/cash_handlers.go
package handlers

import (
	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// OpenCashSession opens a register drawer
func OpenCashSession(c *gin.Context) {
	var request models.OpenCashSessionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	session, err := handlerServices.CashService.OpenSession(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, session)
}

// GetCashSession retrieves a session with its ledger
func GetCashSession(c *gin.Context) {
	session, err := handlerServices.CashService.GetSession(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, session)
}

// AddCashMovement appends a ledger entry to an open session
func AddCashMovement(c *gin.Context) {
	var request models.AddCashMovementRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	movement, err := handlerServices.CashService.AddMovement(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, movement)
}

// CloseCashSession closes a session with the declared drawer amount
func CloseCashSession(c *gin.Context) {
	var request models.CloseCashSessionRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	session, err := handlerServices.CashService.CloseSession(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, session)
}
