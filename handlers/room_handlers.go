// handlers/room_handlers.go
package handlers

import (
	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateRoom adds a room to the inventory
func CreateRoom(c *gin.Context) {
	var request models.CreateRoomRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	room, err := handlerServices.RoomService.CreateRoom(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, room)
}

// ListRooms retrieves the room inventory
func ListRooms(c *gin.Context) {
	rooms, err := handlerServices.RoomService.ListRooms()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, rooms)
}

// UpdateRoomStatus updates occupancy and maintenance flags
func UpdateRoomStatus(c *gin.Context) {
	var request models.UpdateRoomStatusRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.RoomService.UpdateRoomStatus(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"updated": true})
}
