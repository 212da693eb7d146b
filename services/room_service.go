// services/room_service.go
package services

import (
	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/repository"
	"github.com/ashwinpura/hoteldesk-backend/utils"
)

// RoomService handles the room inventory
type RoomService struct {
	roomRepo *repository.RoomRepository
}

// NewRoomService creates a new room service
func NewRoomService() *RoomService {
	return &RoomService{
		roomRepo: repository.NewRoomRepository(),
	}
}

// CreateRoom adds a room to the inventory
func (s *RoomService) CreateRoom(request *models.CreateRoomRequest) (*models.Room, error) {
	if err := utils.ValidateRequired(request.Number, "room number"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositive(request.BaseRate, "base rate"); err != nil {
		return nil, err
	}

	existing, err := s.roomRepo.GetRoom(request.Number)
	if err != nil {
		utils.LogError(err, "Failed to check room")
		return nil, utils.NewInternalError("Failed to retrieve room")
	}
	if existing != nil {
		return nil, utils.NewConflictError("Room already exists")
	}

	room := &models.Room{
		Number:   request.Number,
		Type:     request.Type,
		BaseRate: request.BaseRate,
		Floor:    request.Floor,
	}
	if err := s.roomRepo.StoreRoom(room); err != nil {
		utils.LogError(err, "Failed to store room")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return room, nil
}

// ListRooms retrieves the full room inventory
func (s *RoomService) ListRooms() ([]models.Room, error) {
	rooms, err := s.roomRepo.ListRooms()
	if err != nil {
		utils.LogError(err, "Failed to list rooms")
		return nil, utils.NewInternalError("Failed to retrieve rooms")
	}
	return rooms, nil
}

// UpdateRoomStatus updates occupancy and maintenance flags
func (s *RoomService) UpdateRoomStatus(request *models.UpdateRoomStatusRequest) error {
	updated, err := s.roomRepo.UpdateRoomStatus(request.Number, request.Occupied, request.OutOfOrder)
	if err != nil {
		utils.LogError(err, "Failed to update room status")
		return utils.NewInternalError("Failed to update room")
	}
	if !updated {
		return utils.NewNotFoundError("Room")
	}
	return nil
}
