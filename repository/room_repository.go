// repository/room_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/ashwinpura/hoteldesk-backend/models"
)

// RoomRepository handles database operations for the room inventory
type RoomRepository struct {
	DB *sql.DB
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository() *RoomRepository {
	return &RoomRepository{
		DB: GetDB(),
	}
}

// StoreRoom saves a room to the inventory
func (r *RoomRepository) StoreRoom(room *models.Room) error {
	_, err := r.DB.Exec(
		`INSERT INTO rooms (number, type, base_rate, floor, occupied, out_of_order)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		room.Number, room.Type, room.BaseRate, room.Floor, room.Occupied, room.OutOfOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to insert room: %v", err)
	}
	return nil
}

// ListRooms retrieves the full room inventory
func (r *RoomRepository) ListRooms() ([]models.Room, error) {
	rows, err := r.DB.Query(
		`SELECT number, type, base_rate, floor, occupied, out_of_order
         FROM rooms ORDER BY number ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %v", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var room models.Room
		err = rows.Scan(&room.Number, &room.Type, &room.BaseRate, &room.Floor,
			&room.Occupied, &room.OutOfOrder)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %v", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// UpdateRoomStatus updates occupancy and maintenance flags for a room
func (r *RoomRepository) UpdateRoomStatus(number string, occupied, outOfOrder bool) (bool, error) {
	result, err := r.DB.Exec(
		`UPDATE rooms SET occupied = $1, out_of_order = $2 WHERE number = $3`,
		occupied, outOfOrder, number,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update room status: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check updated rows: %v", err)
	}
	return affected > 0, nil
}

// GetRoom retrieves a single room by number
func (r *RoomRepository) GetRoom(number string) (*models.Room, error) {
	var room models.Room
	err := r.DB.QueryRow(
		`SELECT number, type, base_rate, floor, occupied, out_of_order
         FROM rooms WHERE number = $1`,
		number,
	).Scan(&room.Number, &room.Type, &room.BaseRate, &room.Floor,
		&room.Occupied, &room.OutOfOrder)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %v", err)
	}
	return &room, nil
}
