// repository/banquet_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
)

// BanquetRepository handles database operations for banquet bookings
type BanquetRepository struct {
	DB *sql.DB
}

// NewBanquetRepository creates a new BanquetRepository
func NewBanquetRepository() *BanquetRepository {
	return &BanquetRepository{
		DB: GetDB(),
	}
}

// StoreBooking saves a banquet booking
func (r *BanquetRepository) StoreBooking(booking *models.BanquetBooking) error {
	_, err := r.DB.Exec(
		`INSERT INTO banquet_bookings
         (id, creation_time, hall_name, customer_name, phone, event_date, event_type,
          plates, plate_rate, hall_charge, cgst_percent, sgst_percent, status)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		booking.ID, booking.CreationTime, booking.HallName, booking.CustomerName,
		booking.Phone, nullableTime(booking.EventDate), booking.EventType,
		booking.Plates, float64(booking.PlateRate), float64(booking.HallCharge),
		booking.CGSTPercent, booking.SGSTPercent, booking.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert banquet booking: %v", err)
	}
	return nil
}

// GetBooking retrieves one banquet booking with its advances
func (r *BanquetRepository) GetBooking(bookingID string) (*models.BanquetBooking, error) {
	row := r.DB.QueryRow(
		`SELECT id, creation_time, hall_name, customer_name, phone, event_date, event_type,
          plates, plate_rate, hall_charge, cgst_percent, sgst_percent, status
         FROM banquet_bookings WHERE id = $1`,
		bookingID,
	)
	booking, err := scanBanquetBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadAdvances(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListBookings retrieves banquet bookings in an event-date range
func (r *BanquetRepository) ListBookings(from, to time.Time) ([]*models.BanquetBooking, error) {
	rows, err := r.DB.Query(
		`SELECT id, creation_time, hall_name, customer_name, phone, event_date, event_type,
          plates, plate_rate, hall_charge, cgst_percent, sgst_percent, status
         FROM banquet_bookings WHERE event_date >= $1 AND event_date <= $2
         ORDER BY event_date ASC`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list banquet bookings: %v", err)
	}
	defer rows.Close()

	var bookings []*models.BanquetBooking
	for rows.Next() {
		booking, err := scanBanquetBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	for _, booking := range bookings {
		if err := r.loadAdvances(booking); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// AddAdvance appends an advance payment to a banquet booking
func (r *BanquetRepository) AddAdvance(bookingID string, payment models.AdvancePayment) error {
	_, err := r.DB.Exec(
		`INSERT INTO banquet_advances (booking_id, amount, method, paid_at)
         VALUES ($1, $2, $3, $4)`,
		bookingID, float64(payment.Amount), payment.Method, nullableTime(payment.PaidAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert banquet advance: %v", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBanquetBooking(row rowScanner) (*models.BanquetBooking, error) {
	var booking models.BanquetBooking
	var phone, eventType, status sql.NullString
	var eventDate sql.NullTime
	var plateRate, hallCharge float64

	err := row.Scan(&booking.ID, &booking.CreationTime, &booking.HallName,
		&booking.CustomerName, &phone, &eventDate, &eventType, &booking.Plates,
		&plateRate, &hallCharge, &booking.CGSTPercent, &booking.SGSTPercent, &status)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan banquet booking: %v", err)
	}

	booking.Phone = phone.String
	booking.EventType = eventType.String
	booking.Status = status.String
	if eventDate.Valid {
		booking.EventDate = models.FlexTime{Time: eventDate.Time}
	}
	booking.PlateRate = models.FlexNumber(plateRate)
	booking.HallCharge = models.FlexNumber(hallCharge)
	return &booking, nil
}

func (r *BanquetRepository) loadAdvances(booking *models.BanquetBooking) error {
	rows, err := r.DB.Query(
		`SELECT amount, method, paid_at FROM banquet_advances
         WHERE booking_id = $1 ORDER BY paid_at ASC`,
		booking.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get banquet advances: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var payment models.AdvancePayment
		var amount float64
		var method sql.NullString
		var paidAt sql.NullTime
		if err := rows.Scan(&amount, &method, &paidAt); err != nil {
			return fmt.Errorf("failed to scan banquet advance: %v", err)
		}
		payment.Amount = models.FlexNumber(amount)
		payment.Method = method.String
		if paidAt.Valid {
			payment.PaidAt = models.FlexTime{Time: paidAt.Time}
		}
		booking.Advance = append(booking.Advance, payment)
	}
	return nil
}
