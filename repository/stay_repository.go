// repository/stay_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
)

// StayRepository handles database operations for stays
type StayRepository struct {
	DB *sql.DB
}

// NewStayRepository creates a new StayRepository
func NewStayRepository() *StayRepository {
	return &StayRepository{
		DB: GetDB(),
	}
}

// StoreStay saves a stay and its room rates to the database
func (r *StayRepository) StoreStay(stay *models.Stay) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO stays
         (id, creation_time, share_code, share_token, guest_name, guest_phone, status,
          check_in, check_out, discount_percent, cgst_percent, sgst_percent,
          extra_bed_charge, late_fee_amount, late_fee_applied, late_fee_waived)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		stay.ID, stay.CreationTime, stay.ShareCode, stay.ShareToken, stay.GuestName,
		stay.GuestPhone, stay.Status, nullableTime(stay.CheckIn), nullableTime(stay.CheckOut),
		stay.DiscountPercent, stay.CGSTPercent, stay.SGSTPercent, stay.ExtraBedCharge,
		lateFeeAmount(stay), lateFeeApplied(stay), lateFeeWaived(stay),
	)
	if err != nil {
		return fmt.Errorf("failed to insert stay: %v", err)
	}

	for _, rate := range stay.RoomRates {
		_, err = tx.Exec(
			`INSERT INTO stay_room_rates
             (stay_id, room_number, custom_rate, extra_bed, extra_bed_start)
             VALUES ($1, $2, $3, $4, $5)`,
			stay.ID, rate.RoomNumber, float64(rate.CustomRate), rate.ExtraBed,
			nullableTime(rate.ExtraBedStart),
		)
		if err != nil {
			return fmt.Errorf("failed to insert room rate: %v", err)
		}
	}

	return tx.Commit()
}

// GetStay retrieves a stay with its room rates, amendments and advances
func (r *StayRepository) GetStay(stayID string) (*models.Stay, error) {
	return r.getStayWhere("id = $1", stayID)
}

// GetStayByCode retrieves a stay by its public share code
func (r *StayRepository) GetStayByCode(code string) (*models.Stay, error) {
	return r.getStayWhere("share_code = $1", code)
}

func (r *StayRepository) getStayWhere(where string, arg interface{}) (*models.Stay, error) {
	var stay models.Stay
	var checkIn, checkOut sql.NullTime
	var lateAmount sql.NullFloat64
	var lateApplied, lateWaived sql.NullBool

	err := r.DB.QueryRow(
		`SELECT id, creation_time, share_code, share_token, guest_name, guest_phone, status,
          check_in, check_out, discount_percent, cgst_percent, sgst_percent,
          extra_bed_charge, late_fee_amount, late_fee_applied, late_fee_waived
         FROM stays WHERE `+where,
		arg,
	).Scan(
		&stay.ID, &stay.CreationTime, &stay.ShareCode, &stay.ShareToken, &stay.GuestName,
		&stay.GuestPhone, &stay.Status, &checkIn, &checkOut, &stay.DiscountPercent,
		&stay.CGSTPercent, &stay.SGSTPercent, &stay.ExtraBedCharge,
		&lateAmount, &lateApplied, &lateWaived,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stay: %v", err)
	}

	if checkIn.Valid {
		stay.CheckIn = models.FlexTime{Time: checkIn.Time}
	}
	if checkOut.Valid {
		stay.CheckOut = models.FlexTime{Time: checkOut.Time}
	}
	if lateAmount.Valid && (lateApplied.Bool || lateWaived.Bool || lateAmount.Float64 != 0) {
		stay.LateCheckout = &models.LateCheckoutFee{
			Amount:  models.FlexNumber(lateAmount.Float64),
			Applied: lateApplied.Bool,
			Waived:  lateWaived.Bool,
		}
	}

	if err := r.loadRoomRates(&stay); err != nil {
		return nil, err
	}
	if err := r.loadAmendments(&stay); err != nil {
		return nil, err
	}
	if err := r.loadAdvances(&stay); err != nil {
		return nil, err
	}

	return &stay, nil
}

// auditWindow is the half-open [start, end) span of one business date. A
// check-in at exactly the next midnight belongs to the next date's audit.
func auditWindow(date time.Time) (start, end time.Time) {
	return date, date.Add(24 * time.Hour)
}

// ListStaysForDate retrieves every stay in house on a business date
func (r *StayRepository) ListStaysForDate(date time.Time) ([]*models.Stay, error) {
	start, end := auditWindow(date)
	rows, err := r.DB.Query(
		`SELECT id FROM stays
         WHERE check_in < $1 AND (check_out IS NULL OR check_out >= $2)
         ORDER BY creation_time ASC`,
		end, start,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stays: %v", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan stay id: %v", err)
		}
		ids = append(ids, id)
	}

	stays := make([]*models.Stay, 0, len(ids))
	for _, id := range ids {
		stay, err := r.GetStay(id)
		if err != nil {
			return nil, err
		}
		if stay != nil {
			stays = append(stays, stay)
		}
	}
	return stays, nil
}

// AddAmendment appends an amendment record to a stay
func (r *StayRepository) AddAmendment(stayID string, amendment models.Amendment) error {
	_, err := r.DB.Exec(
		`INSERT INTO stay_amendments (id, stay_id, description, total_adjustment, creation_time)
         VALUES ($1, $2, $3, $4, $5)`,
		amendment.ID, stayID, amendment.Description,
		float64(amendment.TotalAdjustment), amendment.CreationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert amendment: %v", err)
	}
	return nil
}

// AddAdvance appends an advance payment record to a stay
func (r *StayRepository) AddAdvance(stayID string, payment models.AdvancePayment) error {
	_, err := r.DB.Exec(
		`INSERT INTO stay_advances (stay_id, amount, method, paid_at)
         VALUES ($1, $2, $3, $4)`,
		stayID, float64(payment.Amount), payment.Method, nullableTime(payment.PaidAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert advance: %v", err)
	}
	return nil
}

// SetLateCheckout updates the late-checkout fee record on a stay
func (r *StayRepository) SetLateCheckout(stayID string, fee models.LateCheckoutFee) error {
	result, err := r.DB.Exec(
		`UPDATE stays SET late_fee_amount = $1, late_fee_applied = $2, late_fee_waived = $3
         WHERE id = $4`,
		float64(fee.Amount), fee.Applied, fee.Waived, stayID,
	)
	if err != nil {
		return fmt.Errorf("failed to update late checkout fee: %v", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus sets the stay lifecycle status
func (r *StayRepository) UpdateStatus(stayID, status string) error {
	_, err := r.DB.Exec(`UPDATE stays SET status = $1 WHERE id = $2`, status, stayID)
	if err != nil {
		return fmt.Errorf("failed to update stay status: %v", err)
	}
	return nil
}

func (r *StayRepository) loadRoomRates(stay *models.Stay) error {
	rows, err := r.DB.Query(
		`SELECT room_number, custom_rate, extra_bed, extra_bed_start
         FROM stay_room_rates WHERE stay_id = $1`,
		stay.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get room rates: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rate models.RoomRate
		var customRate float64
		var start sql.NullTime
		if err := rows.Scan(&rate.RoomNumber, &customRate, &rate.ExtraBed, &start); err != nil {
			return fmt.Errorf("failed to scan room rate: %v", err)
		}
		rate.CustomRate = models.FlexNumber(customRate)
		if start.Valid {
			rate.ExtraBedStart = models.FlexTime{Time: start.Time}
		}
		stay.RoomRates = append(stay.RoomRates, rate)
	}
	return nil
}

func (r *StayRepository) loadAmendments(stay *models.Stay) error {
	rows, err := r.DB.Query(
		`SELECT id, description, total_adjustment, creation_time
         FROM stay_amendments WHERE stay_id = $1 ORDER BY creation_time ASC`,
		stay.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get amendments: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var amendment models.Amendment
		var adjustment float64
		if err := rows.Scan(&amendment.ID, &amendment.Description, &adjustment, &amendment.CreationTime); err != nil {
			return fmt.Errorf("failed to scan amendment: %v", err)
		}
		amendment.TotalAdjustment = models.FlexNumber(adjustment)
		stay.Amendments = append(stay.Amendments, amendment)
	}
	return nil
}

func (r *StayRepository) loadAdvances(stay *models.Stay) error {
	rows, err := r.DB.Query(
		`SELECT amount, method, paid_at FROM stay_advances
         WHERE stay_id = $1 ORDER BY paid_at ASC`,
		stay.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get advances: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var payment models.AdvancePayment
		var amount float64
		var method sql.NullString
		var paidAt sql.NullTime
		if err := rows.Scan(&amount, &method, &paidAt); err != nil {
			return fmt.Errorf("failed to scan advance: %v", err)
		}
		payment.Amount = models.FlexNumber(amount)
		payment.Method = method.String
		if paidAt.Valid {
			payment.PaidAt = models.FlexTime{Time: paidAt.Time}
		}
		stay.Advance = append(stay.Advance, payment)
	}
	return nil
}

func nullableTime(t models.FlexTime) interface{} {
	if !t.Valid() {
		return nil
	}
	return t.Time
}

func lateFeeAmount(stay *models.Stay) float64 {
	if stay.LateCheckout == nil {
		return 0
	}
	return float64(stay.LateCheckout.Amount)
}

func lateFeeApplied(stay *models.Stay) bool {
	return stay.LateCheckout != nil && stay.LateCheckout.Applied
}

func lateFeeWaived(stay *models.Stay) bool {
	return stay.LateCheckout != nil && stay.LateCheckout.Waived
}
