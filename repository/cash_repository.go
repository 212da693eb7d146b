// repository/cash_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/shopspring/decimal"
)

// CashRepository handles database operations for cash sessions
type CashRepository struct {
	DB *sql.DB
}

// NewCashRepository creates a new CashRepository
func NewCashRepository() *CashRepository {
	return &CashRepository{
		DB: GetDB(),
	}
}

// StoreSession saves a newly opened cash session
func (r *CashRepository) StoreSession(session *models.CashSession) error {
	_, err := r.DB.Exec(
		`INSERT INTO cash_sessions
         (id, register_name, opened_by, opening_float, status, opened_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		session.ID, session.RegisterName, session.OpenedBy,
		session.OpeningFloat.String(), session.Status, session.OpenedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cash session: %v", err)
	}
	return nil
}

// GetSession retrieves a cash session with its movements
func (r *CashRepository) GetSession(sessionID string) (*models.CashSession, error) {
	var session models.CashSession
	var openingFloat string
	var expected, declared, deviation, deviationPct, classification sql.NullString
	var closedAt sql.NullTime

	err := r.DB.QueryRow(
		`SELECT id, register_name, opened_by, opening_float, expected, declared,
          deviation, deviation_pct, classification, status, opened_at, closed_at
         FROM cash_sessions WHERE id = $1`,
		sessionID,
	).Scan(&session.ID, &session.RegisterName, &session.OpenedBy, &openingFloat,
		&expected, &declared, &deviation, &deviationPct, &classification,
		&session.Status, &session.OpenedAt, &closedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cash session: %v", err)
	}

	session.OpeningFloat, err = decimal.NewFromString(openingFloat)
	if err != nil {
		return nil, fmt.Errorf("failed to parse opening float: %v", err)
	}
	session.Expected = parseNullDecimal(expected)
	session.Declared = parseNullDecimal(declared)
	session.Deviation = parseNullDecimal(deviation)
	session.DeviationPct = parseNullDecimal(deviationPct)
	session.Classification = classification.String
	if closedAt.Valid {
		session.ClosedAt = &closedAt.Time
	}

	if err := r.loadMovements(&session); err != nil {
		return nil, err
	}

	return &session, nil
}

// StoreMovement appends an immutable movement to a session ledger
func (r *CashRepository) StoreMovement(movement *models.CashMovement) error {
	_, err := r.DB.Exec(
		`INSERT INTO cash_movements
         (id, session_id, type, amount, description, reference_id, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		movement.ID, movement.SessionID, movement.Type, movement.Amount.String(),
		movement.Description, movement.ReferenceID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cash movement: %v", err)
	}
	return nil
}

// CloseSession records the declared amount and computed deviation fields
func (r *CashRepository) CloseSession(session *models.CashSession) error {
	_, err := r.DB.Exec(
		`UPDATE cash_sessions
         SET expected = $1, declared = $2, deviation = $3, deviation_pct = $4,
             classification = $5, status = $6, closed_at = $7
         WHERE id = $8`,
		nullDecimalString(session.Expected), nullDecimalString(session.Declared),
		nullDecimalString(session.Deviation), nullDecimalString(session.DeviationPct),
		session.Classification, session.Status, session.ClosedAt, session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to close cash session: %v", err)
	}
	return nil
}

func (r *CashRepository) loadMovements(session *models.CashSession) error {
	rows, err := r.DB.Query(
		`SELECT id, type, amount, description, reference_id, created_at
         FROM cash_movements WHERE session_id = $1 ORDER BY created_at ASC`,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get cash movements: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movement models.CashMovement
		var amount string
		var referenceID sql.NullString
		err = rows.Scan(&movement.ID, &movement.Type, &amount,
			&movement.Description, &referenceID, &movement.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to scan cash movement: %v", err)
		}
		movement.SessionID = session.ID
		movement.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("failed to parse movement amount: %v", err)
		}
		movement.ReferenceID = referenceID.String
		session.Movements = append(session.Movements, movement)
	}
	return nil
}

func parseNullDecimal(value sql.NullString) *decimal.Decimal {
	if !value.Valid {
		return nil
	}
	parsed, err := decimal.NewFromString(value.String)
	if err != nil {
		return nil
	}
	return &parsed
}

func nullDecimalString(value *decimal.Decimal) interface{} {
	if value == nil {
		return nil
	}
	return value.String()
}
