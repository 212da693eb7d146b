// services/cash_service.go
package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/repository"
	"github.com/ashwinpura/hoteldesk-backend/utils"
)

// Deviation classification thresholds, percent of expected drawer amount.
var (
	deviationWarningPct  = decimal.NewFromInt(1)
	deviationCriticalPct = decimal.NewFromInt(5)
)

// CashService handles register drawer sessions. The drawer ledger uses
// exact decimal arithmetic; movements are immutable and corrections are
// inverse reversal entries.
type CashService struct {
	cashRepo *repository.CashRepository
}

// NewCashService creates a new cash service
func NewCashService() *CashService {
	return &CashService{
		cashRepo: repository.NewCashRepository(),
	}
}

// OpenSession opens a register drawer with an opening float
func (s *CashService) OpenSession(request *models.OpenCashSessionRequest) (*models.CashSession, error) {
	if err := utils.ValidateRequired(request.RegisterName, "register name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(request.OpeningFloat, "opening float"); err != nil {
		return nil, err
	}

	session := &models.CashSession{
		ID:           uuid.New().String(),
		RegisterName: request.RegisterName,
		OpenedBy:     request.OpenedBy,
		OpeningFloat: decimal.NewFromFloat(request.OpeningFloat),
		Status:       utils.CashSessionOpen,
		OpenedAt:     time.Now(),
	}
	if err := s.cashRepo.StoreSession(session); err != nil {
		utils.LogError(err, "Failed to store cash session")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return session, nil
}

// GetSession retrieves a session with its ledger
func (s *CashService) GetSession(sessionID string) (*models.CashSession, error) {
	session, err := s.cashRepo.GetSession(sessionID)
	if err != nil {
		utils.LogError(err, "Failed to retrieve cash session")
		return nil, utils.NewInternalError("Failed to retrieve cash session")
	}
	if session == nil {
		return nil, utils.NewNotFoundError("Cash session")
	}
	return session, nil
}

// AddMovement appends a ledger entry to an open session. Outflows and
// reversals are stored with their sign so the expected amount is a plain sum.
func (s *CashService) AddMovement(request *models.AddCashMovementRequest) (*models.CashMovement, error) {
	switch request.Type {
	case utils.CashMovementSale, utils.CashMovementManualIn,
		utils.CashMovementManualOut, utils.CashMovementReversal:
	default:
		return nil, utils.NewValidationError("unknown movement type")
	}

	session, err := s.GetSession(request.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != utils.CashSessionOpen {
		return nil, utils.NewConflictError("Cash session is closed")
	}

	amount := decimal.NewFromFloat(request.Amount)
	if request.Type == utils.CashMovementManualOut && amount.IsPositive() {
		amount = amount.Neg()
	}

	movement := &models.CashMovement{
		ID:          uuid.New().String(),
		SessionID:   session.ID,
		Type:        request.Type,
		Amount:      amount,
		Description: request.Description,
		ReferenceID: request.ReferenceID,
		CreatedAt:   time.Now(),
	}
	if err := s.cashRepo.StoreMovement(movement); err != nil {
		utils.LogError(err, "Failed to store cash movement")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return movement, nil
}

// CloseSession computes expected = opening float + sum of movements,
// records the declared amount, and classifies the deviation.
func (s *CashService) CloseSession(request *models.CloseCashSessionRequest) (*models.CashSession, error) {
	session, err := s.GetSession(request.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != utils.CashSessionOpen {
		return nil, utils.NewConflictError("Cash session already closed")
	}

	expected := s.ExpectedAmount(session)
	declared := decimal.NewFromFloat(request.Declared)
	deviation := declared.Sub(expected)
	deviationPct := DeviationPercent(expected, deviation)
	classification := ClassifyDeviation(deviationPct)

	now := time.Now()
	session.Expected = &expected
	session.Declared = &declared
	session.Deviation = &deviation
	session.DeviationPct = &deviationPct
	session.Classification = classification
	session.Status = utils.CashSessionClosed
	session.ClosedAt = &now

	if err := s.cashRepo.CloseSession(session); err != nil {
		utils.LogError(err, "Failed to close cash session")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return session, nil
}

// ExpectedAmount is the opening float plus the signed sum of all movements.
func (s *CashService) ExpectedAmount(session *models.CashSession) decimal.Decimal {
	expected := session.OpeningFloat
	for _, movement := range session.Movements {
		expected = expected.Add(movement.Amount)
	}
	return expected
}

// DeviationPercent returns |deviation| as a percentage of expected,
// rounded to 2 places. A zero expected drawer reports 0.
func DeviationPercent(expected, deviation decimal.Decimal) decimal.Decimal {
	if expected.IsZero() {
		return decimal.Zero
	}
	return deviation.Abs().Div(expected.Abs()).Mul(decimal.NewFromInt(100)).Round(2)
}

// ClassifyDeviation buckets a deviation percentage: under 1% is normal,
// under 5% is a warning, anything above is critical.
func ClassifyDeviation(deviationPct decimal.Decimal) string {
	if deviationPct.LessThan(deviationWarningPct) {
		return utils.DeviationNormal
	}
	if deviationPct.LessThan(deviationCriticalPct) {
		return utils.DeviationWarning
	}
	return utils.DeviationCritical
}
