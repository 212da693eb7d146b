// services/stay_service.go
package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/repository"
	"github.com/ashwinpura/hoteldesk-backend/utils"
)

// StayService handles stay lifecycle operations
type StayService struct {
	stayRepo *repository.StayRepository
}

// NewStayService creates a new stay service
func NewStayService() *StayService {
	return &StayService{
		stayRepo: repository.NewStayRepository(),
	}
}

// CreateStay validates and stores a new stay, issuing its public share
// code and an opaque share token for the invoice link.
func (s *StayService) CreateStay(request *models.CreateStayRequest) (*models.Stay, error) {
	if err := utils.ValidateRequired(request.GuestName, "guest name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNotEmpty(request.RoomRates, "room rates"); err != nil {
		return nil, err
	}
	if err := utils.ValidatePercent(request.DiscountPercent, "discount percent"); err != nil {
		return nil, err
	}
	for _, rate := range request.RoomRates {
		if err := utils.ValidateRequired(rate.RoomNumber, "room number"); err != nil {
			return nil, err
		}
		if err := utils.ValidateNonNegative(float64(rate.CustomRate), "room rate"); err != nil {
			return nil, err
		}
	}

	stay := &models.Stay{
		ID:              utils.GenerateID(),
		CreationTime:    time.Now().UnixMilli(),
		ShareCode:       utils.GenerateCode(),
		ShareToken:      uuid.New().String(),
		GuestName:       request.GuestName,
		GuestPhone:      request.GuestPhone,
		Status:          "checked_in",
		CheckIn:         request.CheckIn,
		CheckOut:        request.CheckOut,
		RoomRates:       request.RoomRates,
		DiscountPercent: request.DiscountPercent,
		CGSTPercent:     request.CGSTPercent,
		SGSTPercent:     request.SGSTPercent,
		ExtraBedCharge:  request.ExtraBedCharge,
	}

	if err := s.stayRepo.StoreStay(stay); err != nil {
		utils.LogError(err, "Failed to store stay")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return stay, nil
}

// GetStay retrieves a stay by ID
func (s *StayService) GetStay(stayID string) (*models.Stay, error) {
	stay, err := s.stayRepo.GetStay(stayID)
	if err != nil {
		utils.LogError(err, "Failed to retrieve stay")
		return nil, utils.NewInternalError("Failed to retrieve stay")
	}
	if stay == nil {
		return nil, utils.NewNotFoundError("Stay")
	}
	return stay, nil
}

// GetStayByCode retrieves a stay by its public share code
func (s *StayService) GetStayByCode(code string) (*models.Stay, error) {
	stay, err := s.stayRepo.GetStayByCode(code)
	if err != nil {
		utils.LogError(err, "Failed to retrieve stay by code")
		return nil, utils.NewInternalError("Failed to retrieve stay")
	}
	if stay == nil {
		return nil, utils.NewNotFoundError("Stay")
	}
	return stay, nil
}

// AmendStay appends a signed adjustment to a stay
func (s *StayService) AmendStay(request *models.AmendStayRequest) (*models.Stay, error) {
	if _, err := s.GetStay(request.StayID); err != nil {
		return nil, err
	}

	amendment := models.Amendment{
		ID:              utils.GenerateID(),
		Description:     request.Description,
		TotalAdjustment: request.TotalAdjustment,
		CreationTime:    time.Now().UnixMilli(),
	}
	if err := s.stayRepo.AddAmendment(request.StayID, amendment); err != nil {
		utils.LogError(err, "Failed to store amendment")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return s.GetStay(request.StayID)
}

// AddAdvance records an advance payment against a stay
func (s *StayService) AddAdvance(request *models.AddAdvanceRequest) (*models.Stay, error) {
	if err := utils.ValidatePositive(request.Amount, "advance amount"); err != nil {
		return nil, err
	}
	if _, err := s.GetStay(request.StayID); err != nil {
		return nil, err
	}

	payment := models.AdvancePayment{
		Amount: models.FlexNumber(request.Amount),
		Method: request.Method,
		PaidAt: models.FlexTime{Time: time.Now()},
	}
	if err := s.stayRepo.AddAdvance(request.StayID, payment); err != nil {
		utils.LogError(err, "Failed to store advance")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return s.GetStay(request.StayID)
}

// SetLateCheckout sets or waives the late-checkout fee on a stay
func (s *StayService) SetLateCheckout(request *models.SetLateCheckoutRequest) (*models.Stay, error) {
	if err := utils.ValidateNonNegative(request.Amount, "late checkout fee"); err != nil {
		return nil, err
	}
	if _, err := s.GetStay(request.StayID); err != nil {
		return nil, err
	}

	fee := models.LateCheckoutFee{
		Amount:  models.FlexNumber(request.Amount),
		Applied: request.Applied,
		Waived:  request.Waived,
	}
	if err := s.stayRepo.SetLateCheckout(request.StayID, fee); err != nil {
		utils.LogError(err, "Failed to update late checkout fee")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}

	return s.GetStay(request.StayID)
}

// Checkout marks a stay checked out. Billing is unaffected: the folio is
// derived from the stay's own records, not from its status.
func (s *StayService) Checkout(stayID string) (*models.Stay, error) {
	if _, err := s.GetStay(stayID); err != nil {
		return nil, err
	}
	if err := s.stayRepo.UpdateStatus(stayID, "checked_out"); err != nil {
		utils.LogError(err, "Failed to update stay status")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return s.GetStay(stayID)
}

// ListStays retrieves every stay in house on a YYYY-MM-DD business date
func (s *StayService) ListStays(request *models.ListStaysRequest) ([]*models.Stay, error) {
	date, err := time.Parse("2006-01-02", request.BusinessDate)
	if err != nil {
		return nil, utils.NewValidationError("businessDate must be YYYY-MM-DD")
	}
	return s.ListStaysForDate(date)
}

// ListStaysForDate retrieves every stay in house on a business date
func (s *StayService) ListStaysForDate(date time.Time) ([]*models.Stay, error) {
	stays, err := s.stayRepo.ListStaysForDate(date)
	if err != nil {
		utils.LogError(err, "Failed to list stays for date")
		return nil, utils.NewInternalError("Failed to retrieve stays")
	}
	return stays, nil
}
