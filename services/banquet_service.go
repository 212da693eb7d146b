// services/banquet_service.go
package services

import (
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/repository"
	"github.com/ashwinpura/hoteldesk-backend/utils"
)

// BanquetService handles banquet hall bookings. Estimates share the folio
// engine's tax and rounding policy so a banquet invoice and a guest folio
// can never disagree on how a rupee rounds.
type BanquetService struct {
	banquetRepo  *repository.BanquetRepository
	folioService *FolioService
}

// NewBanquetService creates a new banquet service
func NewBanquetService(folioService *FolioService) *BanquetService {
	return &BanquetService{
		banquetRepo:  repository.NewBanquetRepository(),
		folioService: folioService,
	}
}

// CreateBooking validates and stores a banquet booking
func (s *BanquetService) CreateBooking(request *models.CreateBanquetRequest) (*models.BanquetBooking, error) {
	if err := utils.ValidateRequired(request.HallName, "hall name"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(request.CustomerName, "customer name"); err != nil {
		return nil, err
	}
	if !request.EventDate.Valid() {
		return nil, utils.NewValidationError("event date is required")
	}

	booking := &models.BanquetBooking{
		ID:           utils.GenerateID(),
		CreationTime: time.Now().UnixMilli(),
		HallName:     request.HallName,
		CustomerName: request.CustomerName,
		Phone:        request.Phone,
		EventDate:    request.EventDate,
		EventType:    request.EventType,
		Plates:       request.Plates,
		PlateRate:    models.FlexNumber(request.PlateRate),
		HallCharge:   models.FlexNumber(request.HallCharge),
		CGSTPercent:  request.CGSTPercent,
		SGSTPercent:  request.SGSTPercent,
		Status:       "confirmed",
	}
	if err := s.banquetRepo.StoreBooking(booking); err != nil {
		utils.LogError(err, "Failed to store banquet booking")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return booking, nil
}

// GetBooking retrieves a banquet booking
func (s *BanquetService) GetBooking(bookingID string) (*models.BanquetBooking, error) {
	booking, err := s.banquetRepo.GetBooking(bookingID)
	if err != nil {
		utils.LogError(err, "Failed to retrieve banquet booking")
		return nil, utils.NewInternalError("Failed to retrieve banquet booking")
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Banquet booking")
	}
	return booking, nil
}

// ListBookings retrieves bookings in an event-date range; an open range
// defaults to the next year.
func (s *BanquetService) ListBookings(request *models.ListBanquetsRequest) ([]*models.BanquetBooking, error) {
	from := request.From.Time
	to := request.To.Time
	if !request.From.Valid() {
		from = time.Now().AddDate(0, 0, -1)
	}
	if !request.To.Valid() {
		to = from.AddDate(1, 0, 0)
	}

	bookings, err := s.banquetRepo.ListBookings(from, to)
	if err != nil {
		utils.LogError(err, "Failed to list banquet bookings")
		return nil, utils.NewInternalError("Failed to retrieve banquet bookings")
	}
	return bookings, nil
}

// AddAdvance records an advance against a banquet booking
func (s *BanquetService) AddAdvance(bookingID string, amount float64, method string) (*models.BanquetBooking, error) {
	if err := utils.ValidatePositive(amount, "advance amount"); err != nil {
		return nil, err
	}
	if _, err := s.GetBooking(bookingID); err != nil {
		return nil, err
	}

	payment := models.AdvancePayment{
		Amount: models.FlexNumber(amount),
		Method: method,
		PaidAt: models.FlexTime{Time: time.Now()},
	}
	if err := s.banquetRepo.AddAdvance(bookingID, payment); err != nil {
		utils.LogError(err, "Failed to store banquet advance")
		return nil, utils.NewInternalError(utils.ErrFailedToStore)
	}
	return s.GetBooking(bookingID)
}

// Estimate derives a banquet booking's financial summary using the shared
// tax-and-rounding tail of the folio engine.
func (s *BanquetService) Estimate(booking *models.BanquetBooking) *models.BanquetEstimate {
	platesTotal := float64(booking.Plates) * float64(booking.PlateRate)
	hallCharge := float64(booking.HallCharge)
	preTaxSubtotal := platesTotal + hallCharge

	taxed := s.folioService.TaxedTotals(preTaxSubtotal, booking.CGSTPercent, booking.SGSTPercent)
	totalAdvance := booking.Advance.Total()

	return &models.BanquetEstimate{
		PlatesTotal:    platesTotal,
		HallCharge:     hallCharge,
		PreTaxSubtotal: preTaxSubtotal,
		CGSTAmount:     taxed.CGSTAmount,
		SGSTAmount:     taxed.SGSTAmount,
		ExactTotal:     taxed.ExactTotal,
		RoundedTotal:   taxed.RoundedTotal,
		RoundOff:       taxed.RoundOff,
		TotalAdvance:   totalAdvance,
		BalanceDue:     s.folioService.BalanceDue(taxed.RoundedTotal, totalAdvance),
	}
}
