// services/audit_service.go
package services

import (
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"
)

// AuditService builds the night-audit rollup. Every row's summary comes
// from FolioService.ComputeFolio, the same call the live folio screen and
// the public invoice make, so the rollup cannot drift from them.
type AuditService struct {
	stayService  *StayService
	orderService *OrderService
	folioService *FolioService
}

// NewAuditService creates a new audit service
func NewAuditService(stayService *StayService, orderService *OrderService, folioService *FolioService) *AuditService {
	return &AuditService{
		stayService:  stayService,
		orderService: orderService,
		folioService: folioService,
	}
}

// RunNightAudit computes every in-house folio for a business date and
// aggregates the totals.
func (s *AuditService) RunNightAudit(businessDate string) (*models.NightAuditReport, error) {
	date, err := time.Parse("2006-01-02", businessDate)
	if err != nil {
		return nil, utils.NewValidationError("businessDate must be YYYY-MM-DD")
	}

	stays, err := s.stayService.ListStaysForDate(date)
	if err != nil {
		return nil, err
	}

	report := &models.NightAuditReport{
		BusinessDate: businessDate,
		StayCount:    len(stays),
		Rows:         make([]models.NightAuditRow, 0, len(stays)),
	}

	for _, stay := range stays {
		serviceOrders, err := s.orderService.ListOrders(stay.ID, utils.CategoryRoomService)
		if err != nil {
			return nil, err
		}
		restaurantOrders, err := s.orderService.ListOrders(stay.ID, utils.CategoryRestaurant)
		if err != nil {
			return nil, err
		}
		laundryOrders, err := s.orderService.ListOrders(stay.ID, utils.CategoryLaundry)
		if err != nil {
			return nil, err
		}

		summary := s.folioService.ComputeFolio(stay, serviceOrders, restaurantOrders, laundryOrders)

		report.Rows = append(report.Rows, models.NightAuditRow{
			StayID:    stay.ID,
			GuestName: stay.GuestName,
			RoomLabel: roomLabel(stay),
			Status:    stay.Status,
			Summary:   summary,
		})

		report.RoomRevenue += summary.RoomSubtotal
		report.DiscountTotal += summary.DiscountAmount
		report.RoomServiceTotal += summary.RoomServiceTotal
		report.RestaurantTotal += summary.RestaurantTotal
		report.LaundryTotal += summary.LaundryTotal
		report.LateFeeTotal += summary.LateCheckoutFee
		report.AmendmentTotal += summary.AmendmentAdjustment
		report.CGSTTotal += summary.CGSTAmount
		report.SGSTTotal += summary.SGSTAmount
		report.RoundOffTotal += summary.RoundOff
		report.GrossTotal += summary.RoundedTotal
		report.AdvanceTotal += summary.TotalAdvance
		report.BalanceTotal += summary.BalanceDue
	}

	return report, nil
}

func roomLabel(stay *models.Stay) string {
	numbers := make([]string, 0, len(stay.RoomRates))
	for _, rate := range stay.RoomRates {
		numbers = append(numbers, rate.RoomNumber)
	}
	return utils.FormatRoomNumbers(numbers)
}
