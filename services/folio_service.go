package services

import (
	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"
)

const millisPerDay = 86_400_000.0

// FolioService owns every stage of folio billing: charge normalization,
// stay duration, discount, aggregation, tax, rounding, and advance
// reconciliation. The live folio screen, the public invoice, and the night
// audit all go through ComputeFolio; none re-implements any stage.
type FolioService struct{}

// NewFolioService creates a new folio service
func NewFolioService() *FolioService {
	return &FolioService{}
}

// TaxedTotals is the tax-and-rounding tail shared by folios and banquet
// estimates.
type TaxedTotals struct {
	CGSTPercent  float64
	SGSTPercent  float64
	CGSTAmount   float64
	SGSTAmount   float64
	ExactTotal   float64
	RoundedTotal float64
	RoundOff     float64
}

// ComputeFolio aggregates a stay's charges into one financial summary.
// It is a pure function over its four inputs: it never errors, reads no
// ambient state, and treats an empty or not-yet-loaded collection as "no
// charges of that kind". Missing numerics contribute zero.
func (s *FolioService) ComputeFolio(stay *models.Stay, serviceOrders, restaurantOrders, laundryOrders []models.ChargeOrder) *models.FolioSummary {
	if stay == nil {
		stay = &models.Stay{}
	}

	nights := s.Nights(stay.CheckIn, stay.CheckOut)
	roomCost := s.roomCost(stay, nights)
	extraBedCost := s.extraBedCost(stay)
	roomSubtotal := roomCost + extraBedCost

	discountPercent := clampPercent(stay.DiscountPercent)
	discountAmount := roomSubtotal * discountPercent / 100
	roomAfterDiscount := roomSubtotal - discountAmount

	serviceTotal := s.CategoryTotal(serviceOrders, utils.CategoryRoomService)
	restaurantTotal := s.CategoryTotal(restaurantOrders, utils.CategoryRestaurant)
	laundryTotal := s.CategoryTotal(laundryOrders, utils.CategoryLaundry)

	lateFee := s.lateCheckoutFee(stay)
	amendmentTotal := s.amendmentAdjustment(stay)

	preTaxSubtotal := roomAfterDiscount + serviceTotal + restaurantTotal + laundryTotal + lateFee + amendmentTotal

	taxed := s.TaxedTotals(preTaxSubtotal, stay.CGSTPercent, stay.SGSTPercent)

	totalAdvance := stay.Advance.Total()
	balanceDue := s.BalanceDue(taxed.RoundedTotal, totalAdvance)

	return &models.FolioSummary{
		StayID: stay.ID,

		Nights:       nights,
		RoomCost:     roomCost,
		ExtraBedCost: extraBedCost,
		RoomSubtotal: roomSubtotal,

		DiscountPercent:   discountPercent,
		DiscountAmount:    discountAmount,
		RoomAfterDiscount: roomAfterDiscount,

		RoomServiceTotal: serviceTotal,
		RestaurantTotal:  restaurantTotal,
		LaundryTotal:     laundryTotal,

		LateCheckoutFee:     lateFee,
		AmendmentAdjustment: amendmentTotal,

		PreTaxSubtotal: preTaxSubtotal,
		CGSTPercent:    taxed.CGSTPercent,
		SGSTPercent:    taxed.SGSTPercent,
		CGSTAmount:     taxed.CGSTAmount,
		SGSTAmount:     taxed.SGSTAmount,

		ExactTotal:   taxed.ExactTotal,
		RoundedTotal: taxed.RoundedTotal,
		RoundOff:     taxed.RoundOff,

		TotalAdvance: totalAdvance,
		BalanceDue:   balanceDue,
	}
}

// NormalizeOrder converts one order's lines to the uniform ChargeLine shape
// with a single resolved chargeability. An order-level non-chargeable flag
// overrides every line; otherwise a line is excluded if any of its own flags
// is set, or, for laundry, if its status is "lost". Missing fields degrade
// to zero contribution rather than erroring.
func (s *FolioService) NormalizeOrder(order models.ChargeOrder, category string) []models.ChargeLine {
	lines := make([]models.ChargeLine, 0, len(order.Items))
	for _, item := range order.Items {
		chargeable := !order.NonChargeable &&
			!item.ResolvedNonChargeable() && !item.IsFree
		if chargeable && category == utils.CategoryLaundry &&
			utils.NormalizeStatus(item.Status) == utils.LaundryStatusLost {
			chargeable = false
		}
		lines = append(lines, models.ChargeLine{
			Quantity:   float64(item.Quantity),
			UnitPrice:  item.ResolvedUnitPrice(),
			Chargeable: chargeable,
		})
	}
	return lines
}

// CategoryTotal sums the chargeable value of every order in a category.
func (s *FolioService) CategoryTotal(orders []models.ChargeOrder, category string) float64 {
	var total float64
	for _, order := range orders {
		for _, line := range s.NormalizeOrder(order, category) {
			total += line.Amount()
		}
	}
	return total
}

// Nights computes nights of stay from the check-in/out pair:
// ceil((checkOut - checkIn) / day), floored at 0 for invalid or inverted
// dates.
func (s *FolioService) Nights(checkIn, checkOut models.FlexTime) int {
	if !checkIn.Valid() || !checkOut.Valid() {
		return 0
	}
	diff := checkOut.UnixMilli() - checkIn.UnixMilli()
	if diff <= 0 {
		return 0
	}
	return utils.CeilDiv(float64(diff), millisPerDay)
}

// roomCost sums per-room nightly rates over the stay. Legacy single-rate
// stays carry a flat nightly amount under taxableAmount (or the older rate
// field) instead of per-room entries.
func (s *FolioService) roomCost(stay *models.Stay, nights int) float64 {
	if len(stay.RoomRates) > 0 {
		var perNight float64
		for _, room := range stay.RoomRates {
			perNight += float64(room.CustomRate)
		}
		return perNight * float64(nights)
	}

	perNight := float64(stay.TaxableAmount)
	if perNight == 0 {
		perNight = float64(stay.Rate)
	}
	return perNight * float64(nights)
}

// extraBedCost bills each extra bed from the later of its start date and
// check-in through check-out, at the stay's extra-bed charge.
func (s *FolioService) extraBedCost(stay *models.Stay) float64 {
	if !stay.CheckIn.Valid() || !stay.CheckOut.Valid() {
		return 0
	}

	charge := stay.ExtraBedCharge
	if charge <= 0 {
		charge = utils.DefaultExtraBedCharge
	}

	var total float64
	for _, room := range stay.RoomRates {
		if !room.ExtraBed {
			continue
		}
		start := stay.CheckIn.UnixMilli()
		if room.ExtraBedStart.Valid() && room.ExtraBedStart.UnixMilli() > start {
			start = room.ExtraBedStart.UnixMilli()
		}
		days := utils.CeilDiv(float64(stay.CheckOut.UnixMilli()-start), millisPerDay)
		total += float64(days) * charge
	}
	return total
}

// lateCheckoutFee contributes only when the fee was applied and not waived.
func (s *FolioService) lateCheckoutFee(stay *models.Stay) float64 {
	fee := stay.LateCheckout
	if fee == nil || !fee.Applied || fee.Waived {
		return 0
	}
	return float64(fee.Amount)
}

// amendmentAdjustment sums every amendment's signed adjustment, unclamped.
func (s *FolioService) amendmentAdjustment(stay *models.Stay) float64 {
	var total float64
	for _, amendment := range stay.Amendments {
		total += float64(amendment.TotalAdjustment)
	}
	return total
}

// TaxedTotals applies CGST/SGST (both on the same base) and the whole-rupee
// rounding policy to a pre-tax subtotal. nil overrides mean the default
// 2.5/2.5 split. The round-off delta is retained, never silently absorbed.
func (s *FolioService) TaxedTotals(preTaxSubtotal float64, cgstOverride, sgstOverride *float64) TaxedTotals {
	cgstPercent := taxPercentOrDefault(cgstOverride, utils.DefaultCGSTPercent)
	sgstPercent := taxPercentOrDefault(sgstOverride, utils.DefaultSGSTPercent)

	cgstAmount := preTaxSubtotal * cgstPercent / 100
	sgstAmount := preTaxSubtotal * sgstPercent / 100

	exactTotal := preTaxSubtotal + cgstAmount + sgstAmount
	roundedTotal := utils.RoundHalfUp(exactTotal)

	return TaxedTotals{
		CGSTPercent:  cgstPercent,
		SGSTPercent:  sgstPercent,
		CGSTAmount:   cgstAmount,
		SGSTAmount:   sgstAmount,
		ExactTotal:   exactTotal,
		RoundedTotal: roundedTotal,
		RoundOff:     roundedTotal - exactTotal,
	}
}

// BalanceDue floors at zero: overpayment reports a zero balance, never a
// negative due.
func (s *FolioService) BalanceDue(roundedTotal, totalAdvance float64) float64 {
	return utils.Max(0, roundedTotal-totalAdvance)
}

func taxPercentOrDefault(override *float64, defaultPercent float64) float64 {
	if override != nil {
		return *override
	}
	return defaultPercent
}

func clampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
