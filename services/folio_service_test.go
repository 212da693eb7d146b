package services

import (
	"testing"
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"
	"github.com/stretchr/testify/assert"
)

func flexTime(t time.Time) models.FlexTime {
	return models.FlexTime{Time: t}
}

func flexNum(f float64) *models.FlexNumber {
	n := models.FlexNumber(f)
	return &n
}

// twoNightStay is the base stay used across tests: ₹2000/night, 2 nights.
func twoNightStay() *models.Stay {
	checkIn := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &models.Stay{
		ID:       "stay1",
		CheckIn:  flexTime(checkIn),
		CheckOut: flexTime(checkIn.AddDate(0, 0, 2)),
		RoomRates: []models.RoomRate{
			{RoomNumber: "101", CustomRate: 2000},
		},
	}
}

func TestFolioService_RoomOnlyDefaultTaxes(t *testing.T) {
	service := NewFolioService()

	summary := service.ComputeFolio(twoNightStay(), nil, nil, nil)

	assert.Equal(t, 2, summary.Nights)
	assert.Equal(t, 4000.0, summary.RoomCost)
	assert.Equal(t, 0.0, summary.DiscountAmount)
	assert.Equal(t, 4000.0, summary.PreTaxSubtotal)
	assert.Equal(t, 100.0, summary.CGSTAmount)
	assert.Equal(t, 100.0, summary.SGSTAmount)
	assert.Equal(t, 4200.0, summary.ExactTotal)
	assert.Equal(t, 4200.0, summary.RoundedTotal)
	assert.Equal(t, 0.0, summary.RoundOff)
	assert.Equal(t, 4200.0, summary.BalanceDue)
}

func TestFolioService_DiscountAppliesToRoomOnly(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.DiscountPercent = 10

	summary := service.ComputeFolio(stay, nil, nil, nil)

	assert.Equal(t, 400.0, summary.DiscountAmount)
	assert.Equal(t, 3600.0, summary.RoomAfterDiscount)
	assert.Equal(t, 3600.0, summary.PreTaxSubtotal)
	assert.Equal(t, 90.0, summary.CGSTAmount)
	assert.Equal(t, 90.0, summary.SGSTAmount)
	assert.Equal(t, 3780.0, summary.RoundedTotal)
	assert.Equal(t, 3780.0, summary.BalanceDue)
}

func TestFolioService_NonChargeableLineExcluded(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.DiscountPercent = 10

	restaurant := []models.ChargeOrder{
		{
			StayID:   "stay1",
			Category: utils.CategoryRestaurant,
			Items: []models.OrderItem{
				{Name: "Thali", Quantity: 1, UnitPrice: flexNum(150)},
				{Name: "Thali", Quantity: 1, UnitPrice: flexNum(150), NonChargeable: true},
			},
		},
	}

	summary := service.ComputeFolio(stay, nil, restaurant, nil)

	assert.Equal(t, 150.0, summary.RestaurantTotal)
	assert.Equal(t, 3750.0, summary.PreTaxSubtotal)
	assert.Equal(t, 93.75, summary.CGSTAmount)
	assert.Equal(t, 93.75, summary.SGSTAmount)
	assert.Equal(t, 3937.5, summary.ExactTotal)
	assert.Equal(t, 3938.0, summary.RoundedTotal)
	assert.Equal(t, 0.5, summary.RoundOff)
}

func TestFolioService_AdvanceListReconciliation(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.DiscountPercent = 10
	stay.Advance = models.AdvanceList{
		{Amount: 2000},
		{Amount: 500},
	}

	restaurant := []models.ChargeOrder{
		{
			Category: utils.CategoryRestaurant,
			Items: []models.OrderItem{
				{Name: "Thali", Quantity: 1, UnitPrice: flexNum(150)},
				{Name: "Thali", Quantity: 1, UnitPrice: flexNum(150), NonChargeable: true},
			},
		},
	}

	summary := service.ComputeFolio(stay, nil, restaurant, nil)

	assert.Equal(t, 2500.0, summary.TotalAdvance)
	assert.Equal(t, 1438.0, summary.BalanceDue)
}

func TestFolioService_ExtraBedProration(t *testing.T) {
	service := NewFolioService()
	checkIn := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	stay := &models.Stay{
		CheckIn:  flexTime(checkIn),
		CheckOut: flexTime(checkIn.AddDate(0, 0, 4)),
		RoomRates: []models.RoomRate{
			{
				RoomNumber:    "101",
				CustomRate:    2000,
				ExtraBed:      true,
				ExtraBedStart: flexTime(checkIn.AddDate(0, 0, 2)),
			},
		},
	}

	summary := service.ComputeFolio(stay, nil, nil, nil)

	assert.Equal(t, 4, summary.Nights)
	assert.Equal(t, 8000.0, summary.RoomCost)
	assert.Equal(t, 1000.0, summary.ExtraBedCost)
	assert.Equal(t, 9000.0, summary.RoomSubtotal)
}

func TestFolioService_OverpaymentFloorsBalanceAtZero(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.DiscountPercent = 10
	stay.Advance = models.AdvanceList{{Amount: 5000}}

	restaurant := []models.ChargeOrder{
		{
			Category: utils.CategoryRestaurant,
			Items: []models.OrderItem{
				{Name: "Thali", Quantity: 1, UnitPrice: flexNum(150)},
			},
		},
	}

	summary := service.ComputeFolio(stay, nil, restaurant, nil)

	assert.Equal(t, 5000.0, summary.TotalAdvance)
	assert.Equal(t, 0.0, summary.BalanceDue)
}

func TestFolioService_Idempotence(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.DiscountPercent = 12.5
	stay.Amendments = []models.Amendment{{TotalAdjustment: -250}}
	orders := []models.ChargeOrder{
		{
			Category: utils.CategoryRoomService,
			Items: []models.OrderItem{
				{Name: "Sandwich", Quantity: 2, UnitPrice: flexNum(120)},
			},
		},
	}

	first := service.ComputeFolio(stay, orders, nil, nil)
	second := service.ComputeFolio(stay, orders, nil, nil)

	assert.Equal(t, first, second)
}

func TestFolioService_DiscountNeverTouchesChargeTotals(t *testing.T) {
	service := NewFolioService()

	orders := []models.ChargeOrder{
		{
			Category: utils.CategoryRestaurant,
			Items: []models.OrderItem{
				{Name: "Dal Makhani", Quantity: 3, UnitPrice: flexNum(220)},
			},
		},
	}

	for _, percent := range []float64{0, 10, 25, 50, 100} {
		stay := twoNightStay()
		stay.DiscountPercent = percent
		summary := service.ComputeFolio(stay, nil, orders, nil)

		assert.Equal(t, 660.0, summary.RestaurantTotal,
			"restaurant total must not move with discount %v", percent)
		assert.Equal(t, 4000.0-40.0*percent, summary.RoomAfterDiscount)
	}
}

func TestFolioService_OrderLevelFlagOverridesLines(t *testing.T) {
	service := NewFolioService()

	order := models.ChargeOrder{
		NonChargeable: true,
		Items: []models.OrderItem{
			{Name: "Biryani", Quantity: 4, UnitPrice: flexNum(350)},
			{Name: "Raita", Quantity: 2, UnitPrice: flexNum(60)},
		},
	}

	total := service.CategoryTotal([]models.ChargeOrder{order}, utils.CategoryRestaurant)
	assert.Equal(t, 0.0, total)

	lines := service.NormalizeOrder(order, utils.CategoryRestaurant)
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.False(t, line.Chargeable)
		assert.Equal(t, 0.0, line.Amount())
	}
}

func TestFolioService_LineFlagVariantsAllExclude(t *testing.T) {
	service := NewFolioService()

	order := models.ChargeOrder{
		Items: []models.OrderItem{
			{Name: "a", Quantity: 1, UnitPrice: flexNum(100), NonChargeable: true},
			{Name: "b", Quantity: 1, UnitPrice: flexNum(100), IsFree: true},
			{Name: "c", Quantity: 1, UnitPrice: flexNum(100), NC: true},
			{Name: "d", Quantity: 1, UnitPrice: flexNum(100)},
		},
	}

	total := service.CategoryTotal([]models.ChargeOrder{order}, utils.CategoryRoomService)
	assert.Equal(t, 100.0, total)
}

// A line arriving under the legacy nc key must bill the same whether it is
// computed inline or folded into the canonical column and read back.
func TestFolioService_LegacyNCFlagSurvivesStoredShape(t *testing.T) {
	service := NewFolioService()

	inline := models.ChargeOrder{
		Items: []models.OrderItem{
			{Name: "Peanuts", Quantity: 2, UnitPrice: flexNum(90), NC: true},
			{Name: "Soda", Quantity: 1, UnitPrice: flexNum(60)},
		},
	}

	// The shape loadItems produces after StoreOrder folds the alias.
	stored := models.ChargeOrder{
		Items: []models.OrderItem{
			{Name: "Peanuts", Quantity: 2, UnitPrice: flexNum(90),
				NonChargeable: inline.Items[0].ResolvedNonChargeable()},
			{Name: "Soda", Quantity: 1, UnitPrice: flexNum(60),
				NonChargeable: inline.Items[1].ResolvedNonChargeable()},
		},
	}

	assert.Equal(t, 60.0, service.CategoryTotal([]models.ChargeOrder{inline}, utils.CategoryRestaurant))
	assert.Equal(t,
		service.CategoryTotal([]models.ChargeOrder{inline}, utils.CategoryRestaurant),
		service.CategoryTotal([]models.ChargeOrder{stored}, utils.CategoryRestaurant))
}

func TestFolioService_LostLaundryNeverBilled(t *testing.T) {
	service := NewFolioService()

	order := models.ChargeOrder{
		Items: []models.OrderItem{
			{Name: "Shirt", Quantity: 2, UnitPrice: flexNum(40), Status: "lost"},
			{Name: "Shirt", Quantity: 2, UnitPrice: flexNum(40), Status: "Lost"},
			{Name: "Trouser", Quantity: 1, UnitPrice: flexNum(60), Status: "ready"},
		},
	}

	assert.Equal(t, 60.0, service.CategoryTotal([]models.ChargeOrder{order}, utils.CategoryLaundry))

	// The same status on a restaurant order has no effect.
	assert.Equal(t, 220.0, service.CategoryTotal([]models.ChargeOrder{order}, utils.CategoryRestaurant))
}

func TestFolioService_UnitPriceFallbackKeys(t *testing.T) {
	service := NewFolioService()

	order := models.ChargeOrder{
		Items: []models.OrderItem{
			{Name: "a", Quantity: 1, UnitPrice: flexNum(100)},
			{Name: "b", Quantity: 1, Price: flexNum(80)},
			{Name: "c", Quantity: 1}, // no price at all
		},
	}

	assert.Equal(t, 180.0, service.CategoryTotal([]models.ChargeOrder{order}, utils.CategoryRoomService))
}

func TestFolioService_RoundingConservation(t *testing.T) {
	service := NewFolioService()

	rates := []float64{999.99, 1234.56, 2000, 3333.33, 777.77}
	for _, rate := range rates {
		stay := twoNightStay()
		stay.RoomRates = []models.RoomRate{{RoomNumber: "101", CustomRate: models.FlexNumber(rate)}}
		summary := service.ComputeFolio(stay, nil, nil, nil)

		assert.InDelta(t, summary.RoundedTotal-summary.ExactTotal, summary.RoundOff, 1e-9)
	}
}

func TestFolioService_DurationClamp(t *testing.T) {
	service := NewFolioService()
	checkIn := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkIn  models.FlexTime
		checkOut models.FlexTime
	}{
		{"inverted", flexTime(checkIn), flexTime(checkIn.AddDate(0, 0, -2))},
		{"equal", flexTime(checkIn), flexTime(checkIn)},
		{"missing check-out", flexTime(checkIn), models.FlexTime{}},
		{"missing check-in", models.FlexTime{}, flexTime(checkIn)},
		{"both missing", models.FlexTime{}, models.FlexTime{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay := &models.Stay{
				CheckIn:   tc.checkIn,
				CheckOut:  tc.checkOut,
				RoomRates: []models.RoomRate{{RoomNumber: "101", CustomRate: 2000, ExtraBed: true}},
			}
			summary := service.ComputeFolio(stay, nil, nil, nil)

			assert.Equal(t, 0, summary.Nights)
			assert.Equal(t, 0.0, summary.RoomCost)
			assert.Equal(t, 0.0, summary.ExtraBedCost)
		})
	}
}

func TestFolioService_PartialNightCountsAsFull(t *testing.T) {
	service := NewFolioService()
	checkIn := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, service.Nights(flexTime(checkIn), flexTime(checkOut)))
}

func TestFolioService_LegacySingleRateFallback(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.RoomRates = nil
	stay.TaxableAmount = 1800

	summary := service.ComputeFolio(stay, nil, nil, nil)
	assert.Equal(t, 3600.0, summary.RoomCost)

	stay.TaxableAmount = 0
	stay.Rate = 1500
	summary = service.ComputeFolio(stay, nil, nil, nil)
	assert.Equal(t, 3000.0, summary.RoomCost)
}

func TestFolioService_LateCheckoutFeeGating(t *testing.T) {
	service := NewFolioService()

	cases := []struct {
		name     string
		fee      *models.LateCheckoutFee
		expected float64
	}{
		{"nil fee", nil, 0},
		{"applied", &models.LateCheckoutFee{Amount: 500, Applied: true}, 500},
		{"not applied", &models.LateCheckoutFee{Amount: 500}, 0},
		{"waived", &models.LateCheckoutFee{Amount: 500, Applied: true, Waived: true}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay := twoNightStay()
			stay.LateCheckout = tc.fee
			summary := service.ComputeFolio(stay, nil, nil, nil)
			assert.Equal(t, tc.expected, summary.LateCheckoutFee)
		})
	}
}

func TestFolioService_AmendmentsMaySwingNegative(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.Amendments = []models.Amendment{
		{TotalAdjustment: 1200},
		{TotalAdjustment: -300},
	}

	summary := service.ComputeFolio(stay, nil, nil, nil)

	assert.Equal(t, 900.0, summary.AmendmentAdjustment)
	assert.Equal(t, 4900.0, summary.PreTaxSubtotal)
}

func TestFolioService_TaxRateOverrides(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	six := 6.0
	zero := 0.0
	stay.CGSTPercent = &six
	stay.SGSTPercent = &zero

	summary := service.ComputeFolio(stay, nil, nil, nil)

	assert.Equal(t, 6.0, summary.CGSTPercent)
	assert.Equal(t, 240.0, summary.CGSTAmount)
	assert.Equal(t, 0.0, summary.SGSTAmount)
	assert.Equal(t, 4240.0, summary.RoundedTotal)
}

func TestFolioService_NilStayStillReturnsSummary(t *testing.T) {
	service := NewFolioService()

	summary := service.ComputeFolio(nil, nil, nil, nil)

	assert.NotNil(t, summary)
	assert.Equal(t, 0, summary.Nights)
	assert.Equal(t, 0.0, summary.BalanceDue)
	assert.Equal(t, utils.DefaultCGSTPercent, summary.CGSTPercent)
}
