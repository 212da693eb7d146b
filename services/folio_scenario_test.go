package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"
	"github.com/stretchr/testify/assert"
)

// Full-stay scenario: 3 nights in two rooms, an extra bed, mixed orders
// with complimentary items, a late-checkout fee, an amendment, and two
// advances. Numbers are worked out line by line in the comments.
func TestFolioService_FullStayScenario(t *testing.T) {
	service := NewFolioService()

	checkIn := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)
	stay := &models.Stay{
		ID:       "stay42",
		CheckIn:  flexTime(checkIn),
		CheckOut: flexTime(checkIn.AddDate(0, 0, 3)),
		RoomRates: []models.RoomRate{
			{RoomNumber: "201", CustomRate: 2500},
			{RoomNumber: "202", CustomRate: 1800, ExtraBed: true,
				ExtraBedStart: flexTime(checkIn.AddDate(0, 0, 1))},
		},
		DiscountPercent: 5,
		LateCheckout:    &models.LateCheckoutFee{Amount: 600, Applied: true},
		Amendments:      []models.Amendment{{TotalAdjustment: -200}},
		Advance:         models.AdvanceList{{Amount: 4000}, {Amount: 1500}},
	}

	serviceOrders := []models.ChargeOrder{
		{
			Category: utils.CategoryRoomService,
			Items: []models.OrderItem{
				{Name: "Club Sandwich", Quantity: 2, UnitPrice: flexNum(180)},
				{Name: "Masala Chai", Quantity: 4, UnitPrice: flexNum(40)},
				{Name: "Welcome Fruit Basket", Quantity: 1, UnitPrice: flexNum(250), IsFree: true},
			},
		},
	}
	restaurantOrders := []models.ChargeOrder{
		{
			Category: utils.CategoryRestaurant,
			Items: []models.OrderItem{
				{Name: "Paneer Butter Masala", Quantity: 2, UnitPrice: flexNum(260)},
				{Name: "Butter Naan", Quantity: 6, UnitPrice: flexNum(45)},
			},
		},
		{
			// Voided order: nothing here may bill.
			Category:      utils.CategoryRestaurant,
			NonChargeable: true,
			Items: []models.OrderItem{
				{Name: "Veg Biryani", Quantity: 3, UnitPrice: flexNum(280)},
			},
		},
	}
	laundryOrders := []models.ChargeOrder{
		{
			Category: utils.CategoryLaundry,
			Items: []models.OrderItem{
				{Name: "Shirt", Quantity: 4, UnitPrice: flexNum(35)},
				{Name: "Saree", Quantity: 1, UnitPrice: flexNum(120), Status: "lost"},
			},
		},
	}

	summary := service.ComputeFolio(stay, serviceOrders, restaurantOrders, laundryOrders)

	// Rooms: (2500 + 1800) x 3 = 12900; extra bed 2 days x 500 = 1000.
	assert.Equal(t, 3, summary.Nights)
	assert.Equal(t, 12900.0, summary.RoomCost)
	assert.Equal(t, 1000.0, summary.ExtraBedCost)
	assert.Equal(t, 13900.0, summary.RoomSubtotal)

	// 5% of 13900 = 695.
	assert.Equal(t, 695.0, summary.DiscountAmount)
	assert.Equal(t, 13205.0, summary.RoomAfterDiscount)

	// Room service: 2x180 + 4x40 = 520 (fruit basket complimentary).
	assert.Equal(t, 520.0, summary.RoomServiceTotal)
	// Restaurant: 2x260 + 6x45 = 790 (second order voided).
	assert.Equal(t, 790.0, summary.RestaurantTotal)
	// Laundry: 4x35 = 140 (lost saree not billed).
	assert.Equal(t, 140.0, summary.LaundryTotal)

	assert.Equal(t, 600.0, summary.LateCheckoutFee)
	assert.Equal(t, -200.0, summary.AmendmentAdjustment)

	// 13205 + 520 + 790 + 140 + 600 - 200 = 15055.
	assert.Equal(t, 15055.0, summary.PreTaxSubtotal)

	// 2.5% each side: 376.375.
	assert.Equal(t, 376.375, summary.CGSTAmount)
	assert.Equal(t, 376.375, summary.SGSTAmount)
	assert.InDelta(t, 15807.75, summary.ExactTotal, 1e-9)
	assert.Equal(t, 15808.0, summary.RoundedTotal)
	assert.InDelta(t, 0.25, summary.RoundOff, 1e-9)

	// Advances 5500; balance 15808 - 5500.
	assert.Equal(t, 5500.0, summary.TotalAdvance)
	assert.Equal(t, 10308.0, summary.BalanceDue)
}

// The same stay decoded from the raw wire shapes of the legacy sources:
// $date-wrapped timestamps, a scalar advance, string amounts, and unit
// price under the "price" key. The summary must match the typed version.
func TestFolioService_LegacyWireShapesScenario(t *testing.T) {
	service := NewFolioService()

	var stay models.Stay
	stayJSON := `{
		"_id": "stay77",
		"checkIn": {"$date": "2025-06-14T12:00:00Z"},
		"checkOut": 1750075200000,
		"roomRates": [{"roomNumber": "305", "customRate": "2000"}],
		"discountPercent": 10,
		"advance": 2500
	}`
	assert.NoError(t, json.Unmarshal([]byte(stayJSON), &stay))

	var order models.ChargeOrder
	orderJSON := `{
		"stayId": "stay77",
		"category": "restaurant",
		"items": [
			{"name": "Thali", "quantity": 1, "price": 150},
			{"name": "Thali", "quantity": 1, "unitPrice": "150", "nonChargeable": true}
		]
	}`
	assert.NoError(t, json.Unmarshal([]byte(orderJSON), &order))

	summary := service.ComputeFolio(&stay, nil, []models.ChargeOrder{order}, nil)

	// 1750075200000 ms = 2025-06-16T12:00:00Z: two nights at 2000.
	assert.Equal(t, 2, summary.Nights)
	assert.Equal(t, 4000.0, summary.RoomCost)
	assert.Equal(t, 3600.0, summary.RoomAfterDiscount)
	assert.Equal(t, 150.0, summary.RestaurantTotal)
	assert.Equal(t, 3750.0, summary.PreTaxSubtotal)
	assert.Equal(t, 3938.0, summary.RoundedTotal)
	assert.Equal(t, 2500.0, summary.TotalAdvance)
	assert.Equal(t, 1438.0, summary.BalanceDue)
}

// Every surface that renders a folio calls the same function; feeding the
// same inputs repeatedly must always produce the same value. This guards
// the consolidation: there is no second implementation to drift.
func TestFolioService_SurfacesCannotDiverge(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()
	stay.DiscountPercent = 7.5
	stay.Advance = models.AdvanceList{{Amount: 1000}}
	orders := []models.ChargeOrder{
		{
			Category: utils.CategoryLaundry,
			Items: []models.OrderItem{
				{Name: "Kurta", Quantity: 3, UnitPrice: flexNum(55)},
			},
		},
	}

	folioView := service.ComputeFolio(stay, nil, nil, orders)
	publicInvoice := service.ComputeFolio(stay, nil, nil, orders)
	nightAudit := service.ComputeFolio(stay, nil, nil, orders)

	assert.Equal(t, folioView, publicInvoice)
	assert.Equal(t, folioView, nightAudit)
}

// Empty or not-yet-loaded collections mean "no charges of that kind".
func TestFolioService_PartialDataIsSafe(t *testing.T) {
	service := NewFolioService()
	stay := twoNightStay()

	withNil := service.ComputeFolio(stay, nil, nil, nil)
	withEmpty := service.ComputeFolio(stay, []models.ChargeOrder{}, []models.ChargeOrder{}, []models.ChargeOrder{})

	assert.Equal(t, withNil, withEmpty)
	assert.Equal(t, 0.0, withNil.RoomServiceTotal)
	assert.Equal(t, 0.0, withNil.RestaurantTotal)
	assert.Equal(t, 0.0, withNil.LaundryTotal)
}
