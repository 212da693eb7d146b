package services

import (
	"testing"
	"time"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCashService_ExpectedAmount(t *testing.T) {
	service := &CashService{}

	session := &models.CashSession{
		OpeningFloat: decimal.NewFromInt(5000),
		OpenedAt:     time.Now(),
		Movements: []models.CashMovement{
			{Type: utils.CashMovementSale, Amount: decimal.RequireFromString("3938")},
			{Type: utils.CashMovementManualOut, Amount: decimal.RequireFromString("-1200")},
			{Type: utils.CashMovementSale, Amount: decimal.RequireFromString("1438")},
			{Type: utils.CashMovementReversal, Amount: decimal.RequireFromString("-1438")},
		},
	}

	expected := service.ExpectedAmount(session)
	assert.True(t, expected.Equal(decimal.RequireFromString("7738")),
		"expected 7738, got %s", expected)
}

func TestCashService_ExpectedAmountExactOverManyMovements(t *testing.T) {
	service := &CashService{}

	// 0.1-style amounts accumulate exactly in the decimal ledger.
	session := &models.CashSession{OpeningFloat: decimal.Zero}
	for i := 0; i < 1000; i++ {
		session.Movements = append(session.Movements, models.CashMovement{
			Type:   utils.CashMovementSale,
			Amount: decimal.RequireFromString("0.10"),
		})
	}

	assert.True(t, service.ExpectedAmount(session).Equal(decimal.RequireFromString("100")))
}

func TestDeviationPercent(t *testing.T) {
	expected := decimal.NewFromInt(10000)

	assert.True(t, DeviationPercent(expected, decimal.NewFromInt(50)).
		Equal(decimal.RequireFromString("0.5")))
	assert.True(t, DeviationPercent(expected, decimal.NewFromInt(-250)).
		Equal(decimal.RequireFromString("2.5")))
	assert.True(t, DeviationPercent(decimal.Zero, decimal.NewFromInt(100)).
		Equal(decimal.Zero))
}

func TestClassifyDeviation(t *testing.T) {
	cases := []struct {
		pct      string
		expected string
	}{
		{"0", utils.DeviationNormal},
		{"0.99", utils.DeviationNormal},
		{"1", utils.DeviationWarning},
		{"4.99", utils.DeviationWarning},
		{"5", utils.DeviationCritical},
		{"12", utils.DeviationCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected,
			ClassifyDeviation(decimal.RequireFromString(tc.pct)),
			"deviation %s%%", tc.pct)
	}
}
