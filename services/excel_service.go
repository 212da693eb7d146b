package services

import (
	"fmt"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"
	"github.com/xuri/excelize/v2"
)

// ExcelService handles Excel export of night-audit reports
type ExcelService struct {
	auditService *AuditService
}

// NewExcelService creates a new Excel service
func NewExcelService(auditService *AuditService) *ExcelService {
	return &ExcelService{
		auditService: auditService,
	}
}

// ExportNightAudit generates an Excel workbook for a business date
func (s *ExcelService) ExportNightAudit(businessDate string) (*excelize.File, string, error) {
	report, err := s.auditService.RunNightAudit(businessDate)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, report); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createFolioSheet(f, report); err != nil {
		return nil, "", fmt.Errorf("failed to create folio sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := utils.CleanFileName(fmt.Sprintf("NightAudit_%s", report.BusinessDate)) + ".xlsx"
	return f, filename, nil
}

// createSummarySheet creates Sheet 1: Summary
func (s *ExcelService) createSummarySheet(f *excelize.File, report *models.NightAuditReport) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	f.SetCellValue(sheetName, "A1", "Night Audit")
	f.SetCellValue(sheetName, "B1", report.BusinessDate)
	f.SetCellValue(sheetName, "A2", "Stays in house")
	f.SetCellValue(sheetName, "B2", report.StayCount)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	rows := []struct {
		Label string
		Value float64
	}{
		{"Room Revenue", report.RoomRevenue},
		{"Discounts", report.DiscountTotal},
		{"Room Service", report.RoomServiceTotal},
		{"Restaurant", report.RestaurantTotal},
		{"Laundry", report.LaundryTotal},
		{"Late Checkout Fees", report.LateFeeTotal},
		{"Amendments", report.AmendmentTotal},
		{"CGST", report.CGSTTotal},
		{"SGST", report.SGSTTotal},
		{"Round Off", report.RoundOffTotal},
		{"Gross Total", report.GrossTotal},
		{"Advances", report.AdvanceTotal},
		{"Balance Due", report.BalanceTotal},
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellValue(sheetName, "A4", "Category")
	f.SetCellValue(sheetName, "B4", "Amount")
	f.SetCellStyle(sheetName, "A4", "B4", headerStyle)

	for i, row := range rows {
		excelRow := i + 5
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", excelRow), row.Label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", excelRow), utils.Round(row.Value))
	}

	f.SetColWidth(sheetName, "A", "B", 20)

	return nil
}

// createFolioSheet creates Sheet 2: one row per in-house folio
func (s *ExcelService) createFolioSheet(f *excelize.File, report *models.NightAuditReport) error {
	sheetName := "Folios"
	f.NewSheet(sheetName)

	headers := []string{
		"Guest", "Rooms", "Nights", "Room Subtotal", "Discount",
		"Room Service", "Restaurant", "Laundry", "Late Fee", "Amendments",
		"CGST", "SGST", "Rounded Total", "Advance", "Balance Due",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", lastCol, headerStyle)

	for i, row := range report.Rows {
		excelRow := i + 2
		summary := row.Summary
		values := []interface{}{
			row.GuestName, row.RoomLabel, summary.Nights, summary.RoomSubtotal,
			summary.DiscountAmount, summary.RoomServiceTotal, summary.RestaurantTotal,
			summary.LaundryTotal, summary.LateCheckoutFee, summary.AmendmentAdjustment,
			utils.Round(summary.CGSTAmount), utils.Round(summary.SGSTAmount),
			summary.RoundedTotal, summary.TotalAdvance, summary.BalanceDue,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, excelRow)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 18)

	return nil
}
