package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"

	"invoice-backend/internal/models"
	"invoice-backend/internal/repositories"
	"invoice-backend/internal/timeutil"
)

// ReportService renders invoices to PDF and the balance sheet to Excel.
// It only reads the collections; generation never mutates anything.
type ReportService struct {
	Invoices     *repositories.InvoiceRepository
	Company      *repositories.CompanyRepository
	BalanceSheet *BalanceSheetService
}

func NewReportService(invoices *repositories.InvoiceRepository, company *repositories.CompanyRepository, balanceSheet *BalanceSheetService) *ReportService {
	return &ReportService{Invoices: invoices, Company: company, BalanceSheet: balanceSheet}
}

// InvoicePDF renders the invoice print layout: company block, customer
// block, items table and the subtotal/tax/total summary.
func (s *ReportService) InvoicePDF(id int64) ([]byte, error) {
	invoice := s.Invoices.GetByID(id)
	if invoice == nil {
		return nil, repositories.ErrInvoiceNotFound
	}
	company := s.Company.Get()
	if company == nil {
		company = &models.CompanyInfo{}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(190, 10, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, invoice.InvoiceNumber, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Company block
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "From", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, company.Name, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("GSTIN: %s", company.GSTIN), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, company.Address1, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Phone: %s", company.Phone), "RB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Customer block
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Bill To", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, invoice.CustomerName, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", invoice.EffectiveDate().In(timeutil.IST).Format(timeutil.DisplayLayout)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, "", "LB", 0, "L", false, 0, "")
	dueDate := ""
	if !invoice.DueDate.IsZero() {
		dueDate = invoice.DueDate.In(timeutil.IST).Format(timeutil.DisplayLayout)
	}
	pdf.CellFormat(95, 6, fmt.Sprintf("Due Date: %s", dueDate), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(70, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Unit Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		pdf.CellFormat(70, 6, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Summary
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(140, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("Subtotal: %.2f", invoice.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("Tax (%s %.1f%%): %.2f", invoice.TaxType, invoice.TaxRate, invoice.TaxAmount), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("Total: %.2f", invoice.Total), "T", 1, "R", false, 0, "")

	if invoice.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(190, 5, fmt.Sprintf("Notes: %s", invoice.Notes), "", "L", false)
	}
	if company.BankName != "" || company.IFSC != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(190, 5, fmt.Sprintf("Bank: %s  IFSC: %s", company.BankName, company.IFSC), "", 1, "L", false, 0, "")
	}
	if company.Message != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(190, 5, company.Message, "", "C", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BalanceSheetXLSX exports the computed period series, one row per period.
func (s *ReportService) BalanceSheetXLSX(period string) ([]byte, error) {
	entries, err := s.BalanceSheet.Compute(period)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Balance Sheet"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Period", "Inventory Value", "Receivables", "Total Assets", "Payables (Liabilities)", "Equity"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range entries {
		values := []any{
			entry.Period,
			entry.Details.InventoryValue,
			entry.Details.Receivables,
			entry.Assets,
			entry.Liabilities,
			entry.Equity,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write balance sheet workbook: %w", err)
	}
	return buf.Bytes(), nil
}
