// Package xlsxexport builds Excel workbooks for the finance report.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"masjid/internal/domain"
)

// Sheet names in the generated workbook.
const (
	SummarySheet      = "Ringkasan"
	TransactionsSheet = "Transaksi"
)

var transactionColumns = []interface{}{"ID", "Tanggal", "Keterangan", "Kategori", "Jenis", "Jumlah"}

// WriteFinanceReport writes report to w as an .xlsx workbook with a summary
// sheet (totals and the monthly table) and a transaction sheet.
func WriteFinanceReport(w io.Writer, report *domain.FinanceReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(TransactionsSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	if err := writeSummary(f, report, bold); err != nil {
		return err
	}
	if err := writeTransactions(f, report.Transactions, bold); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, report *domain.FinanceReport, bold int) error {
	rows := [][]interface{}{
		{"Pemasukan", report.Summary.Income},
		{"Pengeluaran", report.Summary.Expense},
		{"Saldo", report.Summary.Balance},
		{},
		{"Bulan", "Pemasukan", "Pengeluaran"},
	}
	for _, m := range report.Monthly {
		rows = append(rows, []interface{}{m.Name, m.Income, m.Expense})
	}
	if err := setRows(f, SummarySheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "A3", bold); err != nil {
		return fmt.Errorf("styling summary: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "A5", "C5", bold); err != nil {
		return fmt.Errorf("styling summary: %w", err)
	}
	return nil
}

func writeTransactions(f *excelize.File, txs []domain.Transaction, bold int) error {
	rows := make([][]interface{}, 0, len(txs)+1)
	rows = append(rows, transactionColumns)
	for _, tx := range txs {
		amount := tx.Amount
		if tx.Type == domain.TransactionExpense {
			amount = -amount
		}
		rows = append(rows, []interface{}{tx.ID, tx.Date, tx.Description, tx.Category, string(tx.Type), amount})
	}
	if err := setRows(f, TransactionsSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(TransactionsSheet, "A1", "F1", bold); err != nil {
		return fmt.Errorf("styling transactions: %w", err)
	}
	return f.SetColWidth(TransactionsSheet, "C", "C", 40)
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
