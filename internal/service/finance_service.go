package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"masjid/internal/csvexport"
	"masjid/internal/domain"
	"masjid/internal/port"
	"masjid/internal/xlsxexport"
)

// FinanceService defines the financial transparency contract.
type FinanceService interface {
	Report(ctx context.Context) (*domain.FinanceReport, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	ExportXLSX(ctx context.Context, w io.Writer) error
}

type financeService struct {
	content port.ContentSource
}

// NewFinanceService creates a new FinanceService implementation.
func NewFinanceService(content port.ContentSource) FinanceService {
	return &financeService{content: content}
}

func (s *financeService) Report(ctx context.Context) (*domain.FinanceReport, error) {
	txs, err := s.content.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("finance.Report: %w", err)
	}
	return BuildFinanceReport(txs), nil
}

// BuildFinanceReport totals txs and groups them by calendar month. Entries
// with an unparseable date count toward the summary but not the monthly
// table. Types other than income and expense are ignored in both.
func BuildFinanceReport(txs []domain.Transaction) *domain.FinanceReport {
	report := &domain.FinanceReport{
		Monthly:      []domain.MonthlyTotal{},
		Transactions: txs,
	}
	if report.Transactions == nil {
		report.Transactions = []domain.Transaction{}
	}

	var months [12]*domain.MonthlyTotal
	for _, tx := range txs {
		var month *domain.MonthlyTotal
		if d, err := time.Parse("2006-01-02", tx.Date); err == nil {
			idx := int(d.Month()) - 1
			if months[idx] == nil {
				months[idx] = &domain.MonthlyTotal{Month: idx + 1, Name: domain.MonthNames[idx]}
			}
			month = months[idx]
		}

		switch tx.Type {
		case domain.TransactionIncome:
			report.Summary.Income += tx.Amount
			if month != nil {
				month.Income += tx.Amount
			}
		case domain.TransactionExpense:
			report.Summary.Expense += tx.Amount
			if month != nil {
				month.Expense += tx.Amount
			}
		}
	}
	report.Summary.Balance = report.Summary.Income - report.Summary.Expense

	for _, m := range months {
		if m != nil {
			report.Monthly = append(report.Monthly, *m)
		}
	}
	return report
}

func (s *financeService) ExportCSV(ctx context.Context, w io.Writer) error {
	txs, err := s.content.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("finance.ExportCSV: %w", err)
	}

	if _, err := w.Write(csvexport.BOM); err != nil {
		return fmt.Errorf("finance.ExportCSV: %w", err)
	}
	cw := csvexport.NewWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("finance.ExportCSV: %w", err)
	}
	if err := cw.WriteTransactions(txs); err != nil {
		return fmt.Errorf("finance.ExportCSV: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func (s *financeService) ExportXLSX(ctx context.Context, w io.Writer) error {
	report, err := s.Report(ctx)
	if err != nil {
		return err
	}
	return xlsxexport.WriteFinanceReport(w, report)
}
