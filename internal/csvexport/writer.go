// Package csvexport writes the cash book as CSV for spreadsheet users.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"masjid/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var columns = []string{
	"ID",
	"Tanggal",
	"Keterangan",
	"Kategori",
	"Jenis",
	"Pemasukan",
	"Pengeluaran",
}

// Writer wraps csv.Writer for exporting transactions.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteTransactions writes one row per transaction. The amount goes in the
// income or expense column depending on its type.
func (w *Writer) WriteTransactions(txs []domain.Transaction) error {
	for i := range txs {
		if err := w.csv.Write(transactionToRow(&txs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func transactionToRow(tx *domain.Transaction) []string {
	row := make([]string, len(columns))
	row[0] = tx.ID
	row[1] = tx.Date
	row[2] = tx.Description
	row[3] = tx.Category
	row[4] = string(tx.Type)
	switch tx.Type {
	case domain.TransactionIncome:
		row[5] = FormatMoney(tx.Amount)
	case domain.TransactionExpense:
		row[6] = FormatMoney(tx.Amount)
	}
	return row
}

// FormatMoney renders an amount with two decimals and no grouping.
func FormatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename makes name safe for a Content-Disposition header.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized_name}_{YYYY-MM-DD}.{ext}.
func BuildFilename(name, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), now.Format("2006-01-02"), ext)
}
