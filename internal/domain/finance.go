package domain

// MonthNames are the short month labels used in finance charts.
var MonthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FinanceSummary holds running totals over every transaction.
type FinanceSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// MonthlyTotal aggregates transactions for one calendar month, 1 to 12.
// Years are merged.
type MonthlyTotal struct {
	Month   int     `json:"month"`
	Name    string  `json:"name"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// FinanceReport is the transparency page payload.
type FinanceReport struct {
	Summary      FinanceSummary `json:"summary"`
	Monthly      []MonthlyTotal `json:"monthly"`
	Transactions []Transaction  `json:"transactions"`
}
