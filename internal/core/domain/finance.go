package domain

// Budget is a department/project budget line for one fiscal year.
type Budget struct {
	ID              int    `json:"id"`
	Department      string `json:"department"`
	ProjectID       string `json:"project_id"`
	ProjectName     string `json:"project_name"`
	FiscalYear      int    `json:"fiscal_year"`
	AllocatedBudget int    `json:"allocated_budget"`
	RemainingBudget int    `json:"remaining_budget"`
	SpentToDate     int    `json:"spent_to_date"`
	Status          string `json:"status"`
}

// Expense is a single departmental expense. Date is YYYY-MM-DD.
type Expense struct {
	ID          int     `json:"id"`
	Department  string  `json:"department"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Vendor      string  `json:"vendor"`
	Status      string  `json:"status"`
}

// Revenue is a per-product revenue figure for one reporting period.
type Revenue struct {
	ID            int     `json:"id"`
	Department    string  `json:"department"`
	Product       string  `json:"product"`
	Period        string  `json:"period"`
	RevenueAmount float64 `json:"revenue_amount"`
	UnitsSold     int     `json:"units_sold"`
	GrowthRate    float64 `json:"growth_rate"`
	ProjectID     string  `json:"project_id,omitempty"`
}
