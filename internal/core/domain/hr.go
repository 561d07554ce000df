package domain

// Employee is an HR directory record. HireDate is YYYY-MM-DD.
type Employee struct {
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Location   string `json:"location"`
	HireDate   string `json:"hire_date"`
	SalaryBand string `json:"salary_band"`
	ManagerID  string `json:"manager_id"`
	Status     string `json:"status"`
	Phone      string `json:"phone"`
}

// Policy is a versioned company policy document reference.
type Policy struct {
	PolicyID      string `json:"policy_id"`
	PolicyType    string `json:"policy_type"`
	Title         string `json:"title"`
	EffectiveDate string `json:"effective_date"`
	Version       string `json:"version"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	DocumentURL   string `json:"document_url"`
	LastUpdated   string `json:"last_updated"`
}

// PayrollEntry is one payment to one employee for one period (YYYY-MM).
type PayrollEntry struct {
	ID            int    `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Department    string `json:"department"`
	Period        string `json:"period"`
	BaseSalary    int    `json:"base_salary"`
	Bonus         int    `json:"bonus"`
	Overtime      int    `json:"overtime"`
	Deductions    int    `json:"deductions"`
	NetPay        int    `json:"net_pay"`
	PaymentDate   string `json:"payment_date"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}
