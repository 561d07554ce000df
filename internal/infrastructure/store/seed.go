package store

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/mocklab/corpmock/internal/core/domain"
)

// seedSource fixes the generator stream so regenerated datasets are
// identical run to run.
const seedSource = 20240817

var departments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance", "Operations"}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "user"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "admin"},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "user"},
		{ID: 4, Name: "Alice Brown", Email: "alice@example.com", Role: "moderator"},
		{ID: 5, Name: "Charlie Wilson", Email: "charlie@example.com", Role: "user"},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Category: "electronics"},
		{ID: 2, Name: "Smartphone", Price: 699.99, Category: "electronics"},
		{ID: 3, Name: "Headphones", Price: 149.99, Category: "electronics"},
		{ID: 4, Name: "Book", Price: 19.99, Category: "education"},
		{ID: 5, Name: "Coffee Mug", Price: 12.99, Category: "home"},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, UserID: 1, Total: 150.99, Status: "completed"},
		{ID: 2, UserID: 2, Total: 299.99, Status: "processing"},
		{ID: 3, UserID: 1, Total: 45.50, Status: "shipped"},
		{ID: 4, UserID: 3, Total: 89.99, Status: "completed"},
		{ID: 5, UserID: 4, Total: 1200.00, Status: "pending"},
	}
}

func seedFinance() financeData {
	rng := rand.New(rand.NewSource(seedSource))
	return financeData{
		Budgets:  generateBudgets(rng),
		Expenses: generateExpenses(rng),
		Revenues: generateRevenues(rng),
	}
}

func generateBudgets(rng *rand.Rand) []domain.Budget {
	projects := []string{"Project Alpha", "Project Beta", "Project Gamma", "Project Delta"}
	statuses := []string{"On Track", "Over Budget", "Under Budget"}

	var budgets []domain.Budget
	id := 1
	for _, year := range []int{2023, 2024, 2025} {
		for _, dept := range departments {
			for _, project := range projects {
				budgets = append(budgets, domain.Budget{
					ID:              id,
					Department:      dept,
					ProjectID:       fmt.Sprintf("PROJ-%03d", id%1000),
					ProjectName:     project,
					FiscalYear:      year,
					AllocatedBudget: 50000 + rng.Intn(450000),
					RemainingBudget: 10000 + rng.Intn(90000),
					SpentToDate:     10000 + rng.Intn(390000),
					Status:          statuses[rng.Intn(len(statuses))],
				})
				id++
			}
		}
	}
	return budgets
}

func generateExpenses(rng *rand.Rand) []domain.Expense {
	categories := []string{"Salaries", "Equipment", "Travel", "Software", "Office Supplies", "Marketing"}
	statuses := []string{"Approved", "Pending", "Rejected"}
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	expenses := make([]domain.Expense, 0, 200)
	for id := 1; id <= 200; id++ {
		dept := departments[rng.Intn(len(departments))]
		category := categories[rng.Intn(len(categories))]
		date := start.AddDate(0, 0, rng.Intn(730))
		expenses = append(expenses, domain.Expense{
			ID:          id,
			Department:  dept,
			Category:    category,
			Amount:      round2f(100 + rng.Float64()*9900),
			Date:        date.Format("2006-01-02"),
			Description: fmt.Sprintf("%s %s expense", dept, category),
			Vendor:      fmt.Sprintf("Vendor %d", 1+rng.Intn(50)),
			Status:      statuses[rng.Intn(len(statuses))],
		})
	}
	return expenses
}

func generateRevenues(rng *rand.Rand) []domain.Revenue {
	revDepartments := []string{"Sales", "Marketing", "Partnerships", "Services"}
	products := []string{"Product A", "Product B", "Product C", "Service X", "Service Y"}
	periods := []string{"Q1 2024", "Q2 2024", "Q3 2024", "Q4 2024", "Q1 2025", "Q2 2025"}

	var revenues []domain.Revenue
	id := 1
	for _, period := range periods {
		for _, dept := range revDepartments {
			for _, product := range products {
				r := domain.Revenue{
					ID:            id,
					Department:    dept,
					Product:       product,
					Period:        period,
					RevenueAmount: round2f(5000 + rng.Float64()*95000),
					UnitsSold:     10 + rng.Intn(490),
					GrowthRate:    round1f(-10 + rng.Float64()*40),
				}
				if rng.Float64() > 0.3 {
					r.ProjectID = fmt.Sprintf("REV-%03d", id%1000)
				}
				revenues = append(revenues, r)
				id++
			}
		}
	}
	return revenues
}

func seedHR() hrData {
	rng := rand.New(rand.NewSource(seedSource))
	employees := generateEmployees(rng)
	return hrData{
		Employees: employees,
		Policies:  generatePolicies(rng),
		Payroll:   generatePayroll(rng, employees),
	}
}

func generateEmployees(rng *rand.Rand) []domain.Employee {
	hrDepartments := append(departments, "IT", "Customer Support")
	positions := []string{
		"Software Engineer", "Product Manager", "Sales Representative", "HR Specialist",
		"Financial Analyst", "Operations Manager", "IT Support", "Customer Success Manager",
	}
	locations := []string{"New York", "San Francisco", "London", "Tokyo", "Berlin", "Singapore", "Toronto", "Sydney"}
	firstNames := []string{"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}
	bands := []string{"A", "B", "C", "D", "E"}
	statuses := []string{"Active", "On Leave", "Probation"}
	hired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	employees := make([]domain.Employee, 0, 40)
	for i := 0; i < 40; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		employees = append(employees, domain.Employee{
			EmployeeID: fmt.Sprintf("EMP%d", 1000+i),
			FirstName:  first,
			LastName:   last,
			FullName:   first + " " + last,
			Email:      strings.ToLower(first) + "." + strings.ToLower(last) + "@company.com",
			Department: hrDepartments[rng.Intn(len(hrDepartments))],
			Position:   positions[rng.Intn(len(positions))],
			Location:   locations[rng.Intn(len(locations))],
			HireDate:   hired.AddDate(0, 0, rng.Intn(1460)).Format("2006-01-02"),
			SalaryBand: bands[rng.Intn(len(bands))],
			ManagerID:  fmt.Sprintf("EMP%d", 1000+rng.Intn(40)),
			Status:     statuses[rng.Intn(len(statuses))],
			Phone:      fmt.Sprintf("+1-555-%03d-%04d", 100+rng.Intn(900), 1000+rng.Intn(9000)),
		})
	}
	return employees
}

func generatePolicies(rng *rand.Rand) []domain.Policy {
	types := []string{"Leave", "Expense", "Code of Conduct", "Remote Work", "Benefits", "Travel", "IT Security", "Performance"}
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var policies []domain.Policy
	for _, policyType := range types {
		for v := 1; v <= 3; v++ {
			policies = append(policies, domain.Policy{
				PolicyID:      fmt.Sprintf("POL-%s-%03d", strings.ToUpper(policyType[:3]), v),
				PolicyType:    policyType,
				Title:         fmt.Sprintf("%s Policy v%d.0", policyType, v),
				EffectiveDate: base.AddDate(0, 0, rng.Intn(365)).Format("2006-01-02"),
				Version:       fmt.Sprintf("%d.0", v),
				Category:      policyType,
				Description:   fmt.Sprintf("Official company policy regarding %s procedures and guidelines.", strings.ToLower(policyType)),
				DocumentURL:   fmt.Sprintf("/policies/%s-v%d.0.pdf", strings.ToLower(strings.ReplaceAll(policyType, " ", "-")), v),
				LastUpdated:   updated.AddDate(0, 0, rng.Intn(90)).Format("2006-01-02"),
			})
		}
	}
	return policies
}

func generatePayroll(rng *rand.Rand, employees []domain.Employee) []domain.PayrollEntry {
	var periods []string
	for _, year := range []int{2023, 2024} {
		for month := 1; month <= 12; month++ {
			periods = append(periods, fmt.Sprintf("%d-%02d", year, month))
		}
	}

	var entries []domain.PayrollEntry
	id := 1
	count := len(employees)
	if count > 25 {
		count = 25
	}
	for _, e := range employees[:count] {
		for i := 0; i < 6; i++ {
			period := periods[rng.Intn(len(periods))]
			base := 50000 + rng.Intn(70000)
			bonus := 0
			if rng.Float64() > 0.7 {
				bonus = rng.Intn(10000)
			}
			overtime := 0
			if rng.Float64() > 0.8 {
				overtime = rng.Intn(2000)
			}
			deductions := 500 + rng.Intn(1500)
			entries = append(entries, domain.PayrollEntry{
				ID:            id,
				EmployeeID:    e.EmployeeID,
				EmployeeName:  e.FullName,
				Department:    e.Department,
				Period:        period,
				BaseSalary:    base,
				Bonus:         bonus,
				Overtime:      overtime,
				Deductions:    deductions,
				NetPay:        base + bonus - deductions,
				PaymentDate:   fmt.Sprintf("%s-%d", period, 25+rng.Intn(4)),
				PaymentMethod: []string{"Direct Deposit", "Wire Transfer"}[rng.Intn(2)],
				Status:        []string{"Paid", "Processing", "Completed"}[rng.Intn(3)],
			})
			id++
		}
	}
	return entries
}

func seedIT() itData {
	rng := rand.New(rand.NewSource(seedSource))
	return itData{
		SystemStatus:   generateSystemStatus(rng),
		SupportTickets: []domain.SupportTicket{},
		PasswordResets: []domain.PasswordReset{},
	}
}

func generateSystemStatus(rng *rand.Rand) []domain.ServiceStatus {
	services := []string{
		"Authentication Service", "Database Cluster", "API Gateway",
		"File Storage", "Email Service", "Monitoring System",
		"Cache Service", "Load Balancer", "CDN", "Message Queue",
		"Web Application", "Mobile API", "Payment Gateway", "Analytics Service",
	}
	now := time.Now().UTC()

	statuses := make([]domain.ServiceStatus, 0, len(services))
	for _, name := range services {
		status := weightedStatus(rng)
		responseTime := round2f(50 + rng.Float64()*450)
		incidents := 0
		if status != domain.StatusOperational {
			responseTime = round2f(800 + rng.Float64()*1200)
			incidents = rng.Intn(4)
		}
		statuses = append(statuses, domain.ServiceStatus{
			ServiceName:     name,
			Status:          status,
			ResponseTime:    responseTime,
			Uptime:          round2f(99.5 + rng.Float64()*0.49),
			LastUpdated:     now.Add(-time.Duration(1+rng.Intn(60)) * time.Minute),
			IncidentsLast24: incidents,
		})
	}
	return statuses
}

// weightedStatus skews towards healthy services: 70% operational, 15%
// degraded, 10% maintenance, 5% outage.
func weightedStatus(rng *rand.Rand) string {
	switch v := rng.Float64(); {
	case v < 0.70:
		return domain.StatusOperational
	case v < 0.85:
		return domain.StatusDegraded
	case v < 0.95:
		return domain.StatusMaintenance
	default:
		return domain.StatusOutage
	}
}

func round2f(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1f(v float64) float64 {
	return math.Round(v*10) / 10
}
