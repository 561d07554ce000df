package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mocklab/corpmock/internal/api/handler"
	"github.com/mocklab/corpmock/internal/api/middleware"
	"github.com/mocklab/corpmock/internal/core/domain"
	"github.com/mocklab/corpmock/internal/core/ports"
	"github.com/mocklab/corpmock/internal/core/service"
)

// Deps carries everything the router needs, constructed once at startup
// and passed explicitly: there is no hidden global state.
type Deps struct {
	Logger  zerolog.Logger
	Keyring *service.Keyring
	Catalog ports.CatalogService
	Finance ports.FinanceService
	HR      ports.HRService
	IT      ports.ITService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("corpmock"))

	// --- Open routes ---
	root := handler.NewRootHandler(d.Keyring)
	e.GET("/", root.Index)
	e.GET("/api-keys", root.APIKeys)
	e.GET("/health", root.Health)
	e.GET("/metrics", echoprometheus.NewHandler())

	catalog := handler.NewCatalogHandler(d.Catalog)
	users := e.Group("/users")
	users.GET("/random", catalog.RandomUser)
	users.GET("/all", catalog.AllUsers)
	users.GET("/:id", catalog.UserByID)

	products := e.Group("/products")
	products.GET("/random", catalog.RandomProduct)
	products.GET("/all", catalog.AllProducts)
	products.GET("/category/:category", catalog.ProductsByCategory)

	orders := e.Group("/orders")
	orders.GET("/random", catalog.RandomOrder)
	orders.GET("/all", catalog.AllOrders)
	orders.GET("/user/:user_id", catalog.OrdersByUser)

	// --- Key-gated routes ---
	finance := handler.NewFinanceHandler(d.Finance)
	fin := e.Group("/financial", middleware.APIKey(d.Keyring, domain.ServiceFinancial, domain.LevelRead))
	fin.GET("/budgets", finance.Budgets)
	fin.GET("/expenses", finance.Expenses)
	fin.GET("/revenues", finance.Revenues)
	fin.GET("/summary", finance.Summary)

	hrHandler := handler.NewHRHandler(d.HR)
	hr := e.Group("/hr", middleware.APIKey(d.Keyring, domain.ServiceHR, domain.LevelRead))
	hr.GET("/employees", hrHandler.Employees)
	hr.GET("/employees/:employee_id", hrHandler.EmployeeByID)
	hr.GET("/policies", hrHandler.Policies)
	hr.GET("/summary", hrHandler.Summary)
	// Payroll sits behind its own level, outside the read group.
	e.GET("/hr/payroll", hrHandler.Payroll,
		middleware.APIKey(d.Keyring, domain.ServiceHR, domain.LevelPayroll))

	it := handler.NewITHandler(d.IT)
	itGroup := e.Group("/it", middleware.APIKey(d.Keyring, domain.ServiceIT, domain.LevelRead))
	itGroup.GET("/status", it.Status)
	itGroup.GET("/status/overview", it.Overview)
	itGroup.GET("/support/tickets", it.Tickets)
	itGroup.GET("/auth/password/resets", it.PasswordResets)
	itGroup.GET("/dashboard", it.Dashboard)
	// The mutating routes require the support tier.
	e.POST("/it/support/ticket", it.CreateTicket,
		middleware.APIKey(d.Keyring, domain.ServiceIT, domain.LevelSupport))
	e.POST("/it/auth/password/reset", it.RequestPasswordReset,
		middleware.APIKey(d.Keyring, domain.ServiceIT, domain.LevelSupport))

	return e
}
