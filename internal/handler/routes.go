package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/middleware"
	"github.com/tallyapp/tally/internal/service"
)

// Services bundles everything the routes need.
type Services struct {
	Auth        *service.AuthService
	Groups      *service.GroupService
	Expenses    *service.ExpenseService
	Settlements *service.SettlementService
	Ledger      *service.LedgerService
}

// RegisterRoutes wires all handlers onto the echo instance.
func RegisterRoutes(e *echo.Echo, svcs Services, tokens *auth.JWTManager, limiter *middleware.RateLimiter) {
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", middleware.MetricsHandler())

	authHandler := NewAuthHandler(svcs.Auth)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	api := e.Group("/api", middleware.RequireAuth(tokens), limiter.Middleware())

	groupHandler := NewGroupHandler(svcs.Groups)
	api.POST("/groups", groupHandler.Create)
	api.GET("/groups/:id", groupHandler.Get)
	api.POST("/groups/:id/members", groupHandler.AddMembers)

	expenseHandler := NewExpenseHandler(svcs.Expenses)
	api.POST("/groups/:id/expenses", expenseHandler.Create)
	api.GET("/groups/:id/expenses", expenseHandler.List)
	api.DELETE("/expenses/:id", expenseHandler.Delete)

	settlementHandler := NewSettlementHandler(svcs.Settlements)
	api.POST("/groups/:id/settlements", settlementHandler.Create)
	api.GET("/groups/:id/settlements", settlementHandler.List)

	balanceHandler := NewBalanceHandler(svcs.Ledger)
	api.GET("/groups/:id/balances", balanceHandler.Get)
}
