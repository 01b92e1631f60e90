// Package http exposes the locker service over JSON/HTTP with echo.
package http

import (
	"log/slog"
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every use case the server dispatches to.
type Handlers struct {
	// Accounts
	RegisterCustomer        commands.RegisterCustomerCommandHandler
	Login                   commands.LoginCommandHandler
	RequestAccountDeletion  commands.RequestAccountDeletionCommandHandler
	FinalizeAccountDeletion commands.FinalizeAccountDeletionCommandHandler
	DeleteStaffAccount      commands.DeleteStaffAccountCommandHandler

	// Lockers
	CreateLocker commands.CreateLockerCommandHandler
	DeleteLocker commands.DeleteLockerCommandHandler
	BookLocker   commands.BookLockerCommandHandler
	UnlockLocker commands.UnlockLockerCommandHandler
	LockLocker   commands.LockLockerCommandHandler
	ListLockers  queries.ListLockersQueryHandler
	GetLocker    queries.GetLockerQueryHandler

	// Orders
	CreateOrder           commands.CreateOrderCommandHandler
	UpdateOrder           commands.UpdateOrderCommandHandler
	RequestOrderDeletion  commands.RequestOrderDeletionCommandHandler
	FinalizeOrderDeletion commands.FinalizeOrderDeletionCommandHandler
	ListOrders            queries.ListOrdersQueryHandler
	GetOrder              queries.GetOrderQueryHandler

	// Payments
	CapturePayment          commands.CapturePaymentCommandHandler
	UpdatePayment           commands.UpdatePaymentCommandHandler
	RequestPaymentDeletion  commands.RequestPaymentDeletionCommandHandler
	FinalizePaymentDeletion commands.FinalizePaymentDeletionCommandHandler
	ListPayments            queries.ListPaymentsQueryHandler
	GetPayment              queries.GetPaymentQueryHandler

	ListDeletionRequests queries.ListDeletionRequestsQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h        Handlers
	identity ports.IdentityDirectory
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer creates a server. metrics may be nil.
func NewServer(h Handlers, identity ports.IdentityDirectory, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		h:        h,
		identity: identity,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e.
//
//	@title			Smart-laundry lockers API
//	@version		1.0
//	@BasePath		/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in				header
//	@name			Authorization
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = ErrorHandler(s.logger)
	e.Use(middleware.Recover())
	e.Use(s.tracing())
	e.Use(s.requestLogger())
	if s.metrics != nil {
		e.Use(s.instrument())
		e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login)
	api.POST("/customers", s.RegisterCustomer)

	secured := api.Group("", s.authenticate())

	secured.DELETE("/accounts/me/request", s.RequestAccountDeletion)
	secured.DELETE("/accounts/:role/:id", s.DeleteAccount)

	secured.POST("/lockers", s.CreateLocker)
	secured.GET("/lockers", s.ListLockers)
	secured.GET("/lockers/:id", s.GetLocker)
	secured.DELETE("/lockers/:id", s.DeleteLocker)
	secured.POST("/lockers/:id/book", s.BookLocker)
	secured.POST("/lockers/:id/unlock", s.UnlockLocker)
	secured.POST("/lockers/:id/lock", s.LockLocker)

	secured.POST("/orders", s.CreateOrder)
	secured.GET("/orders", s.ListOrders)
	secured.GET("/orders/:id", s.GetOrder)
	secured.PATCH("/orders/:id", s.UpdateOrder)
	secured.DELETE("/orders/:id/request", s.RequestOrderDeletion)
	secured.DELETE("/orders/:id", s.FinalizeOrderDeletion)

	secured.POST("/payments", s.CapturePayment)
	secured.GET("/payments", s.ListPayments)
	secured.GET("/payments/:id", s.GetPayment)
	secured.PATCH("/payments/:id", s.UpdatePayment)
	secured.DELETE("/payments/:id/request", s.RequestPaymentDeletion)
	secured.DELETE("/payments/:id", s.FinalizePaymentDeletion)

	secured.GET("/deletion-requests", s.ListDeletionRequests)
}

func (s *Server) fail(c echo.Context, err error) error {
	return writeError(c, s.logger, err)
}
