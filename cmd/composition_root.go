package cmd

import (
	"errors"
	"log/slog"
	"time"

	httpin "lockers/internal/adapters/in/http"
	"lockers/internal/adapters/out/events"
	"lockers/internal/adapters/out/identity"
	"lockers/internal/adapters/out/notify"
	"lockers/internal/adapters/out/postgres"
	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/jobs"
	"lockers/internal/pkg/metrics"
	"lockers/internal/pkg/password"

	"gorm.io/gorm"
)

// Dependencies are the outbound adapters chosen by main. Nil fields fall back
// to local implementations: log notifications, no events, no payment gateway.
type Dependencies struct {
	Notifier ports.Notifier
	Events   ports.EventPublisher
	Gateway  ports.PaymentGateway
	Codes    services.CodeGenerator
	Clock    func() time.Time
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	deps       Dependencies

	authorizer services.Authorizer
	limiter    *services.AttemptLimiter
	hasher     password.Hasher
	tokens     *identity.JWT
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, deps Dependencies) (*CompositionRoot, error) {
	if gormDB == nil {
		return nil, errors.New("gormDB is required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NewLog(deps.Logger)
	}
	if deps.Events == nil {
		deps.Events = events.Noop{}
	}
	if deps.Codes == nil {
		deps.Codes = services.NewRandomCodeGenerator()
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	tokens, err := identity.NewJWT(cfg.JWTSecret, cfg.JWTTTL(), uowFactory)
	if err != nil {
		return nil, err
	}
	tokens.WithClock(deps.Clock)

	limiter := services.NewAttemptLimiter(cfg.CodeMaxFailedAttempts, cfg.CodeWindow(), cfg.CodeLockout()).
		WithClock(deps.Clock)

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		deps:       deps,
		authorizer: services.NewAuthorizer(auth.DefaultCapabilities()),
		limiter:    limiter,
		hasher:     password.NewHasher(cfg.PasswordCost),
		tokens:     tokens,
	}, nil
}

// CreateServer builds the HTTP adapter with every use case wired in.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.CreateHandlers(), c.tokens, c.deps.Metrics, c.deps.Logger)
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	announcer := commands.NewAnnouncer(c.deps.Notifier, c.deps.Events, c.deps.Clock, c.deps.Logger)
	lockerUoW := c.lockerUoWFactory()
	orderUoW := c.orderUoWFactory()
	paymentUoW := c.paymentUoWFactory()
	accountUoW := c.accountUoWFactory()
	clock := c.deps.Clock
	logger := c.deps.Logger

	return httpin.Handlers{
		RegisterCustomer:        commands.NewRegisterCustomerCommandHandler(accountUoW, c.hasher, clock),
		Login:                   commands.NewLoginCommandHandler(accountUoW, c.hasher, c.tokens),
		RequestAccountDeletion:  commands.NewRequestAccountDeletionCommandHandler(accountUoW, c.authorizer, clock),
		FinalizeAccountDeletion: commands.NewFinalizeAccountDeletionCommandHandler(accountUoW, c.authorizer, clock),
		DeleteStaffAccount:      commands.NewDeleteStaffAccountCommandHandler(accountUoW, c.authorizer),

		CreateLocker: commands.NewCreateLockerCommandHandler(lockerUoW, c.authorizer),
		DeleteLocker: commands.NewDeleteLockerCommandHandler(lockerUoW, c.authorizer),
		BookLocker: commands.NewBookLockerCommandHandler(
			c.bookingUoWFactory(), c.authorizer, services.NewLockerBooking(c.deps.Codes), announcer, clock, logger),
		UnlockLocker: commands.NewUnlockLockerCommandHandler(lockerUoW, c.authorizer, c.limiter, announcer, logger),
		LockLocker:   commands.NewLockLockerCommandHandler(lockerUoW, c.authorizer, c.limiter, announcer, logger),
		ListLockers:  queries.NewListLockersQueryHandler(c.gormDB, c.authorizer),
		GetLocker:    queries.NewGetLockerQueryHandler(c.gormDB, c.authorizer),

		CreateOrder:           commands.NewCreateOrderCommandHandler(orderUoW, c.authorizer, clock),
		UpdateOrder:           commands.NewUpdateOrderCommandHandler(orderUoW, c.authorizer, clock),
		RequestOrderDeletion:  commands.NewRequestOrderDeletionCommandHandler(orderUoW, c.authorizer, clock),
		FinalizeOrderDeletion: commands.NewFinalizeOrderDeletionCommandHandler(orderUoW, c.authorizer, clock),
		ListOrders:            queries.NewListOrdersQueryHandler(c.gormDB, c.authorizer),
		GetOrder:              queries.NewGetOrderQueryHandler(c.gormDB, c.authorizer),

		CapturePayment: commands.NewCapturePaymentCommandHandler(
			paymentUoW, c.authorizer, c.deps.Gateway, c.cfg.PaymentCurrency, clock, logger),
		UpdatePayment:           commands.NewUpdatePaymentCommandHandler(paymentUoW, c.authorizer, clock),
		RequestPaymentDeletion:  commands.NewRequestPaymentDeletionCommandHandler(paymentUoW, c.authorizer, clock),
		FinalizePaymentDeletion: commands.NewFinalizePaymentDeletionCommandHandler(paymentUoW, c.authorizer, clock),
		ListPayments:            queries.NewListPaymentsQueryHandler(c.gormDB, c.authorizer),
		GetPayment:              queries.NewGetPaymentQueryHandler(c.gormDB, c.authorizer),

		ListDeletionRequests: queries.NewListDeletionRequestsQueryHandler(c.gormDB, c.authorizer),
	}
}

func (c *CompositionRoot) CreateBootstrapAdmin() commands.BootstrapAdmin {
	return commands.NewBootstrapAdmin(c.accountUoWFactory(), c.hasher, c.deps.Clock, c.deps.Logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.limiter, c.gormDB, c.deps.Metrics, c.deps.Logger)
}

func (c *CompositionRoot) lockerUoWFactory() commands.LockerUoWFactory {
	return FuncLockerUoWFactory(func() commands.LockerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

type FuncLockerUoWFactory func() commands.LockerUoW

func (f FuncLockerUoWFactory) Create() commands.LockerUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
