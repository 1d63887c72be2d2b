package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/google/uuid"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	Me(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, page repoargs.Page) ([]domain.User, error)
}

type VoucherServicer interface {
	ListActive(ctx context.Context) ([]domain.Voucher, error)
	GetActive(ctx context.Context, id uuid.UUID) (*domain.Voucher, error)
	Create(ctx context.Context, args repoargs.CreateVoucher) (*domain.Voucher, error)
	Update(ctx context.Context, id uuid.UUID, args repoargs.UpdateVoucher) (*domain.Voucher, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type OrderServicer interface {
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	ListAll(ctx context.Context, page repoargs.Page) ([]domain.OrderWithUser, error)
}

type PaymentServicer interface {
	Process(ctx context.Context, args service.ProcessPaymentArgs) (*service.ProcessPaymentResult, error)
}

// ReconcileServicer операции подтверждения оплаты.
type ReconcileServicer interface {
	Confirm(ctx context.Context, actor service.Actor, orderID uuid.UUID) (*service.TransitionResult, error)
	PaymentStatus(ctx context.Context, actor service.Actor, orderID uuid.UUID) (*service.PaymentStatusResult, error)
	HandleNotification(ctx context.Context, paymentID string) (*service.TransitionResult, error)
}

type CompanyServicer interface {
	Get(ctx context.Context) (*domain.Company, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Company, error)
	Save(ctx context.Context, args service.SaveCompanyArgs) (*domain.Company, error)
	SaveFinancial(ctx context.Context, args service.SaveFinancialArgs) (*domain.Company, error)
}

type DashboardServicer interface {
	Client(ctx context.Context, userID uuid.UUID) (*domain.ClientDashboard, error)
	Admin(ctx context.Context) (*domain.AdminDashboard, error)
}

// WebhookDeduplicator отсекает повторную доставку уведомлений с тем же x-request-id.
type WebhookDeduplicator interface {
	Acquire(ctx context.Context, requestID string) (bool, error)
	Release(ctx context.Context, requestID string) error
}

type SignatureVerifier interface {
	Enabled() bool
	Verify(signatureHeader, requestID, dataID string) bool
}

// Pinger проверка доступности хранилища для health check.
type Pinger interface {
	Ping(ctx context.Context) error
}
