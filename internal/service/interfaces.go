package service

import (
	"context"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/client"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementHours(ctx context.Context, id uuid.UUID, hours decimal.Decimal) (*domain.User, error)
	List(ctx context.Context, page repoargs.Page) ([]domain.User, error)
	CountByRole(ctx context.Context, role domain.RoleType) (int64, error)
}

type VoucherRepository interface {
	Create(ctx context.Context, args repoargs.CreateVoucher) (*domain.Voucher, error)
	Update(ctx context.Context, id uuid.UUID, args repoargs.UpdateVoucher) (*domain.Voucher, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Voucher, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Voucher, error)
	Count(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	TransitionFromPending(ctx context.Context, args repoargs.TransitionOrder) (*domain.Order, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*repoargs.UserOrderStats, error)
	Stats(ctx context.Context) (*repoargs.OrderStats, error)
	ListWithUsers(ctx context.Context, page repoargs.Page) ([]domain.OrderWithUser, error)
}

type PaymentRepository interface {
	Upsert(ctx context.Context, args repoargs.UpsertPayment) (*domain.Payment, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error)
	Confirm(ctx context.Context, args repoargs.ConfirmPayment) (*domain.Payment, error)
	Fail(ctx context.Context, args repoargs.FailPayment) (*domain.Payment, error)
	GetPendingGateway(ctx context.Context, limit uint) ([]domain.Payment, error)
	Touch(ctx context.Context, ids []uuid.UUID) error
}

type CompanyRepository interface {
	FindDefault(ctx context.Context) (*domain.Company, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Company, error)
	FindWithoutSlug(ctx context.Context) ([]domain.Company, error)
	Create(ctx context.Context, args repoargs.SaveCompany) (*domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, args repoargs.SaveCompany) (*domain.Company, error)
	SetSlug(ctx context.Context, id uuid.UUID, slug string) error
}

// PaymentGateway внешний платежный шлюз.
type PaymentGateway interface {
	CreateQRCharge(ctx context.Context, args client.QRChargeArgs) (*client.QRCharge, error)
	CreateCardCharge(ctx context.Context, args client.CardChargeArgs) (*client.CardCharge, error)
	CheckStatus(ctx context.Context, externalReference string) (*client.StatusResult, error)
	GetPayment(ctx context.Context, paymentID string) (*client.Payment, error)
}

// EventPublisher публикует события об оплаченных заказах.
type EventPublisher interface {
	PublishOrderPaid(ctx context.Context, event domain.OrderPaidEvent) error
}
