package repoargs

import (
	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	UserID        uuid.UUID
	VoucherID     uuid.UUID
	PaymentMethod domain.PaymentMethodType
	TotalAmount   decimal.Decimal
	VoucherHours  decimal.Decimal
	VoucherName   string
	Company       *domain.CompanySnapshot
	CompanySlug   *string
}

// TransitionOrder переход заказа из pending в Status. GatewayPaymentID и GatewayStatus опциональны.
type TransitionOrder struct {
	ID               uuid.UUID
	Status           domain.OrderStatusType
	GatewayPaymentID *string
	GatewayStatus    *string
}

type UserOrderStats struct {
	TotalOrders int64
	PaidOrders  int64
	TotalSpent  decimal.Decimal
}

type OrderStats struct {
	TotalOrders   int64
	PaidOrders    int64
	PendingOrders int64
	TotalRevenue  decimal.Decimal
}
