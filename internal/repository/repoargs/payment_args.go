package repoargs

import (
	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertPayment создает платеж заказа или перезаписывает существующий неподтвержденный.
type UpsertPayment struct {
	OrderID          uuid.UUID
	PaymentMethod    domain.PaymentMethodType
	Status           domain.PaymentStatusType
	Amount           decimal.Decimal
	PixQRCode        *string
	PixKey           *string
	CardLastDigits   *string
	GatewayOrderID   *string
	GatewayPaymentID *string
	StatusDetail     *string
	Installments     *int
	FallbackMode     bool
}

type FailPayment struct {
	OrderID      uuid.UUID
	StatusDetail *string
}

type ConfirmPayment struct {
	OrderID          uuid.UUID
	GatewayPaymentID *string
}
