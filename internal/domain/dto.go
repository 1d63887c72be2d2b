package domain

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusPaid      OrderStatusType = "paid"
	OrderStatusFailed    OrderStatusType = "failed"
	OrderStatusCancelled OrderStatusType = "cancelled"
	OrderStatusRefunded  OrderStatusType = "refunded"
)

// IsTerminal возвращает true для статусов, из которых нет переходов.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

type PaymentMethodType string

const (
	PaymentMethodPix    PaymentMethodType = "pix"
	PaymentMethodCredit PaymentMethodType = "credit"
	PaymentMethodDebit  PaymentMethodType = "debit"
)

func (m PaymentMethodType) Valid() bool {
	return m == PaymentMethodPix || m.IsCard()
}

func (m PaymentMethodType) IsCard() bool {
	return m == PaymentMethodCredit || m == PaymentMethodDebit
}

type PaymentStatusType string

const (
	PaymentStatusPending   PaymentStatusType = "pending"
	PaymentStatusConfirmed PaymentStatusType = "confirmed"
	PaymentStatusFailed    PaymentStatusType = "failed"
)

type RoleType string

const (
	RoleClient RoleType = "client"
	RoleAdmin  RoleType = "admin"
)
