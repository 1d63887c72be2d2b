package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// ErrConstraintViolation значение нарушает ограничение схемы (часы или цена не больше нуля и т.п.).
	ErrConstraintViolation = errors.New("constraint violation")

	ErrOwnerConflict        = errors.New("owner conflict")
	ErrVoucherInactive      = errors.New("voucher is inactive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentMethodChanged = errors.New("payment method differs from order")
	ErrOrderAlreadyPaid     = errors.New("order already paid")
	ErrOrderNotPending      = errors.New("order is not pending")
	ErrPaymentNotFound      = errors.New("payment not initiated")
	ErrPaymentNotConfirmed  = errors.New("payment not yet confirmed")
	ErrCardTokenRequired    = errors.New("card token is required")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
)

// PaymentDeclinedError отказ шлюза по карточному платежу.
type PaymentDeclinedError struct {
	Detail string
}

func NewPaymentDeclinedError(detail string) error {
	return &PaymentDeclinedError{Detail: detail}
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Detail)
}
