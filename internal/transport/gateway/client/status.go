package client

import "github.com/fsdevblog/cit-vouchers/internal/domain"

// Статусы платежа на стороне шлюза.
const (
	GatewayApproved  = "approved"
	GatewayPending   = "pending"
	GatewayInProcess = "in_process"
	GatewayRejected  = "rejected"
	GatewayCancelled = "cancelled"
	GatewayRefunded  = "refunded"
)

// CardStatusType нормализованный результат карточного платежа.
type CardStatusType string

const (
	CardApproved CardStatusType = "approved"
	CardPending  CardStatusType = "pending"
	CardRejected CardStatusType = "rejected"
)

// CheckStatusType нормализованный результат проверки статуса по external_reference.
type CheckStatusType string

const (
	CheckConfirmed CheckStatusType = "confirmed"
	CheckPending   CheckStatusType = "pending"
	CheckFailed    CheckStatusType = "failed"
)

var orderStatusMap = map[string]domain.OrderStatusType{
	GatewayApproved:  domain.OrderStatusPaid,
	GatewayPending:   domain.OrderStatusPending,
	GatewayInProcess: domain.OrderStatusPending,
	GatewayRejected:  domain.OrderStatusFailed,
	GatewayCancelled: domain.OrderStatusCancelled,
	GatewayRefunded:  domain.OrderStatusRefunded,
}

// MapOrderStatus переводит статус шлюза в статус заказа. Неизвестные значения считаются pending.
func MapOrderStatus(gatewayStatus string) domain.OrderStatusType {
	if s, ok := orderStatusMap[gatewayStatus]; ok {
		return s
	}
	return domain.OrderStatusPending
}

func mapCheckStatus(gatewayStatus string) CheckStatusType {
	switch gatewayStatus {
	case GatewayApproved:
		return CheckConfirmed
	case GatewayRejected, GatewayCancelled, GatewayRefunded:
		return CheckFailed
	default:
		return CheckPending
	}
}

func mapCardStatus(gatewayStatus string) CardStatusType {
	switch gatewayStatus {
	case GatewayApproved:
		return CardApproved
	case GatewayRejected, GatewayCancelled:
		return CardRejected
	default:
		return CardPending
	}
}
