package gateway

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/client"
)

type StatusChecker interface {
	CheckStatus(ctx context.Context, externalReference string) (*client.StatusResult, error)
}

type Servicer interface {
	PendingGatewayPayments(ctx context.Context, limit uint) ([]domain.Payment, error)
	ApplyGatewayStatuses(ctx context.Context, updates []service.GatewayStatusUpdate) error
}
