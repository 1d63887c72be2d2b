package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	userRepo  UserRepository
	orderRepo OrderRepository
}

func NewDashboardService(u uow.UOW) (*DashboardService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr //nolint:wrapcheck
	}
	return &DashboardService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}, nil
}

// Client сводка для личного кабинета: баланс часов и статистика заказов юзера.
func (d *DashboardService) Client(ctx context.Context, userID uuid.UUID) (*domain.ClientDashboard, error) {
	var user *domain.User
	var stats *repoargs.UserOrderStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = d.userRepo.FindUserByID(gCtx, userID)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		stats, err = d.orderRepo.UserStats(gCtx, userID)
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("client dashboard: %w", err)
	}

	return &domain.ClientDashboard{
		HoursBalance: user.HoursBalance,
		TotalOrders:  stats.TotalOrders,
		PaidOrders:   stats.PaidOrders,
		TotalSpent:   stats.TotalSpent,
	}, nil
}

// Admin общая сводка продаж. TotalUsers учитывает только клиентов.
func (d *DashboardService) Admin(ctx context.Context) (*domain.AdminDashboard, error) {
	var clients int64
	var stats *repoargs.OrderStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = d.userRepo.CountByRole(gCtx, domain.RoleClient)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		stats, err = d.orderRepo.Stats(gCtx)
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	return &domain.AdminDashboard{
		TotalUsers:    clients,
		TotalOrders:   stats.TotalOrders,
		PaidOrders:    stats.PaidOrders,
		PendingOrders: stats.PendingOrders,
		TotalRevenue:  stats.TotalRevenue,
	}, nil
}
