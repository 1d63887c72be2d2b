package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
)

type OrderService struct {
	uow         uow.UOW
	orderRepo   OrderRepository
	voucherRepo VoucherRepository
	companies   *CompanyService
}

func NewOrderService(u uow.UOW, companies *CompanyService) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	voucherRepo, voucherRepoErr := uow.GetRepositoryAs[VoucherRepository](u, uow.RepositoryName(repoargs.VoucherRepoName))
	if voucherRepoErr != nil {
		return nil, voucherRepoErr //nolint:wrapcheck
	}
	return &OrderService{
		uow:         u,
		orderRepo:   orderRepo,
		voucherRepo: voucherRepo,
		companies:   companies,
	}, nil
}

type CreateOrderArgs struct {
	UserID        uuid.UUID
	VoucherID     uuid.UUID
	PaymentMethod domain.PaymentMethodType
	CompanySlug   *string
}

// Create создает заказ в статусе pending.
//
// Цена, количество часов и название ваучера, а также данные компании копируются в заказ и в дальнейшем
// не зависят от изменений ваучера или компании. Неактивный ваучер дает domain.ErrVoucherInactive.
func (o *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	if !args.PaymentMethod.Valid() {
		return nil, domain.ErrInvalidPaymentMethod
	}

	voucher, voucherErr := o.voucherRepo.FindByID(ctx, args.VoucherID)
	if voucherErr != nil {
		return nil, fmt.Errorf("creating order: %w", voucherErr)
	}
	if !voucher.Active {
		return nil, domain.ErrVoucherInactive
	}

	createArgs := repoargs.CreateOrder{
		UserID:        args.UserID,
		VoucherID:     voucher.ID,
		PaymentMethod: args.PaymentMethod,
		TotalAmount:   voucher.Price,
		VoucherHours:  voucher.Hours,
		VoucherName:   voucher.Name,
		CompanySlug:   args.CompanySlug,
	}

	company, companyErr := o.companies.ForOrder(ctx, args.CompanySlug)
	if companyErr != nil {
		return nil, fmt.Errorf("creating order: %w", companyErr)
	}
	if company != nil {
		createArgs.Company = company.Snapshot()
	}

	order, createErr := o.orderRepo.CreateOrder(ctx, createArgs)
	if createErr != nil {
		return nil, fmt.Errorf("creating order: %w", createErr)
	}
	return order, nil
}

// GetByUserID Возвращает заказы от userID отсортированные по дате создания по убыванию.
func (o *OrderService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// ListAll возвращает страницу заказов всех юзеров для админки.
func (o *OrderService) ListAll(ctx context.Context, page repoargs.Page) ([]domain.OrderWithUser, error) {
	orders, err := o.orderRepo.ListWithUsers(ctx, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}
