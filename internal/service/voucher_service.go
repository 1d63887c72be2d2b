package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultVouchers ваучеры, создаваемые при первом запуске на пустой базе.
var DefaultVouchers = []repoargs.CreateVoucher{ //nolint:gochecknoglobals
	{Name: "1 Hora", Hours: decimal.NewFromInt(1), Price: decimal.RequireFromString("5.00"), Active: true},
	{Name: "3 Horas", Hours: decimal.NewFromInt(3), Price: decimal.RequireFromString("10.00"), Active: true},
	{Name: "24 Horas", Hours: decimal.NewFromInt(24), Price: decimal.RequireFromString("25.00"), Active: true}, //nolint:mnd
}

type VoucherService struct {
	uow         uow.UOW
	voucherRepo VoucherRepository
}

func NewVoucherService(u uow.UOW) (*VoucherService, error) {
	voucherRepo, err := uow.GetRepositoryAs[VoucherRepository](u, uow.RepositoryName(repoargs.VoucherRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &VoucherService{
		uow:         u,
		voucherRepo: voucherRepo,
	}, nil
}

// ListActive возвращает ваучеры, доступные для покупки.
func (v *VoucherService) ListActive(ctx context.Context) ([]domain.Voucher, error) {
	vouchers, err := v.voucherRepo.List(ctx, true)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return vouchers, nil
}

// GetActive возвращает ваучер по id. Неактивный ваучер считается ненайденным.
func (v *VoucherService) GetActive(ctx context.Context, id uuid.UUID) (*domain.Voucher, error) {
	voucher, err := v.voucherRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !voucher.Active {
		return nil, fmt.Errorf("voucher %s: %w", id, domain.ErrRecordNotFound)
	}
	return voucher, nil
}

func (v *VoucherService) Create(ctx context.Context, args repoargs.CreateVoucher) (*domain.Voucher, error) {
	voucher, err := v.voucherRepo.Create(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating voucher: %w", err)
	}
	return voucher, nil
}

func (v *VoucherService) Update(ctx context.Context, id uuid.UUID, args repoargs.UpdateVoucher) (*domain.Voucher, error) {
	voucher, err := v.voucherRepo.Update(ctx, id, args)
	if err != nil {
		return nil, fmt.Errorf("updating voucher: %w", err)
	}
	return voucher, nil
}

// Deactivate мягкое удаление: ваучер перестает показываться, но существующие заказы его сохраняют.
func (v *VoucherService) Deactivate(ctx context.Context, id uuid.UUID) error {
	active := false
	if _, err := v.voucherRepo.Update(ctx, id, repoargs.UpdateVoucher{Active: &active}); err != nil {
		return fmt.Errorf("deactivating voucher: %w", err)
	}
	return nil
}

// SeedDefaults создает DefaultVouchers, если в базе нет ни одного ваучера. Возвращает количество созданных.
func (v *VoucherService) SeedDefaults(ctx context.Context) (int, error) {
	var created int
	txErr := v.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[VoucherRepository](tx, uow.RepositoryName(repoargs.VoucherRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		count, countErr := repo.Count(c)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}
		if count > 0 {
			return nil
		}
		for _, args := range DefaultVouchers {
			if _, err := repo.Create(c, args); err != nil {
				return err //nolint:wrapcheck
			}
			created++
		}
		return nil
	})
	if txErr != nil {
		return 0, fmt.Errorf("seeding vouchers: %w", txErr)
	}
	return created, nil
}
