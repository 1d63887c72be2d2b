package pgrepo

import (
	"context"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const voucherColumns = `id, created_at, updated_at, name, hours, price, active, description`

type VoucherRepository struct {
	conn uow.DBTX
}

func NewVoucherRepository(conn uow.DBTX) *VoucherRepository {
	return &VoucherRepository{conn: conn}
}

func (v *VoucherRepository) Create(ctx context.Context, args repoargs.CreateVoucher) (*domain.Voucher, error) {
	row := v.conn.QueryRow(ctx,
		`INSERT INTO vouchers (name, hours, price, active, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+voucherColumns,
		args.Name, args.Hours, args.Price, args.Active, args.Description,
	)
	voucher, err := scanVoucher(row)
	if err != nil {
		return nil, convertErr(err, "creating voucher `%s`", args.Name)
	}
	return voucher, nil
}

// Update обновляет только переданные (не nil) поля ваучера.
func (v *VoucherRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	args repoargs.UpdateVoucher,
) (*domain.Voucher, error) {
	row := v.conn.QueryRow(ctx,
		`UPDATE vouchers SET
			name = COALESCE($2, name),
			hours = COALESCE($3, hours),
			price = COALESCE($4, price),
			active = COALESCE($5, active),
			description = COALESCE($6, description),
			updated_at = now()
		WHERE id = $1
		RETURNING `+voucherColumns,
		id, args.Name, args.Hours, args.Price, args.Active, args.Description,
	)
	voucher, err := scanVoucher(row)
	if err != nil {
		return nil, convertErr(err, "updating voucher %s", id)
	}
	return voucher, nil
}

func (v *VoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Voucher, error) {
	row := v.conn.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`, id)
	voucher, err := scanVoucher(row)
	if err != nil {
		return nil, convertErr(err, "finding voucher %s", id)
	}
	return voucher, nil
}

// List возвращает ваучеры отсортированные по цене. При activeOnly возвращаются только активные.
func (v *VoucherRepository) List(ctx context.Context, activeOnly bool) ([]domain.Voucher, error) {
	rows, err := v.conn.Query(ctx,
		`SELECT `+voucherColumns+` FROM vouchers WHERE ($1 = FALSE OR active) ORDER BY price, created_at`,
		activeOnly,
	)
	if err != nil {
		return nil, convertErr(err, "listing vouchers")
	}
	vouchers, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Voucher, error) {
		voucher, scanErr := scanVoucher(r)
		if scanErr != nil {
			return domain.Voucher{}, scanErr
		}
		return *voucher, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing vouchers")
	}
	return vouchers, nil
}

func (v *VoucherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := v.conn.QueryRow(ctx, `SELECT count(*) FROM vouchers`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting vouchers")
	}
	return count, nil
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var voucher domain.Voucher
	if err := row.Scan(
		&voucher.ID,
		&voucher.CreatedAt,
		&voucher.UpdatedAt,
		&voucher.Name,
		&voucher.Hours,
		&voucher.Price,
		&voucher.Active,
		&voucher.Description,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &voucher, nil
}
