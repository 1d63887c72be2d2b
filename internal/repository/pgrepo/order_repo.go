package pgrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `o.id, o.created_at, o.updated_at, o.user_id, o.voucher_id, o.payment_method, o.status,
	o.total_amount, o.voucher_hours, o.voucher_name, o.company, o.company_slug, o.gateway_payment_id,
	o.gateway_status, o.paid_at`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func (o *OrderRepository) CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	company, marshalErr := marshalCompany(args.Company)
	if marshalErr != nil {
		return nil, convertErr(marshalErr, "creating order for user %s", args.UserID)
	}
	row := o.conn.QueryRow(ctx,
		`INSERT INTO orders AS o (user_id, voucher_id, payment_method, status, total_amount, voucher_hours,
			voucher_name, company, company_slug)
		VALUES ($1, $2, $3, 'pending', $4, $5, $6, $7, $8)
		RETURNING `+orderColumns,
		args.UserID, args.VoucherID, args.PaymentMethod, args.TotalAmount, args.VoucherHours, args.VoucherName,
		company, args.CompanySlug,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user %s", args.UserID)
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order %s", id)
	}
	return order, nil
}

// GetByUserID Возвращает список заказов по id юзера, отсортированный по дате создания по убыванию.
func (o *OrderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.user_id = $1 ORDER BY o.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting orders by userID `%s`", userID)
	}
	orders, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Order, error) {
		order, scanErr := scanOrder(r)
		if scanErr != nil {
			return domain.Order{}, scanErr
		}
		return *order, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting orders by userID `%s`", userID)
	}
	return orders, nil
}

// TransitionFromPending переводит заказ в args.Status только если текущий статус pending. Если заказ уже
// не pending (или не существует), возвращает domain.ErrRecordNotFound. paid_at выставляется только при
// переходе в paid.
func (o *OrderRepository) TransitionFromPending(
	ctx context.Context,
	args repoargs.TransitionOrder,
) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`UPDATE orders AS o SET
			status = $2::order_status_type,
			paid_at = CASE WHEN $2::order_status_type = 'paid' THEN now() ELSE o.paid_at END,
			gateway_payment_id = COALESCE($3, o.gateway_payment_id),
			gateway_status = COALESCE($4, o.gateway_status),
			updated_at = now()
		WHERE o.id = $1 AND o.status = 'pending'
		RETURNING `+orderColumns,
		args.ID, args.Status, args.GatewayPaymentID, args.GatewayStatus,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "transition order %s to %s", args.ID, args.Status)
	}
	return order, nil
}

func (o *OrderRepository) UserStats(ctx context.Context, userID uuid.UUID) (*repoargs.UserOrderStats, error) {
	var stats repoargs.UserOrderStats
	if err := o.conn.QueryRow(ctx,
		`SELECT count(*),
			count(*) FILTER (WHERE status = 'paid'),
			COALESCE(sum(total_amount) FILTER (WHERE status = 'paid'), 0)
		FROM orders WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalOrders, &stats.PaidOrders, &stats.TotalSpent); err != nil {
		return nil, convertErr(err, "user order stats %s", userID)
	}
	return &stats, nil
}

func (o *OrderRepository) Stats(ctx context.Context) (*repoargs.OrderStats, error) {
	var stats repoargs.OrderStats
	if err := o.conn.QueryRow(ctx,
		`SELECT count(*),
			count(*) FILTER (WHERE status = 'paid'),
			count(*) FILTER (WHERE status = 'pending'),
			COALESCE(sum(total_amount) FILTER (WHERE status = 'paid'), 0)
		FROM orders`,
	).Scan(&stats.TotalOrders, &stats.PaidOrders, &stats.PendingOrders, &stats.TotalRevenue); err != nil {
		return nil, convertErr(err, "order stats")
	}
	return &stats, nil
}

// ListWithUsers возвращает заказы всех юзеров вместе с именем и email покупателя.
func (o *OrderRepository) ListWithUsers(ctx context.Context, page repoargs.Page) ([]domain.OrderWithUser, error) {
	limit, offset, pageErr := pageArgs(page)
	if pageErr != nil {
		return nil, convertErr(pageErr, "listing orders")
	}
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+`, COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM orders o LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, convertErr(err, "listing orders")
	}
	orders, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.OrderWithUser, error) {
		var res domain.OrderWithUser
		order, scanErr := scanOrderWith(r, &res.UserName, &res.UserEmail)
		if scanErr != nil {
			return res, scanErr
		}
		res.Order = *order
		return res, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "listing orders")
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	return scanOrderWith(row)
}

func scanOrderWith(row pgx.Row, extra ...any) (*domain.Order, error) {
	var order domain.Order
	var company []byte
	dest := []any{
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserID,
		&order.VoucherID,
		&order.PaymentMethod,
		&order.Status,
		&order.TotalAmount,
		&order.VoucherHours,
		&order.VoucherName,
		&company,
		&order.CompanySlug,
		&order.GatewayPaymentID,
		&order.GatewayStatus,
		&order.PaidAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if len(company) > 0 {
		var snapshot domain.CompanySnapshot
		if err := json.Unmarshal(company, &snapshot); err != nil {
			return nil, fmt.Errorf("decode company snapshot: %w", err)
		}
		order.Company = &snapshot
	}
	return &order, nil
}

func marshalCompany(snapshot *domain.CompanySnapshot) ([]byte, error) {
	if snapshot == nil {
		return nil, nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode company snapshot: %w", err)
	}
	return data, nil
}
