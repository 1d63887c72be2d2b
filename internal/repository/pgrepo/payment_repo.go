package pgrepo

import (
	"context"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, created_at, updated_at, order_id, payment_method, status, amount, pix_qrcode, pix_key,
	card_last_digits, gateway_order_id, gateway_payment_id, status_detail, installments, fallback_mode, confirmed_at`

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

// Upsert создает платеж заказа, а при повторной попытке перезаписывает существующую запись. Подтвержденный
// платеж не перезаписывается: в этом случае возвращается domain.ErrRecordNotFound.
func (p *PaymentRepository) Upsert(ctx context.Context, args repoargs.UpsertPayment) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`INSERT INTO payments (order_id, payment_method, status, amount, pix_qrcode, pix_key, card_last_digits,
			gateway_order_id, gateway_payment_id, status_detail, installments, fallback_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (order_id) DO UPDATE SET
			payment_method = EXCLUDED.payment_method,
			status = EXCLUDED.status,
			amount = EXCLUDED.amount,
			pix_qrcode = EXCLUDED.pix_qrcode,
			pix_key = EXCLUDED.pix_key,
			card_last_digits = EXCLUDED.card_last_digits,
			gateway_order_id = EXCLUDED.gateway_order_id,
			gateway_payment_id = EXCLUDED.gateway_payment_id,
			status_detail = EXCLUDED.status_detail,
			installments = EXCLUDED.installments,
			fallback_mode = EXCLUDED.fallback_mode,
			updated_at = now()
		WHERE payments.status <> 'confirmed'
		RETURNING `+paymentColumns,
		args.OrderID, args.PaymentMethod, args.Status, args.Amount, args.PixQRCode, args.PixKey,
		args.CardLastDigits, args.GatewayOrderID, args.GatewayPaymentID, args.StatusDetail, args.Installments,
		args.FallbackMode,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "upserting payment for order %s", args.OrderID)
	}
	return payment, nil
}

func (p *PaymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE order_id = $1`, orderID)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment for order %s", orderID)
	}
	return payment, nil
}

// Confirm подтверждает платеж заказа. Уже подтвержденный платеж не меняется (domain.ErrRecordNotFound).
func (p *PaymentRepository) Confirm(ctx context.Context, args repoargs.ConfirmPayment) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE payments SET
			status = 'confirmed',
			confirmed_at = now(),
			gateway_payment_id = COALESCE($2, gateway_payment_id),
			updated_at = now()
		WHERE order_id = $1 AND status <> 'confirmed'
		RETURNING `+paymentColumns,
		args.OrderID, args.GatewayPaymentID,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "confirming payment for order %s", args.OrderID)
	}
	return payment, nil
}

// Fail помечает неподтвержденный платеж заказа как failed.
func (p *PaymentRepository) Fail(ctx context.Context, args repoargs.FailPayment) (*domain.Payment, error) {
	row := p.conn.QueryRow(ctx,
		`UPDATE payments SET
			status = 'failed',
			status_detail = COALESCE($2, status_detail),
			updated_at = now()
		WHERE order_id = $1 AND status <> 'confirmed'
		RETURNING `+paymentColumns,
		args.OrderID, args.StatusDetail,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "failing payment for order %s", args.OrderID)
	}
	return payment, nil
}

// GetPendingGateway возвращает ожидающие PIX платежи, созданные через QR заказ шлюза (без fallback),
// начиная с самых старых.
func (p *PaymentRepository) GetPendingGateway(ctx context.Context, limit uint) ([]domain.Payment, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}
	rows, err := p.conn.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
		WHERE status = 'pending' AND payment_method = 'pix' AND gateway_order_id IS NOT NULL
			AND fallback_mode = FALSE AND created_at > now() - interval '1 day'
		ORDER BY updated_at
		LIMIT $1`,
		safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting pending gateway payments")
	}
	payments, collectErr := pgx.CollectRows(rows, func(r pgx.CollectableRow) (domain.Payment, error) {
		payment, scanErr := scanPayment(r)
		if scanErr != nil {
			return domain.Payment{}, scanErr
		}
		return *payment, nil
	})
	if collectErr != nil {
		return nil, convertErr(collectErr, "getting pending gateway payments")
	}
	return payments, nil
}

// Touch обновляет updated_at, чтобы платеж ушел в конец очереди опроса.
func (p *PaymentRepository) Touch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := p.conn.Exec(ctx, `UPDATE payments SET updated_at = now() WHERE id = ANY($1)`, ids); err != nil {
		return convertErr(err, "touching payments `%v`", ids)
	}
	return nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	if err := row.Scan(
		&payment.ID,
		&payment.CreatedAt,
		&payment.UpdatedAt,
		&payment.OrderID,
		&payment.PaymentMethod,
		&payment.Status,
		&payment.Amount,
		&payment.PixQRCode,
		&payment.PixKey,
		&payment.CardLastDigits,
		&payment.GatewayOrderID,
		&payment.GatewayPaymentID,
		&payment.StatusDetail,
		&payment.Installments,
		&payment.FallbackMode,
		&payment.ConfirmedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &payment, nil
}
