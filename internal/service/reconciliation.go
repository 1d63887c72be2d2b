package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/client"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GatewayFailurePolicy определяет поведение явного подтверждения, когда шлюз недоступен.
type GatewayFailurePolicy int

const (
	// FailOpen сетевая ошибка при перепроверке статуса не блокирует подтверждение.
	FailOpen GatewayFailurePolicy = iota
	// FailClosed сетевая ошибка при перепроверке возвращает domain.ErrGatewayUnavailable.
	FailClosed
)

func (p GatewayFailurePolicy) String() string {
	if p == FailClosed {
		return "fail-closed"
	}
	return "fail-open"
}

// Actor пользователь, от имени которого выполняется операция.
type Actor struct {
	ID   uuid.UUID
	Role domain.RoleType
}

// CanAccess true, если заказ принадлежит пользователю или пользователь админ.
func (a Actor) CanAccess(order *domain.Order) bool {
	return a.Role == domain.RoleAdmin || order.UserID == a.ID
}

type TransitionArgs struct {
	OrderID          uuid.UUID
	Target           domain.OrderStatusType
	GatewayPaymentID *string
	GatewayStatus    *string
}

type TransitionResult struct {
	Order   *domain.Order
	Payment *domain.Payment
	// Applied true, если переход выполнен именно этим вызовом.
	Applied bool
	// AlreadyPaid true, если заказ был оплачен ранее. Повторное подтверждение не считается ошибкой.
	AlreadyPaid bool
}

type PaymentStatusResult struct {
	Order   *domain.Order
	Payment *domain.Payment
}

// GatewayStatusUpdate результат опроса шлюза по одному платежу.
type GatewayStatusUpdate struct {
	Payment domain.Payment
	Result  *client.StatusResult
	Error   error
}

// Reconciler единственный, кто переводит заказы в финальные статусы и начисляет часы на баланс.
type Reconciler struct {
	uow         uow.UOW
	orderRepo   OrderRepository
	paymentRepo PaymentRepository
	gateway     PaymentGateway
	publisher   EventPublisher
	policy      GatewayFailurePolicy
	l           *logrus.Entry
}

func NewReconciler(u uow.UOW, gateway PaymentGateway, l *logrus.Logger) (*Reconciler, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr //nolint:wrapcheck
	}
	paymentRepo, paymentRepoErr :=
		uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if paymentRepoErr != nil {
		return nil, paymentRepoErr //nolint:wrapcheck
	}
	return &Reconciler{
		uow:         u,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		policy:      FailOpen,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "reconciler",
		}),
	}, nil
}

// SetFailurePolicy задает политику поведения при недоступности шлюза.
func (r *Reconciler) SetFailurePolicy(policy GatewayFailurePolicy) *Reconciler {
	r.policy = policy
	return r
}

// SetPublisher задает публикатора событий об оплате. Без него события не публикуются.
func (r *Reconciler) SetPublisher(publisher EventPublisher) *Reconciler {
	r.publisher = publisher
	return r
}

// Transition переводит заказ из pending в args.Target.
//
// Алгоритм работы (все в одной транзакции):
//  1. Читает заказ. Если заказ уже paid, выходит без изменений с AlreadyPaid. Другие финальные статусы
//     тоже не меняются.
//  2. Условно обновляет статус (только если текущий статус pending). Если обновление не затронуло строк,
//     заказ успел перевести конкурентный вызов, и этот вызов ничего не делает.
//  3. Для paid увеличивает баланс часов юзера на VoucherHours и подтверждает платеж. Для остальных финальных
//     статусов помечает платеж как failed.
//
// После фиксации транзакции публикует событие об оплате, если переход в paid выполнен этим вызовом.
func (r *Reconciler) Transition(ctx context.Context, args TransitionArgs) (*TransitionResult, error) {
	if !args.Target.IsTerminal() {
		order, err := r.orderRepo.FindByID(ctx, args.OrderID)
		if err != nil {
			return nil, fmt.Errorf("transition order %s: %w", args.OrderID, err)
		}
		return &TransitionResult{Order: order, AlreadyPaid: order.Status == domain.OrderStatusPaid}, nil
	}

	var res TransitionResult
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		res = TransitionResult{}
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		order, findErr := orderRepo.FindByID(c, args.OrderID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		if order.Status.IsTerminal() {
			res.Order = order
			res.AlreadyPaid = order.Status == domain.OrderStatusPaid
			return nil
		}

		updated, updErr := orderRepo.TransitionFromPending(c, repoargs.TransitionOrder{
			ID:               args.OrderID,
			Status:           args.Target,
			GatewayPaymentID: args.GatewayPaymentID,
			GatewayStatus:    args.GatewayStatus,
		})
		if updErr != nil {
			if !errors.Is(updErr, domain.ErrRecordNotFound) {
				return updErr //nolint:wrapcheck
			}
			// Конкурентный вызов перевел заказ между чтением и обновлением.
			current, reFindErr := orderRepo.FindByID(c, args.OrderID)
			if reFindErr != nil {
				return reFindErr //nolint:wrapcheck
			}
			res.Order = current
			res.AlreadyPaid = current.Status == domain.OrderStatusPaid
			return nil
		}
		res.Order = updated
		res.Applied = true

		payment, effectsErr := r.applyEffects(c, tx, updated, args)
		if effectsErr != nil {
			return effectsErr
		}
		res.Payment = payment
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("transition order %s to %s: %w", args.OrderID, args.Target, txErr)
	}

	l := r.l.WithFields(logrus.Fields{
		"orderID": args.OrderID,
		"target":  args.Target,
		"status":  res.Order.Status,
	})
	if res.Applied {
		l.Info("order transitioned")
		if args.Target == domain.OrderStatusPaid {
			r.publishPaid(ctx, res.Order)
		}
	} else {
		l.Debug("order transition skipped")
	}
	return &res, nil
}

// applyEffects применяет побочные эффекты перехода внутри транзакции tx.
func (r *Reconciler) applyEffects(
	ctx context.Context,
	tx uow.TX,
	order *domain.Order,
	args TransitionArgs,
) (*domain.Payment, error) {
	paymentRepo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	var payment *domain.Payment
	var paymentErr error

	if order.Status == domain.OrderStatusPaid {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return nil, userRepoErr //nolint:wrapcheck
		}
		if _, incErr := userRepo.IncrementHours(ctx, order.UserID, order.VoucherHours); incErr != nil {
			return nil, incErr //nolint:wrapcheck
		}
		payment, paymentErr = paymentRepo.Confirm(ctx, repoargs.ConfirmPayment{
			OrderID:          order.ID,
			GatewayPaymentID: args.GatewayPaymentID,
		})
	} else {
		payment, paymentErr = paymentRepo.Fail(ctx, repoargs.FailPayment{
			OrderID:      order.ID,
			StatusDetail: args.GatewayStatus,
		})
	}

	// Платежа может не быть (например, заказ закрыт до попытки оплаты), это не ошибка перехода.
	if paymentErr != nil && !errors.Is(paymentErr, domain.ErrRecordNotFound) {
		return nil, paymentErr
	}
	return payment, nil
}

// HandleNotification обрабатывает уведомление шлюза о платеже paymentID: запрашивает детали платежа и переводит
// заказ, указанный в external_reference, в соответствующий статус. Статус pending ничего не меняет.
func (r *Reconciler) HandleNotification(ctx context.Context, paymentID string) (*TransitionResult, error) {
	p, err := r.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("handle notification for payment %s: %w", paymentID, err)
	}

	target := client.MapOrderStatus(p.Status)
	l := r.l.WithFields(logrus.Fields{
		"gatewayPaymentID":  paymentID,
		"gatewayStatus":     p.Status,
		"externalReference": p.ExternalReference,
	})
	if target == domain.OrderStatusPending {
		l.Debug("notification with pending status, nothing to do")
		return &TransitionResult{}, nil
	}

	orderID, parseErr := uuid.Parse(p.ExternalReference)
	if parseErr != nil {
		l.Warn("notification for unknown external reference")
		return nil, fmt.Errorf("parse external reference `%s`: %w", p.ExternalReference, domain.ErrRecordNotFound)
	}

	return r.Transition(ctx, TransitionArgs{
		OrderID:          orderID,
		Target:           target,
		GatewayPaymentID: &p.ID,
		GatewayStatus:    &p.Status,
	})
}

// Confirm явное подтверждение оплаты заказа пользователем.
//
// Оплаченный заказ возвращается без изменений (AlreadyPaid). Отклоненный платеж не подтверждается. Если платеж
// создан через шлюз, статус перепроверяется: отличный от подтвержденного дает domain.ErrPaymentNotConfirmed, а
// сетевая ошибка обрабатывается согласно GatewayFailurePolicy. PIX без участия шлюза подтверждает только админ.
func (r *Reconciler) Confirm(ctx context.Context, actor Actor, orderID uuid.UUID) (*TransitionResult, error) {
	order, orderErr := r.orderRepo.FindByID(ctx, orderID)
	if orderErr != nil {
		return nil, fmt.Errorf("confirm order %s: %w", orderID, orderErr)
	}
	if !actor.CanAccess(order) {
		return nil, domain.ErrOwnerConflict
	}
	if order.Status == domain.OrderStatusPaid {
		return &TransitionResult{Order: order, AlreadyPaid: true}, nil
	}
	if order.Status.IsTerminal() {
		return nil, domain.ErrOrderNotPending
	}

	payment, paymentErr := r.paymentRepo.FindByOrderID(ctx, orderID)
	if paymentErr != nil {
		if errors.Is(paymentErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("confirm order %s: %w", orderID, paymentErr)
	}

	if payment.Status == domain.PaymentStatusFailed {
		return nil, domain.ErrPaymentNotConfirmed
	}

	args := TransitionArgs{OrderID: orderID, Target: domain.OrderStatusPaid}
	if verifyErr := r.verifyWithGateway(ctx, actor, order, payment, &args); verifyErr != nil {
		return nil, verifyErr
	}
	return r.Transition(ctx, args)
}

// verifyWithGateway перепроверяет статус платежа в шлюзе перед явным подтверждением.
func (r *Reconciler) verifyWithGateway(
	ctx context.Context,
	actor Actor,
	order *domain.Order,
	payment *domain.Payment,
	args *TransitionArgs,
) error {
	l := r.l.WithFields(logrus.Fields{"orderID": order.ID, "policy": r.policy.String()})

	switch {
	case payment.IsGatewayBacked():
		status, err := r.gateway.CheckStatus(ctx, order.ID.String())
		if err != nil {
			return r.onGatewayFailure(l, err)
		}
		if status.Status != client.CheckConfirmed {
			return domain.ErrPaymentNotConfirmed
		}
		if status.PaymentID != "" {
			args.GatewayPaymentID = &status.PaymentID
		}
		args.GatewayStatus = &status.GatewayStatus
	case payment.PaymentMethod.IsCard():
		// карточный платеж без id в шлюзе проверить нечем.
		if payment.GatewayPaymentID == nil || *payment.GatewayPaymentID == "" {
			return domain.ErrPaymentNotConfirmed
		}
		p, err := r.gateway.GetPayment(ctx, *payment.GatewayPaymentID)
		if err != nil {
			return r.onGatewayFailure(l, err)
		}
		if client.MapOrderStatus(p.Status) != domain.OrderStatusPaid {
			return domain.ErrPaymentNotConfirmed
		}
		args.GatewayPaymentID = &p.ID
		args.GatewayStatus = &p.Status
	default:
		if actor.Role != domain.RoleAdmin {
			l.WithField("userID", actor.ID).Warn("unverified payment confirmation requires admin")
			return domain.ErrPaymentNotConfirmed
		}
		l.WithField("adminID", actor.ID).Warn("confirming payment without gateway verification")
	}
	return nil
}

func (r *Reconciler) onGatewayFailure(l *logrus.Entry, err error) error {
	if r.policy == FailClosed {
		l.WithError(err).Error("gateway unavailable, refusing confirmation")
		return fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, err.Error())
	}
	l.WithError(err).Warn("gateway unavailable, confirming anyway")
	return nil
}

// PaymentStatus возвращает состояние заказа и платежа. Ожидающий PIX платеж, созданный через шлюз, перед ответом
// перепроверяется и, если шлюз подтвердил оплату, заказ переводится в paid. Ошибки шлюза считаются pending.
func (r *Reconciler) PaymentStatus(ctx context.Context, actor Actor, orderID uuid.UUID) (*PaymentStatusResult, error) {
	order, orderErr := r.orderRepo.FindByID(ctx, orderID)
	if orderErr != nil {
		return nil, fmt.Errorf("payment status %s: %w", orderID, orderErr)
	}
	if !actor.CanAccess(order) {
		return nil, domain.ErrOwnerConflict
	}

	payment, paymentErr := r.paymentRepo.FindByOrderID(ctx, orderID)
	if paymentErr != nil {
		if errors.Is(paymentErr, domain.ErrRecordNotFound) {
			return &PaymentStatusResult{Order: order}, nil
		}
		return nil, fmt.Errorf("payment status %s: %w", orderID, paymentErr)
	}

	if !canAutoConfirm(order, payment) {
		return &PaymentStatusResult{Order: order, Payment: payment}, nil
	}

	status, checkErr := r.gateway.CheckStatus(ctx, order.ID.String())
	if checkErr != nil {
		r.l.WithError(checkErr).WithField("orderID", orderID).Debug("status check failed, keeping pending")
		return &PaymentStatusResult{Order: order, Payment: payment}, nil
	}
	if status.Status != client.CheckConfirmed {
		return &PaymentStatusResult{Order: order, Payment: payment}, nil
	}

	res, trErr := r.Transition(ctx, TransitionArgs{
		OrderID:          orderID,
		Target:           domain.OrderStatusPaid,
		GatewayPaymentID: nonEmpty(status.PaymentID),
		GatewayStatus:    &status.GatewayStatus,
	})
	if trErr != nil {
		return nil, trErr
	}

	refreshed, refreshErr := r.paymentRepo.FindByOrderID(ctx, orderID)
	if refreshErr != nil {
		return nil, fmt.Errorf("payment status %s: %w", orderID, refreshErr)
	}
	return &PaymentStatusResult{Order: res.Order, Payment: refreshed}, nil
}

// PendingGatewayPayments возвращает ожидающие PIX платежи, созданные через шлюз, для фонового опроса.
func (r *Reconciler) PendingGatewayPayments(ctx context.Context, limit uint) ([]domain.Payment, error) {
	payments, err := r.paymentRepo.GetPendingGateway(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}

// ApplyGatewayStatuses применяет результаты фонового опроса шлюза. Платежи без финального статуса (или с ошибкой
// опроса) отправляются в конец очереди. Возвращает последнюю ошибку перехода.
func (r *Reconciler) ApplyGatewayStatuses(ctx context.Context, updates []GatewayStatusUpdate) error {
	var lastErr error
	var untouched = make([]uuid.UUID, 0, len(updates))

	for _, update := range updates {
		if update.Error != nil || update.Result == nil {
			untouched = append(untouched, update.Payment.ID)
			continue
		}
		target := client.MapOrderStatus(update.Result.GatewayStatus)
		if target == domain.OrderStatusPending {
			untouched = append(untouched, update.Payment.ID)
			continue
		}
		if _, err := r.Transition(ctx, TransitionArgs{
			OrderID:          update.Payment.OrderID,
			Target:           target,
			GatewayPaymentID: nonEmpty(update.Result.PaymentID),
			GatewayStatus:    &update.Result.GatewayStatus,
		}); err != nil {
			lastErr = err
		}
	}

	if err := r.paymentRepo.Touch(ctx, untouched); err != nil {
		lastErr = err
	}
	return lastErr
}

func (r *Reconciler) publishPaid(ctx context.Context, order *domain.Order) {
	if r.publisher == nil || order.PaidAt == nil {
		return
	}
	event := domain.OrderPaidEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Hours:   order.VoucherHours,
		Amount:  order.TotalAmount,
		PaidAt:  *order.PaidAt,
	}
	if err := r.publisher.PublishOrderPaid(ctx, event); err != nil {
		r.l.WithError(err).WithField("orderID", order.ID).Error("publish order paid event")
	}
}

func canAutoConfirm(order *domain.Order, payment *domain.Payment) bool {
	return order.Status == domain.OrderStatusPending &&
		payment.Status == domain.PaymentStatusPending &&
		payment.PaymentMethod == domain.PaymentMethodPix &&
		payment.IsGatewayBacked()
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
