package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/pix"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/client"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PaymentService struct {
	orderRepo   OrderRepository
	paymentRepo PaymentRepository
	userRepo    UserRepository
	gateway     PaymentGateway
	companies   *CompanyService
	reconciler  *Reconciler
	l           *logrus.Entry
}

func NewPaymentService(
	u uow.UOW,
	gateway PaymentGateway,
	companies *CompanyService,
	reconciler *Reconciler,
	l *logrus.Logger,
) (*PaymentService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr //nolint:wrapcheck
	}
	paymentRepo, paymentRepoErr :=
		uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if paymentRepoErr != nil {
		return nil, paymentRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		companies:   companies,
		reconciler:  reconciler,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "payment",
		}),
	}, nil
}

type ProcessPaymentArgs struct {
	Actor         Actor
	OrderID       uuid.UUID
	PaymentMethod domain.PaymentMethodType

	// Поля карточного платежа.
	CardToken            string
	Installments         int
	CardPaymentMethodID  string
	PayerEmail           string
	CardHolderName       string
	IdentificationType   string
	IdentificationNumber string
}

type ProcessPaymentResult struct {
	Order   *domain.Order
	Payment *domain.Payment
}

// Process инициирует оплату заказа.
//
// Для PIX создает QR заказ в шлюзе, а при любой ошибке шлюза генерирует PIX код локально (FallbackMode).
// Для карт списывает средства через шлюз: одобренный платеж сразу переводит заказ в paid, отклоненный
// сохраняется как failed и возвращается *domain.PaymentDeclinedError, заказ при этом остается pending.
//
// На заказ хранится один платеж, повторная попытка перезаписывает неподтвержденный платеж.
func (s *PaymentService) Process(ctx context.Context, args ProcessPaymentArgs) (*ProcessPaymentResult, error) {
	order, orderErr := s.orderRepo.FindByID(ctx, args.OrderID)
	if orderErr != nil {
		return nil, fmt.Errorf("process payment: %w", orderErr)
	}
	if !args.Actor.CanAccess(order) {
		return nil, domain.ErrOwnerConflict
	}
	if order.Status == domain.OrderStatusPaid {
		return nil, domain.ErrOrderAlreadyPaid
	}
	if order.Status.IsTerminal() {
		return nil, domain.ErrOrderNotPending
	}
	if !args.PaymentMethod.Valid() {
		return nil, domain.ErrInvalidPaymentMethod
	}
	if args.PaymentMethod != order.PaymentMethod {
		return nil, domain.ErrPaymentMethodChanged
	}

	if args.PaymentMethod == domain.PaymentMethodPix {
		return s.processPix(ctx, order)
	}
	return s.processCard(ctx, order, args)
}

func (s *PaymentService) processPix(ctx context.Context, order *domain.Order) (*ProcessPaymentResult, error) {
	upsert := repoargs.UpsertPayment{
		OrderID:       order.ID,
		PaymentMethod: domain.PaymentMethodPix,
		Status:        domain.PaymentStatusPending,
		Amount:        order.TotalAmount,
	}

	charge, chargeErr := s.gateway.CreateQRCharge(ctx, client.QRChargeArgs{
		Amount:            order.TotalAmount,
		Description:       orderDescription(order),
		ExternalReference: order.ID.String(),
	})
	if chargeErr == nil {
		upsert.PixQRCode = &charge.QRData
		upsert.GatewayOrderID = &charge.OrderID
	} else {
		s.l.WithError(chargeErr).WithField("orderID", order.ID).Warn("gateway qr charge failed, using local pix code")

		pixKey, company := s.companies.PixKey(ctx, order)
		payloadArgs := pix.PayloadArgs{
			Amount:         order.TotalAmount,
			PixKey:         pixKey,
			OrderReference: order.ID.String(),
		}
		if company != nil {
			payloadArgs.MerchantName = company.MerchantName
			payloadArgs.MerchantCity = company.MerchantCity
		}
		payload, buildErr := pix.BuildPayload(payloadArgs)
		if buildErr != nil {
			return nil, fmt.Errorf("process payment: %w", buildErr)
		}
		upsert.PixQRCode = &payload
		upsert.PixKey = &pixKey
		upsert.FallbackMode = true
	}

	payment, upsertErr := s.upsert(ctx, upsert)
	if upsertErr != nil {
		return nil, upsertErr
	}
	return &ProcessPaymentResult{Order: order, Payment: payment}, nil
}

func (s *PaymentService) processCard(
	ctx context.Context,
	order *domain.Order,
	args ProcessPaymentArgs,
) (*ProcessPaymentResult, error) {
	if args.CardToken == "" {
		return nil, domain.ErrCardTokenRequired
	}

	payer, payerErr := s.payer(ctx, order, args)
	if payerErr != nil {
		return nil, payerErr
	}

	installments := args.Installments
	if installments < 1 {
		installments = 1
	}
	charge, chargeErr := s.gateway.CreateCardCharge(ctx, client.CardChargeArgs{
		Amount:            order.TotalAmount,
		Description:       orderDescription(order),
		ExternalReference: order.ID.String(),
		Token:             args.CardToken,
		Installments:      installments,
		PaymentMethodID:   args.CardPaymentMethodID,
		Payer:             payer,
	})
	if chargeErr != nil {
		s.l.WithError(chargeErr).WithField("orderID", order.ID).Error("gateway card charge failed")
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, chargeErr.Error())
	}
	if charge.Installments > 0 {
		installments = charge.Installments
	}

	upsert := repoargs.UpsertPayment{
		OrderID:          order.ID,
		PaymentMethod:    order.PaymentMethod,
		Status:           domain.PaymentStatusPending,
		Amount:           order.TotalAmount,
		CardLastDigits:   nonEmpty(charge.LastFourDigits),
		GatewayPaymentID: nonEmpty(charge.PaymentID),
		StatusDetail:     nonEmpty(charge.StatusDetail),
		Installments:     &installments,
	}
	if charge.Status == client.CardRejected {
		upsert.Status = domain.PaymentStatusFailed
	}

	payment, upsertErr := s.upsert(ctx, upsert)
	if upsertErr != nil {
		return nil, upsertErr
	}

	switch charge.Status {
	case client.CardRejected:
		return nil, domain.NewPaymentDeclinedError(charge.StatusDetail)
	case client.CardApproved:
		res, trErr := s.reconciler.Transition(ctx, TransitionArgs{
			OrderID:          order.ID,
			Target:           domain.OrderStatusPaid,
			GatewayPaymentID: nonEmpty(charge.PaymentID),
			GatewayStatus:    nonEmpty(charge.GatewayStatus),
		})
		if trErr != nil {
			return nil, fmt.Errorf("process payment: %w", trErr)
		}
		if res.Payment != nil {
			payment = res.Payment
		}
		return &ProcessPaymentResult{Order: res.Order, Payment: payment}, nil
	default:
		return &ProcessPaymentResult{Order: order, Payment: payment}, nil
	}
}

// payer собирает данные плательщика. Если email не передан, используется email владельца заказа.
func (s *PaymentService) payer(ctx context.Context, order *domain.Order, args ProcessPaymentArgs) (client.Payer, error) {
	payer := client.Payer{
		Email:                args.PayerEmail,
		IdentificationType:   args.IdentificationType,
		IdentificationNumber: args.IdentificationNumber,
	}
	payer.FirstName, payer.LastName = splitName(args.CardHolderName)

	if payer.Email == "" || payer.FirstName == "" {
		user, err := s.userRepo.FindUserByID(ctx, order.UserID)
		if err != nil {
			return payer, fmt.Errorf("process payment: %w", err)
		}
		if payer.Email == "" {
			payer.Email = user.Email
		}
		if payer.FirstName == "" {
			payer.FirstName, payer.LastName = splitName(user.Name)
		}
	}
	return payer, nil
}

func (s *PaymentService) upsert(ctx context.Context, args repoargs.UpsertPayment) (*domain.Payment, error) {
	payment, err := s.paymentRepo.Upsert(ctx, args)
	if err != nil {
		// Upsert не перезаписывает подтвержденный платеж.
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrOrderAlreadyPaid
		}
		return nil, fmt.Errorf("process payment: %w", err)
	}
	return payment, nil
}

func orderDescription(order *domain.Order) string {
	return fmt.Sprintf("%s - %s horas", order.VoucherName, order.VoucherHours.String())
}

func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}
