package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/pix"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/service/mocks"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/client"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	uowmocks "github.com/fsdevblog/cit-vouchers/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockOrderRepo   *mocks.MockOrderRepository
	mockPaymentRepo *mocks.MockPaymentRepository
	mockUserRepo    *mocks.MockUserRepository
	mockCompanyRepo *mocks.MockCompanyRepository
	mockGateway     *mocks.MockPaymentGateway
	paymentService  *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockCompanyRepo = mocks.NewMockCompanyRepository(s.mockCtrl)
	s.mockGateway = mocks.NewMockPaymentGateway(s.mockCtrl)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.OrderRepoName:   s.mockOrderRepo,
		repoargs.PaymentRepoName: s.mockPaymentRepo,
		repoargs.UserRepoName:    s.mockUserRepo,
		repoargs.CompanyRepoName: s.mockCompanyRepo,
	}
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	logger := logrus.New()

	companies, err := NewCompanyService(s.mockUOW)
	s.Require().NoError(err)
	reconciler, err := NewReconciler(s.mockUOW, s.mockGateway, logger)
	s.Require().NoError(err)
	paymentService, err := NewPaymentService(s.mockUOW, s.mockGateway, companies, reconciler, logger)
	s.Require().NoError(err)
	s.paymentService = paymentService
}

func (s *PaymentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PaymentServiceTestSuite) TestProcess_Validation() {
	order := newPendingOrder(domain.PaymentMethodPix)
	owner := Actor{ID: order.UserID, Role: domain.RoleClient}
	paid := paidCopy(order)

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil).AnyTimes()
	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), paid.ID).Return(paid, nil).AnyTimes()

	cases := []struct {
		name    string
		args    ProcessPaymentArgs
		wantErr error
	}{
		{
			name:    "not owner",
			args:    ProcessPaymentArgs{Actor: Actor{ID: uuid.New()}, OrderID: order.ID, PaymentMethod: "pix"},
			wantErr: domain.ErrOwnerConflict,
		},
		{
			name:    "already paid",
			args:    ProcessPaymentArgs{Actor: owner, OrderID: paid.ID, PaymentMethod: "pix"},
			wantErr: domain.ErrOrderAlreadyPaid,
		},
		{
			name:    "invalid method",
			args:    ProcessPaymentArgs{Actor: owner, OrderID: order.ID, PaymentMethod: "boleto"},
			wantErr: domain.ErrInvalidPaymentMethod,
		},
		{
			name:    "method changed",
			args:    ProcessPaymentArgs{Actor: owner, OrderID: order.ID, PaymentMethod: "credit"},
			wantErr: domain.ErrPaymentMethodChanged,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.paymentService.Process(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *PaymentServiceTestSuite) TestProcess_PixGateway() {
	order := newPendingOrder(domain.PaymentMethodPix)

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
	s.mockGateway.EXPECT().
		CreateQRCharge(gomock.Any(), client.QRChargeArgs{
			Amount:            order.TotalAmount,
			Description:       "3 Horas - 3 horas",
			ExternalReference: order.ID.String(),
		}).
		Return(&client.QRCharge{OrderID: "ORD-1", QRData: "000201qr"}, nil)
	s.mockPaymentRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpsertPayment) (*domain.Payment, error) {
			s.False(args.FallbackMode)
			s.Equal("ORD-1", *args.GatewayOrderID)
			s.Equal("000201qr", *args.PixQRCode)
			s.Nil(args.PixKey)
			s.Equal(domain.PaymentStatusPending, args.Status)
			return &domain.Payment{
				OrderID:        args.OrderID,
				Status:         args.Status,
				PixQRCode:      args.PixQRCode,
				GatewayOrderID: args.GatewayOrderID,
			}, nil
		})

	res, err := s.paymentService.Process(s.T().Context(), ProcessPaymentArgs{
		Actor:         Actor{ID: order.UserID},
		OrderID:       order.ID,
		PaymentMethod: domain.PaymentMethodPix,
	})
	s.Require().NoError(err)
	s.True(res.Payment.IsGatewayBacked())
	s.Equal(domain.OrderStatusPending, res.Order.Status)
}

// TestProcess_PixFallback при ошибке шлюза PIX код генерируется локально с ключом компании.
func (s *PaymentServiceTestSuite) TestProcess_PixFallback() {
	cases := []struct {
		name       string
		company    *domain.Company
		companyErr error
		wantKey    string
	}{
		{
			name:    "company key",
			company: &domain.Company{ID: uuid.New(), Name: "CIT", PixKey: "pix@cit.example", MerchantCity: "RECIFE"},
			wantKey: "pix@cit.example",
		},
		{
			name:       "no company",
			companyErr: domain.ErrRecordNotFound,
			wantKey:    DefaultPixKey,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			order := newPendingOrder(domain.PaymentMethodPix)

			s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
			s.mockGateway.EXPECT().CreateQRCharge(gomock.Any(), gomock.Any()).Return(nil, client.ErrTransport)
			s.mockCompanyRepo.EXPECT().FindDefault(gomock.Any()).Return(t.company, t.companyErr)
			s.mockPaymentRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, args repoargs.UpsertPayment) (*domain.Payment, error) {
					s.True(args.FallbackMode)
					s.Nil(args.GatewayOrderID)
					s.Equal(t.wantKey, *args.PixKey)
					s.True(pix.Validate(*args.PixQRCode))
					s.Contains(*args.PixQRCode, t.wantKey)
					s.Contains(*args.PixQRCode, "540510.00")
					return &domain.Payment{
						OrderID:      args.OrderID,
						Status:       args.Status,
						PixQRCode:    args.PixQRCode,
						PixKey:       args.PixKey,
						FallbackMode: true,
					}, nil
				})

			res, err := s.paymentService.Process(s.T().Context(), ProcessPaymentArgs{
				Actor:         Actor{ID: order.UserID},
				OrderID:       order.ID,
				PaymentMethod: domain.PaymentMethodPix,
			})
			s.Require().NoError(err)
			s.False(res.Payment.IsGatewayBacked())
		})
	}
}

// TestProcess_PixConfirmedPayment подтвержденный платеж не перезаписывается повторной попыткой.
func (s *PaymentServiceTestSuite) TestProcess_PixConfirmedPayment() {
	order := newPendingOrder(domain.PaymentMethodPix)

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
	s.mockGateway.EXPECT().CreateQRCharge(gomock.Any(), gomock.Any()).
		Return(&client.QRCharge{OrderID: "ORD-1", QRData: "qr"}, nil)
	s.mockPaymentRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil, domain.ErrRecordNotFound)

	_, err := s.paymentService.Process(s.T().Context(), ProcessPaymentArgs{
		Actor:         Actor{ID: order.UserID},
		OrderID:       order.ID,
		PaymentMethod: domain.PaymentMethodPix,
	})
	s.Require().ErrorIs(err, domain.ErrOrderAlreadyPaid)
}

func (s *PaymentServiceTestSuite) cardArgs(order *domain.Order) ProcessPaymentArgs {
	return ProcessPaymentArgs{
		Actor:               Actor{ID: order.UserID},
		OrderID:             order.ID,
		PaymentMethod:       order.PaymentMethod,
		CardToken:           "tok_" + gofakeit.LetterN(10),
		Installments:        1,
		CardPaymentMethodID: "visa",
		PayerEmail:          gofakeit.Email(),
		CardHolderName:      "Maria da Silva",
	}
}

func (s *PaymentServiceTestSuite) TestProcess_CardTokenRequired() {
	order := newPendingOrder(domain.PaymentMethodCredit)
	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)

	args := s.cardArgs(order)
	args.CardToken = ""
	_, err := s.paymentService.Process(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrCardTokenRequired)
}

func (s *PaymentServiceTestSuite) TestProcess_CardDeclined() {
	order := newPendingOrder(domain.PaymentMethodCredit)
	args := s.cardArgs(order)

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
	s.mockGateway.EXPECT().CreateCardCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, charge client.CardChargeArgs) (*client.CardCharge, error) {
			s.Equal(args.CardToken, charge.Token)
			s.Equal("Maria", charge.Payer.FirstName)
			s.Equal("da Silva", charge.Payer.LastName)
			s.Equal(order.ID.String(), charge.ExternalReference)
			return &client.CardCharge{
				PaymentID:     "900",
				Status:        client.CardRejected,
				GatewayStatus: "rejected",
				StatusDetail:  "cc_rejected_insufficient_amount",
			}, nil
		})
	s.mockPaymentRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upsert repoargs.UpsertPayment) (*domain.Payment, error) {
			s.Equal(domain.PaymentStatusFailed, upsert.Status)
			s.Equal("cc_rejected_insufficient_amount", *upsert.StatusDetail)
			return &domain.Payment{OrderID: order.ID, Status: upsert.Status}, nil
		})
	s.mockOrderRepo.EXPECT().TransitionFromPending(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.paymentService.Process(s.T().Context(), args)

	var declined *domain.PaymentDeclinedError
	s.Require().ErrorAs(err, &declined)
	s.Equal("cc_rejected_insufficient_amount", declined.Detail)
}

func (s *PaymentServiceTestSuite) TestProcess_CardApproved() {
	order := newPendingOrder(domain.PaymentMethodDebit)
	args := s.cardArgs(order)
	args.PayerEmail = ""
	args.CardHolderName = ""
	user := &domain.User{ID: order.UserID, Name: "João Souza", Email: "joao@example.com"}

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil).Times(2)
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), order.UserID).Return(user, nil)
	s.mockGateway.EXPECT().CreateCardCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, charge client.CardChargeArgs) (*client.CardCharge, error) {
			s.Equal(user.Email, charge.Payer.Email)
			s.Equal("João", charge.Payer.FirstName)
			return &client.CardCharge{
				PaymentID:      "901",
				Status:         client.CardApproved,
				GatewayStatus:  "approved",
				StatusDetail:   "accredited",
				Installments:   1,
				LastFourDigits: "4242",
			}, nil
		})
	s.mockPaymentRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upsert repoargs.UpsertPayment) (*domain.Payment, error) {
			s.Equal(domain.PaymentStatusPending, upsert.Status)
			s.Equal("4242", *upsert.CardLastDigits)
			return &domain.Payment{OrderID: order.ID, Status: upsert.Status}, nil
		})
	s.mockOrderRepo.EXPECT().TransitionFromPending(gomock.Any(), gomock.Any()).Return(paidCopy(order), nil)
	s.mockUserRepo.EXPECT().IncrementHours(gomock.Any(), order.UserID, order.VoucherHours).Return(user, nil)
	s.mockPaymentRepo.EXPECT().Confirm(gomock.Any(), gomock.Any()).
		Return(&domain.Payment{OrderID: order.ID, Status: domain.PaymentStatusConfirmed}, nil)

	res, err := s.paymentService.Process(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, res.Order.Status)
	s.Equal(domain.PaymentStatusConfirmed, res.Payment.Status)
}

func (s *PaymentServiceTestSuite) TestProcess_CardGatewayError() {
	order := newPendingOrder(domain.PaymentMethodCredit)

	s.mockOrderRepo.EXPECT().FindByID(gomock.Any(), order.ID).Return(order, nil)
	s.mockGateway.EXPECT().CreateCardCharge(gomock.Any(), gomock.Any()).
		Return(nil, client.NewStatusCodeError(500, "boom"))
	s.mockPaymentRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.paymentService.Process(s.T().Context(), s.cardArgs(order))
	s.Require().ErrorIs(err, domain.ErrGatewayUnavailable)
	s.False(errors.Is(err, domain.ErrOrderAlreadyPaid))
}

func TestSplitName(t *testing.T) {
	first, last := splitName("  Ana Maria Braga ")
	assert.Equal(t, "Ana", first)
	assert.Equal(t, "Maria Braga", last)

	first, last = splitName("Prince")
	assert.Equal(t, "Prince", first)
	assert.Empty(t, last)
}
