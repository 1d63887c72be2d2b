package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/service/mocks"
	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	uowmocks "github.com/fsdevblog/cit-vouchers/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockOrderRepo   *mocks.MockOrderRepository
	mockVoucherRepo *mocks.MockVoucherRepository
	mockCompanyRepo *mocks.MockCompanyRepository
	orderService    *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockVoucherRepo = mocks.NewMockVoucherRepository(s.mockCtrl)
	s.mockCompanyRepo = mocks.NewMockCompanyRepository(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.VoucherRepoName)).
		Return(s.mockVoucherRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CompanyRepoName)).
		Return(s.mockCompanyRepo, nil).AnyTimes()

	companies, err := NewCompanyService(s.mockUOW)
	s.Require().NoError(err)
	orderService, servErr := NewOrderService(s.mockUOW, companies)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) TestCreate() {
	userID := uuid.New()
	active := &domain.Voucher{
		ID:     uuid.New(),
		Name:   "3 Horas",
		Hours:  decimal.NewFromInt(3),
		Price:  decimal.RequireFromString("10.00"),
		Active: true,
	}
	inactive := &domain.Voucher{ID: uuid.New(), Name: "old", Active: false}
	slug := "cit-internet"
	company := &domain.Company{
		ID:      uuid.New(),
		Name:    "CIT Internet",
		Slug:    slug,
		CNPJ:    "00.000.000/0001-00",
		Email:   gofakeit.Email(),
		Phone:   gofakeit.Phone(),
		Address: gofakeit.Street(),
	}

	s.mockVoucherRepo.EXPECT().FindByID(gomock.Any(), active.ID).Return(active, nil).AnyTimes()
	s.mockVoucherRepo.EXPECT().FindByID(gomock.Any(), inactive.ID).Return(inactive, nil).AnyTimes()
	s.mockCompanyRepo.EXPECT().FindBySlug(gomock.Any(), slug).Return(company, nil).AnyTimes()

	s.Run("snapshot", func() {
		s.mockOrderRepo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
				s.Equal(userID, args.UserID)
				s.True(args.TotalAmount.Equal(active.Price))
				s.True(args.VoucherHours.Equal(active.Hours))
				s.Equal(active.Name, args.VoucherName)
				s.Require().NotNil(args.Company)
				s.Equal(company.Name, args.Company.Name)
				s.Equal(slug, args.Company.Slug)
				return &domain.Order{
					ID:            uuid.New(),
					CreatedAt:     time.Now(),
					UserID:        args.UserID,
					VoucherID:     args.VoucherID,
					PaymentMethod: args.PaymentMethod,
					Status:        domain.OrderStatusPending,
					TotalAmount:   args.TotalAmount,
					VoucherHours:  args.VoucherHours,
					VoucherName:   args.VoucherName,
					Company:       args.Company,
					CompanySlug:   args.CompanySlug,
				}, nil
			})

		order, err := s.orderService.Create(s.T().Context(), CreateOrderArgs{
			UserID:        userID,
			VoucherID:     active.ID,
			PaymentMethod: domain.PaymentMethodPix,
			CompanySlug:   &slug,
		})
		s.Require().NoError(err)
		s.Equal(domain.OrderStatusPending, order.Status)
		s.Equal(company.CNPJ, order.Company.CNPJ)
	})

	s.Run("without company", func() {
		s.mockCompanyRepo.EXPECT().FindDefault(gomock.Any()).Return(nil, domain.ErrRecordNotFound)
		s.mockOrderRepo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
				s.Nil(args.Company)
				return &domain.Order{ID: uuid.New(), Status: domain.OrderStatusPending}, nil
			})

		_, err := s.orderService.Create(s.T().Context(), CreateOrderArgs{
			UserID:        userID,
			VoucherID:     active.ID,
			PaymentMethod: domain.PaymentMethodCredit,
		})
		s.Require().NoError(err)
	})

	cases := []struct {
		name    string
		args    CreateOrderArgs
		wantErr error
	}{
		{
			name:    "inactive voucher",
			args:    CreateOrderArgs{UserID: userID, VoucherID: inactive.ID, PaymentMethod: domain.PaymentMethodPix},
			wantErr: domain.ErrVoucherInactive,
		},
		{
			name:    "invalid method",
			args:    CreateOrderArgs{UserID: userID, VoucherID: active.ID, PaymentMethod: "cash"},
			wantErr: domain.ErrInvalidPaymentMethod,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.orderService.Create(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *OrderServiceTestSuite) TestCreate_UnknownVoucher() {
	voucherID := uuid.New()
	s.mockVoucherRepo.EXPECT().FindByID(gomock.Any(), voucherID).Return(nil, domain.ErrRecordNotFound)

	_, err := s.orderService.Create(s.T().Context(), CreateOrderArgs{
		UserID:        uuid.New(),
		VoucherID:     voucherID,
		PaymentMethod: domain.PaymentMethodPix,
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
