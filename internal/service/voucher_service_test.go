package service

import (
	"context"
	"testing"

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

type VoucherServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockVoucherRepo *mocks.MockVoucherRepository
	mockUserRepo    *mocks.MockUserRepository
	mockOrderRepo   *mocks.MockOrderRepository
	voucherService  *VoucherService
}

func TestVoucherServiceSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}

func (s *VoucherServiceTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(ctrl)
	s.mockTX = uowmocks.NewMockTX(ctrl)
	s.mockVoucherRepo = mocks.NewMockVoucherRepository(ctrl)
	s.mockUserRepo = mocks.NewMockUserRepository(ctrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(ctrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.VoucherRepoName)).
		Return(s.mockVoucherRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.VoucherRepoName)).
		Return(s.mockVoucherRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	voucherService, err := NewVoucherService(s.mockUOW)
	s.Require().NoError(err)
	s.voucherService = voucherService
}

func (s *VoucherServiceTestSuite) TestSeedDefaults() {
	gomock.InOrder(
		s.mockVoucherRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil),
		s.mockVoucherRepo.EXPECT().Count(gomock.Any()).Return(int64(3), nil),
	)

	var seeded []repoargs.CreateVoucher
	s.mockVoucherRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateVoucher) (*domain.Voucher, error) {
			seeded = append(seeded, args)
			return &domain.Voucher{ID: uuid.New(), Name: args.Name, Hours: args.Hours, Price: args.Price}, nil
		}).Times(len(DefaultVouchers))

	created, err := s.voucherService.SeedDefaults(s.T().Context())
	s.Require().NoError(err)
	s.Equal(3, created)
	s.Require().Len(seeded, 3)
	s.True(seeded[1].Hours.Equal(decimal.NewFromInt(3)))
	s.Equal("10.00", seeded[1].Price.StringFixed(2))

	// повторный запуск на непустой базе ничего не создает.
	created, err = s.voucherService.SeedDefaults(s.T().Context())
	s.Require().NoError(err)
	s.Zero(created)
}

func (s *VoucherServiceTestSuite) TestGetActive() {
	active := &domain.Voucher{ID: uuid.New(), Active: true}
	inactive := &domain.Voucher{ID: uuid.New(), Active: false}

	s.mockVoucherRepo.EXPECT().FindByID(gomock.Any(), active.ID).Return(active, nil)
	s.mockVoucherRepo.EXPECT().FindByID(gomock.Any(), inactive.ID).Return(inactive, nil)

	v, err := s.voucherService.GetActive(s.T().Context(), active.ID)
	s.Require().NoError(err)
	s.Equal(active.ID, v.ID)

	_, err = s.voucherService.GetActive(s.T().Context(), inactive.ID)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *VoucherServiceTestSuite) TestDeactivate() {
	id := uuid.New()
	s.mockVoucherRepo.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, args repoargs.UpdateVoucher) (*domain.Voucher, error) {
			s.Require().NotNil(args.Active)
			s.False(*args.Active)
			s.Nil(args.Price)
			return &domain.Voucher{ID: id}, nil
		})

	s.NoError(s.voucherService.Deactivate(s.T().Context(), id))
}

func (s *VoucherServiceTestSuite) TestDashboards() {
	dashboard, err := NewDashboardService(s.mockUOW)
	s.Require().NoError(err)

	userID := uuid.New()
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, HoursBalance: decimal.NewFromInt(4)}, nil)
	s.mockOrderRepo.EXPECT().UserStats(gomock.Any(), userID).Return(&repoargs.UserOrderStats{
		TotalOrders: 3,
		PaidOrders:  2,
		TotalSpent:  decimal.RequireFromString("15.00"),
	}, nil)

	client, err := dashboard.Client(s.T().Context(), userID)
	s.Require().NoError(err)
	s.True(client.HoursBalance.Equal(decimal.NewFromInt(4)))
	s.Equal(int64(2), client.PaidOrders)

	s.mockUserRepo.EXPECT().CountByRole(gomock.Any(), domain.RoleClient).Return(int64(7), nil)
	s.mockOrderRepo.EXPECT().Stats(gomock.Any()).Return(&repoargs.OrderStats{
		TotalOrders:   10,
		PaidOrders:    6,
		PendingOrders: 3,
		TotalRevenue:  decimal.RequireFromString("60.00"),
	}, nil)

	admin, err := dashboard.Admin(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(7), admin.TotalUsers)
	s.Equal(int64(3), admin.PendingOrders)
	s.Equal("60.00", admin.TotalRevenue.StringFixed(2))
}
