package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/client"
	"github.com/fsdevblog/cit-vouchers/internal/transport/gateway/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockClient  *mocks.MockStatusChecker
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockClient = mocks.NewMockStatusChecker(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = NewProcessor(s.mockService, s.mockClient, logger).SetWorkers(2)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoPayments нет платежей для сверки.
func (s *ProcessorTestSuite) TestProcess_NoPayments() {
	s.mockService.EXPECT().
		PendingGatewayPayments(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.Payment{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoPayments)
}

// TestProcess_Results ошибки и статусы шлюза передаются в сервис как есть.
func (s *ProcessorTestSuite) TestProcess_Results() {
	paidOrder := uuid.New()
	failedOrder := uuid.New()
	unreachableOrder := uuid.New()

	payments := []domain.Payment{
		{ID: uuid.New(), OrderID: paidOrder, Status: domain.PaymentStatusPending},
		{ID: uuid.New(), OrderID: failedOrder, Status: domain.PaymentStatusPending},
		{ID: uuid.New(), OrderID: unreachableOrder, Status: domain.PaymentStatusPending},
	}

	s.mockService.EXPECT().
		PendingGatewayPayments(gomock.Any(), s.processor.limitPerIteration).
		Return(payments, nil)

	s.mockClient.EXPECT().CheckStatus(gomock.Any(), paidOrder.String()).
		Return(&client.StatusResult{Status: client.CheckConfirmed, GatewayStatus: "approved", PaymentID: "1"}, nil)
	s.mockClient.EXPECT().CheckStatus(gomock.Any(), failedOrder.String()).
		Return(&client.StatusResult{Status: client.CheckFailed, GatewayStatus: "rejected"}, nil)
	s.mockClient.EXPECT().CheckStatus(gomock.Any(), unreachableOrder.String()).
		Return(nil, client.ErrTransport)

	s.mockService.EXPECT().
		ApplyGatewayStatuses(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.GatewayStatusUpdate) {
			s.Require().Len(updates, 3)

			byOrder := make(map[uuid.UUID]service.GatewayStatusUpdate, len(updates))
			for _, update := range updates {
				byOrder[update.Payment.OrderID] = update
			}

			s.Require().NoError(byOrder[paidOrder].Error)
			s.Equal(client.CheckConfirmed, byOrder[paidOrder].Result.Status)
			s.Equal("rejected", byOrder[failedOrder].Result.GatewayStatus)
			s.Require().ErrorIs(byOrder[unreachableOrder].Error, client.ErrTransport)
			s.Nil(byOrder[unreachableOrder].Result)
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()

	s.NoError(s.processor.process(ctx))
}

func (s *ProcessorTestSuite) TestProcess_ServiceError() {
	s.mockService.EXPECT().
		PendingGatewayPayments(gomock.Any(), s.processor.limitPerIteration).
		Return(nil, errors.New("db down"))

	err := s.processor.process(s.T().Context())
	s.Require().Error(err)
	s.NotErrorIs(err, ErrNoPayments)
}

// TestRun_StopsOnCancel цикл завершается после отмены контекста.
func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	s.mockService.EXPECT().
		PendingGatewayPayments(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	s.processor.SetPollInterval(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(s.T().Context())
	done := make(chan struct{})
	go func() {
		s.processor.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("processor did not stop")
	}
}
