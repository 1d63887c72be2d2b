package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type WebhookHandlerTestSuite struct {
	routerSuite
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

const webhookURL = WebhooksGroup + GatewayWebhookRoute

func (s *WebhookHandlerTestSuite) post(payload any, headers map[string]string) testResponse {
	var opts []func(*testutils.RequestOptions)
	for k, v := range headers {
		opts = append(opts, testutils.WithHeader(k, v))
	}
	return s.do(http.MethodPost, webhookURL, payload, "", opts...)
}

func paymentNotification(id any) map[string]any {
	return map[string]any{
		"action": "payment.updated",
		"type":   "payment",
		"data":   map[string]any{"id": id},
	}
}

func (s *WebhookHandlerTestSuite) TestProcessed() {
	order := &domain.Order{ID: uuid.New(), Status: domain.OrderStatusPaid}

	s.mockVerifier.EXPECT().Enabled().Return(true)
	s.mockVerifier.EXPECT().Verify("ts=1,v1=abc", "req-1", "123456").Return(true)
	s.mockDedup.EXPECT().Acquire(gomock.Any(), "req-1").Return(true, nil)
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), "123456").
		Return(&service.TransitionResult{Order: order, Applied: true}, nil)

	// id платежа числом, как его присылает шлюз.
	res := s.post(paymentNotification(123456), map[string]string{
		"x-signature":  "ts=1,v1=abc",
		"x-request-id": "req-1",
	})
	s.Require().Equal(http.StatusOK, res.status)
	s.Equal("ok", res.body["status"])
}

func (s *WebhookHandlerTestSuite) TestInvalidSignature() {
	s.mockVerifier.EXPECT().Enabled().Return(true)
	s.mockVerifier.EXPECT().Verify("ts=1,v1=bad", "req-2", "42").Return(false)
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Times(0)

	res := s.post(paymentNotification("42"), map[string]string{
		"x-signature":  "ts=1,v1=bad",
		"x-request-id": "req-2",
	})
	s.assertError(res, http.StatusUnauthorized, "unauthorized")
}

func (s *WebhookHandlerTestSuite) TestUnparsableBody() {
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Times(0)

	res := s.post([]byte("not json"), nil)
	s.assertError(res, http.StatusBadRequest, "bad_request")

	res = s.post([]byte(""), nil)
	s.assertError(res, http.StatusBadRequest, "bad_request")
}

func (s *WebhookHandlerTestSuite) TestDuplicateDelivery() {
	s.mockVerifier.EXPECT().Enabled().Return(false)
	s.mockDedup.EXPECT().Acquire(gomock.Any(), "req-3").Return(false, nil)
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Times(0)

	res := s.post(paymentNotification("77"), map[string]string{"x-request-id": "req-3"})
	s.Require().Equal(http.StatusOK, res.status)
	s.Equal("ok", res.body["status"])
}

func (s *WebhookHandlerTestSuite) TestProcessingFailureReleasesKey() {
	s.mockVerifier.EXPECT().Enabled().Return(false)
	gomock.InOrder(
		s.mockDedup.EXPECT().Acquire(gomock.Any(), "req-4").Return(true, nil),
		s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), "88").
			Return(nil, errors.New("gateway timeout")),
		s.mockDedup.EXPECT().Release(gomock.Any(), "req-4").Return(nil),
	)

	res := s.post(paymentNotification("88"), map[string]string{"x-request-id": "req-4"})
	s.Require().Equal(http.StatusOK, res.status)
	s.Equal("ok", res.body["status"])
}

func (s *WebhookHandlerTestSuite) TestDedupUnavailable() {
	s.mockVerifier.EXPECT().Enabled().Return(false)
	s.mockDedup.EXPECT().Acquire(gomock.Any(), "req-5").Return(false, errors.New("redis down"))
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), "99").
		Return(&service.TransitionResult{}, nil)

	res := s.post(paymentNotification("99"), map[string]string{"x-request-id": "req-5"})
	s.Equal(http.StatusOK, res.status)
}

func (s *WebhookHandlerTestSuite) TestIgnoredNotifications() {
	s.mockVerifier.EXPECT().Enabled().Return(false).Times(2)
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Times(0)

	res := s.post(map[string]any{
		"action": "merchant_order.updated",
		"type":   "merchant_order",
		"data":   map[string]any{"id": "1"},
	}, nil)
	s.Equal(http.StatusOK, res.status)

	res = s.post(map[string]any{"type": "payment"}, nil)
	s.Equal(http.StatusOK, res.status)
}

func (s *WebhookHandlerTestSuite) TestWithoutRequestID() {
	s.mockVerifier.EXPECT().Enabled().Return(false)
	s.mockDedup.EXPECT().Acquire(gomock.Any(), gomock.Any()).Times(0)
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), "555").
		Return(&service.TransitionResult{}, nil)

	res := s.do(http.MethodPost, WebhooksGroup+LegacyWebhookRoute, paymentNotification("555"), "")
	s.Equal(http.StatusOK, res.status)
}

func (s *WebhookHandlerTestSuite) TestDataIDFromQuery() {
	s.mockVerifier.EXPECT().Enabled().Return(false)
	s.mockDedup.EXPECT().Acquire(gomock.Any(), "req-7").Return(true, nil)
	s.mockReconciler.EXPECT().HandleNotification(gomock.Any(), "555").
		Return(&service.TransitionResult{}, nil)

	res := s.do(http.MethodPost, webhookURL, map[string]any{"type": "payment", "data": map[string]any{}}, "",
		testutils.WithHeader("x-request-id", "req-7"),
		testutils.WithQuery("data.id", "555"),
	)
	s.Equal(http.StatusOK, res.status)
}
