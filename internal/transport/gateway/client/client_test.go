package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
		s.server = nil
	}
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		s.NoError(json.NewEncoder(w).Encode(body))
	}
}

func (s *ClientTestSuite) TestCreateQRCharge() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RouteOrders, r.URL.Path)
		s.Equal("Bearer token", r.Header.Get("Authorization"))
		s.Equal("order-1", r.Header.Get("X-Idempotency-Key"))

		var req orderRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("qr", req.Type)
		s.Equal("10.00", req.TotalAmount)
		s.Equal("PT1H", req.ExpirationTime)
		s.Equal("dynamic", req.Config.QR.Mode)
		s.Equal("order-1", req.ExternalReference)

		s.writeJSON(w, http.StatusCreated, map[string]any{
			"id":            "ORD01",
			"type_response": map[string]string{"qr_data": "000201...ABCD"},
		})
	}))

	charge, err := New(s.server.URL, "token").CreateQRCharge(s.T().Context(), QRChargeArgs{
		Amount:            decimal.NewFromInt(10),
		Description:       "3 horas",
		ExternalReference: "order-1",
	})
	s.Require().NoError(err)
	s.Equal("ORD01", charge.OrderID)
	s.Equal("000201...ABCD", charge.QRData)
}

func (s *ClientTestSuite) TestCreateQRCharge_ServerError() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "boom"})
	}))

	charge, err := New(s.server.URL, "token").CreateQRCharge(s.T().Context(), QRChargeArgs{
		Amount:            decimal.NewFromInt(10),
		ExternalReference: "order-1",
	})
	s.Nil(charge)
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusInternalServerError, statusErr.Code)
}

func (s *ClientTestSuite) TestCreateCardCharge() {
	type tcase struct {
		name       string
		httpStatus int
		response   any
		wantStatus CardStatusType
		wantDetail string
		wantErr    bool
	}
	cases := []tcase{
		{
			name:       "approved",
			httpStatus: http.StatusCreated,
			response: map[string]any{
				"id": 123456, "status": "approved", "status_detail": "accredited", "installments": 2,
				"card": map[string]string{"last_four_digits": "4242"},
			},
			wantStatus: CardApproved,
			wantDetail: "accredited",
		}, {
			name:       "in process",
			httpStatus: http.StatusCreated,
			response:   map[string]any{"id": 2, "status": "in_process", "status_detail": "pending_contingency"},
			wantStatus: CardPending,
			wantDetail: "pending_contingency",
		}, {
			name:       "rejected in body",
			httpStatus: http.StatusCreated,
			response:   map[string]any{"id": 3, "status": "rejected", "status_detail": "cc_rejected_insufficient_amount"},
			wantStatus: CardRejected,
			wantDetail: "cc_rejected_insufficient_amount",
		}, {
			name:       "bad request",
			httpStatus: http.StatusBadRequest,
			response: map[string]any{
				"message": "invalid token",
				"cause":   []map[string]any{{"code": 3003, "description": "invalid card_token_id"}},
			},
			wantStatus: CardRejected,
			wantDetail: "invalid card_token_id",
		}, {
			name:       "gateway down",
			httpStatus: http.StatusBadGateway,
			wantErr:    true,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.Equal(RoutePayments, r.URL.Path)
				s.Equal("card-order-2", r.Header.Get("X-Idempotency-Key"))
				body, _ := io.ReadAll(r.Body)
				var req map[string]any
				s.NoError(json.Unmarshal(body, &req))
				s.InDelta(25.0, req["transaction_amount"], 0.001)
				s.writeJSON(w, t.httpStatus, t.response)
			}))
			defer server.Close()

			charge, err := New(server.URL, "token").CreateCardCharge(s.T().Context(), CardChargeArgs{
				Amount:            decimal.NewFromInt(25),
				ExternalReference: "order-2",
				Token:             "tok",
				Payer:             Payer{Email: "a@b.com"},
			})
			if t.wantErr {
				s.Require().Error(err)
				return
			}
			s.Require().NoError(err)
			s.Equal(t.wantStatus, charge.Status)
			s.Equal(t.wantDetail, charge.StatusDetail)
		})
	}
}

func (s *ClientTestSuite) TestCheckStatus() {
	cases := []struct {
		name       string
		httpStatus int
		response   any
		want       CheckStatusType
	}{
		{
			name:       "approved",
			httpStatus: http.StatusOK,
			response:   map[string]any{"results": []map[string]any{{"id": 1, "status": "approved"}}},
			want:       CheckConfirmed,
		}, {
			name:       "in process",
			httpStatus: http.StatusOK,
			response:   map[string]any{"results": []map[string]any{{"id": 1, "status": "in_process"}}},
			want:       CheckPending,
		}, {
			name:       "refunded",
			httpStatus: http.StatusOK,
			response:   map[string]any{"results": []map[string]any{{"id": 1, "status": "refunded"}}},
			want:       CheckFailed,
		}, {
			name:       "empty results",
			httpStatus: http.StatusOK,
			response:   map[string]any{"results": []any{}},
			want:       CheckPending,
		}, {
			name:       "not ok",
			httpStatus: http.StatusNotFound,
			want:       CheckPending,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				s.Equal(RoutePaymentsSearch, r.URL.Path)
				s.Equal("order-3", r.URL.Query().Get("external_reference"))
				s.writeJSON(w, t.httpStatus, t.response)
			}))
			defer server.Close()

			res, err := New(server.URL, "token").CheckStatus(s.T().Context(), "order-3")
			s.Require().NoError(err)
			s.Equal(t.want, res.Status)
		})
	}
}

func (s *ClientTestSuite) TestCheckStatus_Transport() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	res, err := New(s.server.URL, "token").
		SetTimeout(20*time.Millisecond).
		CheckStatus(s.T().Context(), "order-4")
	s.Nil(res)
	s.ErrorIs(err, ErrTransport)
}

func (s *ClientTestSuite) TestGetPayment() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/payments/987", r.URL.Path)
		s.writeJSON(w, http.StatusOK, map[string]any{
			"id": 987, "status": "approved", "external_reference": "order-5",
		})
	}))

	p, err := New(s.server.URL, "token").GetPayment(s.T().Context(), "987")
	s.Require().NoError(err)
	s.Equal("987", p.ID)
	s.Equal("approved", p.Status)
	s.Equal("order-5", p.ExternalReference)
}

func (s *ClientTestSuite) TestMapOrderStatus() {
	table := map[string]domain.OrderStatusType{
		"approved":   domain.OrderStatusPaid,
		"pending":    domain.OrderStatusPending,
		"in_process": domain.OrderStatusPending,
		"rejected":   domain.OrderStatusFailed,
		"cancelled":  domain.OrderStatusCancelled,
		"refunded":   domain.OrderStatusRefunded,
		"authorized": domain.OrderStatusPending,
		"":           domain.OrderStatusPending,
	}
	for in, want := range table {
		s.Equal(want, MapOrderStatus(in), in)
	}
}
