package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreHandlerTestSuite struct {
	routerSuite
	company *domain.Company
}

func TestStoreHandlerSuite(t *testing.T) {
	suite.Run(t, new(StoreHandlerTestSuite))
}

func (s *StoreHandlerTestSuite) SetupTest() {
	s.routerSuite.SetupTest()
	s.company = &domain.Company{ID: uuid.New(), Name: "Café Conexão", Slug: "cafe-conexao"}
	s.mockCompanyService.EXPECT().FindBySlug(gomock.Any(), "cafe-conexao").Return(s.company, nil).AnyTimes()
	s.mockCompanyService.EXPECT().FindBySlug(gomock.Any(), "unknown").Return(nil, domain.ErrRecordNotFound).AnyTimes()
}

func (s *StoreHandlerTestSuite) TestInfo() {
	res := s.do(http.MethodGet, StoreGroup+"/cafe-conexao", nil, "")
	s.Require().Equal(http.StatusOK, res.status)
	s.Equal("Café Conexão", res.body["name"])

	methods, ok := res.body["payment_methods"].(map[string]any)
	s.Require().True(ok)
	// без PIX ключа оплата по PIX недоступна.
	s.Equal(false, methods["pix"])
	s.Equal(true, methods["credit"])

	res = s.do(http.MethodGet, StoreGroup+"/unknown", nil, "")
	s.assertError(res, http.StatusNotFound, "not_found")
}

func (s *StoreHandlerTestSuite) TestVouchers() {
	s.mockVoucherService.EXPECT().ListActive(gomock.Any()).Return([]domain.Voucher{
		{ID: uuid.New(), Name: "1 Hora", Hours: decimal.NewFromInt(1), Price: decimal.RequireFromString("5.00"), Active: true},
	}, nil)

	res := s.do(http.MethodGet, StoreGroup+"/cafe-conexao/vouchers", nil, "")
	s.Require().Equal(http.StatusOK, res.status)
	s.Contains(string(res.raw), `"name":"1 Hora"`)

	res = s.do(http.MethodGet, StoreGroup+"/unknown/vouchers", nil, "")
	s.assertError(res, http.StatusNotFound, "not_found")
}

func (s *StoreHandlerTestSuite) TestVoucher() {
	active := uuid.New()
	inactive := uuid.New()
	s.mockVoucherService.EXPECT().GetActive(gomock.Any(), active).
		Return(&domain.Voucher{ID: active, Name: "3 Horas", Active: true}, nil)
	s.mockVoucherService.EXPECT().GetActive(gomock.Any(), inactive).Return(nil, domain.ErrRecordNotFound)

	res := s.do(http.MethodGet, StoreGroup+"/cafe-conexao/voucher/"+active.String(), nil, "")
	s.Require().Equal(http.StatusOK, res.status)
	s.Equal(active.String(), res.body["id"])

	res = s.do(http.MethodGet, StoreGroup+"/cafe-conexao/voucher/"+inactive.String(), nil, "")
	s.assertError(res, http.StatusNotFound, "not_found")
}

func (s *StoreHandlerTestSuite) TestHealth() {
	res := s.do(http.MethodGet, HealthRoute, nil, "")
	s.Require().Equal(http.StatusOK, res.status)
	s.Equal("healthy", res.body["status"])
}
