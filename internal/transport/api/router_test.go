package api

import (
	"io"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/logger"
	"github.com/fsdevblog/cit-vouchers/internal/service/tokens"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api/mocks"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// routerSuite общая настройка роутера с моками сервисов для тестов хендлеров.
type routerSuite struct {
	suite.Suite
	router *gin.Engine

	mockUserService      *mocks.MockUserServicer
	mockVoucherService   *mocks.MockVoucherServicer
	mockOrderService     *mocks.MockOrderServicer
	mockPaymentService   *mocks.MockPaymentServicer
	mockReconciler       *mocks.MockReconcileServicer
	mockCompanyService   *mocks.MockCompanyServicer
	mockDashboardService *mocks.MockDashboardServicer
	mockVerifier         *mocks.MockSignatureVerifier
	mockDedup            *mocks.MockWebhookDeduplicator

	jwtSecret []byte
}

func (s *routerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *routerSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockVoucherService = mocks.NewMockVoucherServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockPaymentService = mocks.NewMockPaymentServicer(mockCtrl)
	s.mockReconciler = mocks.NewMockReconcileServicer(mockCtrl)
	s.mockCompanyService = mocks.NewMockCompanyServicer(mockCtrl)
	s.mockDashboardService = mocks.NewMockDashboardServicer(mockCtrl)
	s.mockVerifier = mocks.NewMockSignatureVerifier(mockCtrl)
	s.mockDedup = mocks.NewMockWebhookDeduplicator(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:           logger.New(io.Discard),
		UserService:      s.mockUserService,
		VoucherService:   s.mockVoucherService,
		OrderService:     s.mockOrderService,
		PaymentService:   s.mockPaymentService,
		Reconciler:       s.mockReconciler,
		CompanyService:   s.mockCompanyService,
		DashboardService: s.mockDashboardService,
		Verifier:         s.mockVerifier,
		Dedup:            s.mockDedup,
		JWTSecretKey:     s.jwtSecret,
		GatewayPublicKey: "APP_USR-public",
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *routerSuite) token(id uuid.UUID, role domain.RoleType) string {
	jwtToken, err := tokens.GenerateUserJWT(id, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return jwtToken
}

type testResponse struct {
	status int
	body   map[string]any
	raw    []byte
}

// do выполняет запрос к роутеру. Тело payload сериализуется в json, если это не []byte.
func (s *routerSuite) do(method, url string, payload any, jwtToken string, opts ...func(*testutils.RequestOptions)) testResponse {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router:  s.router,
		Method:  method,
		URL:     url,
		Payload: payload,
	}, append([]func(*testutils.RequestOptions){testutils.WithBearer(jwtToken)}, opts...)...)
	s.Require().NoError(err)

	body, decodeErr := res.JSON()
	s.Require().NoError(decodeErr, string(res.Raw))
	return testResponse{status: res.StatusCode, body: body, raw: res.Raw}
}

func (s *routerSuite) assertError(res testResponse, wantStatus int, wantCode string) {
	s.Equal(wantStatus, res.status, string(res.raw))
	if wantCode != "" {
		s.Require().NotNil(res.body, string(res.raw))
		s.Equal(wantCode, res.body["code"])
		s.NotEmpty(res.body["error"])
	}
}

