package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/transport/api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	HealthRoute = "/health"

	AuthGroup     = "/auth"
	RegisterRoute = "/register"
	LoginRoute    = "/login"
	MeRoute       = "/me"

	ClientGroup    = "/client"
	VouchersRoute  = "/vouchers"
	VoucherRoute   = "/vouchers/:id"
	OrdersRoute    = "/orders"
	DashboardRoute = "/dashboard"

	PaymentGroup   = "/payment"
	ProcessRoute   = "/process"
	ConfirmRoute   = "/confirm/:order_id"
	StatusRoute    = "/status/:order_id"
	PublicKeyRoute = "/gateway/public-key"

	WebhooksGroup       = "/webhooks"
	GatewayWebhookRoute = "/gateway"
	// LegacyWebhookRoute адрес, который уже прописан в настройках уведомлений шлюза.
	LegacyWebhookRoute = "/mercadopago"

	StoreGroup         = "/store"
	StoreRoute         = "/:slug"
	StoreVouchersRoute = "/:slug/vouchers"
	StoreVoucherRoute  = "/:slug/voucher/:voucher_id"

	AdminGroup     = "/admin"
	UsersRoute     = "/users"
	CompanyRoute   = "/company"
	FinancialRoute = "/financial"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	UserService      UserServicer
	VoucherService   VoucherServicer
	OrderService     OrderServicer
	PaymentService   PaymentServicer
	Reconciler       ReconcileServicer
	CompanyService   CompanyServicer
	DashboardService DashboardServicer
	Verifier         SignatureVerifier
	Dedup            WebhookDeduplicator
	DB               Pinger
	JWTSecretKey     []byte
	// GatewayPublicKey отдается фронту для токенизации карт.
	GatewayPublicKey string
	// AllowOrigins источники, которым разрешены CORS запросы. Пустой список разрешает все.
	AllowOrigins []string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(corsMiddleware(args.AllowOrigins))
	r.Use(middlewares.Errors())

	logger := args.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	authHandler := NewAuthHandler(args.UserService)
	clientHandler := NewClientHandler(args.VoucherService, args.DashboardService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	paymentHandler := NewPaymentHandler(args.PaymentService, args.Reconciler, args.GatewayPublicKey)
	webhookHandler := NewWebhookHandler(args.Reconciler, args.Verifier, args.Dedup, logger)
	storeHandler := NewStoreHandler(args.CompanyService, args.VoucherService)
	healthHandler := NewHealthHandler(args.DB)
	adminHandler := NewAdminHandler(AdminHandlerArgs{
		UserService:      args.UserService,
		VoucherService:   args.VoucherService,
		OrderService:     args.OrderService,
		CompanyService:   args.CompanyService,
		DashboardService: args.DashboardService,
	})

	authRequired := middlewares.AuthRequired(args.JWTSecretKey)

	r.GET(HealthRoute, healthHandler.Health)

	auth := r.Group(AuthGroup)
	auth.POST(RegisterRoute, authHandler.Register)
	auth.POST(LoginRoute, authHandler.Login)
	auth.GET(MeRoute, authRequired, authHandler.Me)

	client := r.Group(ClientGroup, authRequired)
	client.GET(VouchersRoute, clientHandler.Vouchers)
	client.POST(OrdersRoute, ordersHandler.Create)
	client.GET(OrdersRoute, ordersHandler.Index)
	client.GET(DashboardRoute, clientHandler.Dashboard)

	r.GET(PaymentGroup+PublicKeyRoute, paymentHandler.PublicKey)
	payment := r.Group(PaymentGroup, authRequired)
	payment.POST(ProcessRoute, paymentHandler.Process)
	payment.POST(ConfirmRoute, paymentHandler.Confirm)
	payment.GET(StatusRoute, paymentHandler.Status)

	webhooks := r.Group(WebhooksGroup)
	webhooks.POST(GatewayWebhookRoute, webhookHandler.Gateway)
	webhooks.POST(LegacyWebhookRoute, webhookHandler.Gateway)

	store := r.Group(StoreGroup)
	store.GET(StoreRoute, storeHandler.Info)
	store.GET(StoreVouchersRoute, storeHandler.Vouchers)
	store.GET(StoreVoucherRoute, storeHandler.Voucher)

	admin := r.Group(AdminGroup, authRequired, middlewares.AdminRequired())
	admin.POST(VouchersRoute, adminHandler.CreateVoucher)
	admin.PUT(VoucherRoute, adminHandler.UpdateVoucher)
	admin.DELETE(VoucherRoute, adminHandler.DeleteVoucher)
	admin.GET(DashboardRoute, adminHandler.Dashboard)
	admin.GET(OrdersRoute, adminHandler.Orders)
	admin.GET(UsersRoute, adminHandler.Users)
	admin.GET(CompanyRoute, adminHandler.Company)
	admin.PUT(CompanyRoute, adminHandler.SaveCompany)
	admin.GET(FinancialRoute, adminHandler.Financial)
	admin.PUT(FinancialRoute, adminHandler.SaveFinancial)

	return r, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	config.AddAllowHeaders("Authorization")
	config.AddExposeHeaders("Authorization")
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}
