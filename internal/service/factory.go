package service

import (
	"fmt"

	"github.com/fsdevblog/cit-vouchers/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService      *UserService
	VoucherService   *VoucherService
	OrderService     *OrderService
	PaymentService   *PaymentService
	CompanyService   *CompanyService
	DashboardService *DashboardService
	Reconciler       *Reconciler
}

type FactoryArgs struct {
	UOW           uow.UOW
	JWTSecret     []byte
	Hasher        PasswordHasher
	Gateway       PaymentGateway
	Publisher     EventPublisher
	FailurePolicy GatewayFailurePolicy
	Logger        *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW, args.JWTSecret, args.Hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	voucherService, voucherServiceErr := NewVoucherService(args.UOW)
	if voucherServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", voucherServiceErr.Error())
	}

	companyService, companyServiceErr := NewCompanyService(args.UOW)
	if companyServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", companyServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(args.UOW, companyService)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	reconciler, reconcilerErr := NewReconciler(args.UOW, args.Gateway, args.Logger)
	if reconcilerErr != nil {
		return nil, fmt.Errorf("service factory: %s", reconcilerErr.Error())
	}
	reconciler.SetFailurePolicy(args.FailurePolicy).SetPublisher(args.Publisher)

	paymentService, paymentServiceErr :=
		NewPaymentService(args.UOW, args.Gateway, companyService, reconciler, args.Logger)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	dashboardService, dashboardServiceErr := NewDashboardService(args.UOW)
	if dashboardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", dashboardServiceErr.Error())
	}

	return &AppServices{
		UserService:      userService,
		VoucherService:   voucherService,
		OrderService:     orderService,
		PaymentService:   paymentService,
		CompanyService:   companyService,
		DashboardService: dashboardService,
		Reconciler:       reconciler,
	}, nil
}
