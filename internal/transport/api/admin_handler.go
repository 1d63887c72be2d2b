package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/repository/repoargs"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	userSvs      UserServicer
	voucherSvs   VoucherServicer
	orderSvs     OrderServicer
	companySvs   CompanyServicer
	dashboardSvs DashboardServicer
}

type AdminHandlerArgs struct {
	UserService      UserServicer
	VoucherService   VoucherServicer
	OrderService     OrderServicer
	CompanyService   CompanyServicer
	DashboardService DashboardServicer
}

func NewAdminHandler(args AdminHandlerArgs) *AdminHandler {
	return &AdminHandler{
		userSvs:      args.UserService,
		voucherSvs:   args.VoucherService,
		orderSvs:     args.OrderService,
		companySvs:   args.CompanyService,
		dashboardSvs: args.DashboardService,
	}
}

type CreateVoucherParams struct {
	Name        string          `binding:"required,min=1,max=100" json:"name"`
	Hours       decimal.Decimal `binding:"gt=0"                   json:"hours"`
	Price       decimal.Decimal `binding:"gte=0.01"               json:"price"`
	Active      *bool           `json:"active"`
	Description *string         `binding:"omitempty,max=1000"     json:"description"`
}

// CreateVoucher POST AdminGroup + VouchersRoute.
func (h *AdminHandler) CreateVoucher(c *gin.Context) {
	var params CreateVoucherParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	voucher, err := h.voucherSvs.Create(reqCtx, repoargs.CreateVoucher{
		Name:        params.Name,
		Hours:       params.Hours,
		Price:       params.Price,
		Active:      active,
		Description: params.Description,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newVoucherResponse(voucher))
}

type UpdateVoucherParams struct {
	Name        *string          `binding:"omitempty,min=1,max=100" json:"name"`
	Hours       *decimal.Decimal `binding:"omitempty,gt=0"          json:"hours"`
	Price       *decimal.Decimal `binding:"omitempty,gte=0.01"      json:"price"`
	Active      *bool            `json:"active"`
	Description *string          `binding:"omitempty,max=1000"      json:"description"`
}

// UpdateVoucher PUT AdminGroup + VoucherRoute. Частичное обновление, не меняет уже созданные заказы.
func (h *AdminHandler) UpdateVoucher(c *gin.Context) {
	voucherID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var params UpdateVoucherParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	voucher, err := h.voucherSvs.Update(reqCtx, voucherID, repoargs.UpdateVoucher{
		Name:        params.Name,
		Hours:       params.Hours,
		Price:       params.Price,
		Active:      params.Active,
		Description: params.Description,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVoucherResponse(voucher))
}

// DeleteVoucher DELETE AdminGroup + VoucherRoute. Ваучер только деактивируется.
func (h *AdminHandler) DeleteVoucher(c *gin.Context) {
	voucherID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.voucherSvs.Deactivate(reqCtx, voucherID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "voucher deactivated"})
}

type AdminDashboardResponse struct {
	TotalUsers    int64   `json:"total_users"`
	TotalOrders   int64   `json:"total_orders"`
	PaidOrders    int64   `json:"paid_orders"`
	PendingOrders int64   `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Dashboard GET AdminGroup + DashboardRoute.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dashboard, err := h.dashboardSvs.Admin(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, AdminDashboardResponse{
		TotalUsers:    dashboard.TotalUsers,
		TotalOrders:   dashboard.TotalOrders,
		PaidOrders:    dashboard.PaidOrders,
		PendingOrders: dashboard.PendingOrders,
		TotalRevenue:  dashboard.TotalRevenue.InexactFloat64(),
	})
}

// Orders GET AdminGroup + OrdersRoute. Все заказы с данными покупателя.
func (h *AdminHandler) Orders(c *gin.Context) {
	var params PageParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.orderSvs.ListAll(reqCtx, params.toPage())
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i].Order)
		response[i].UserName = orders[i].UserName
		response[i].UserEmail = orders[i].UserEmail
	}
	c.JSON(http.StatusOK, response)
}

// Users GET AdminGroup + UsersRoute. Клиенты постранично (skip, limit).
func (h *AdminHandler) Users(c *gin.Context) {
	var params PageParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.userSvs.List(reqCtx, params.toPage())
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]UserResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, response)
}

// Company GET AdminGroup + CompanyRoute. Если компания еще не настроена, отдается пустой объект.
func (h *AdminHandler) Company(c *gin.Context) {
	company, ok := h.currentCompany(c)
	if !ok {
		return
	}
	if company == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, newCompanyResponse(company))
}

type SaveCompanyParams struct {
	Name    string  `binding:"required,min=1,max=255" json:"name"`
	Slug    string  `binding:"omitempty,max=100"      json:"slug"`
	CNPJ    string  `binding:"max=20"                 json:"cnpj"`
	Email   string  `binding:"omitempty,email"        json:"email"`
	Phone   string  `binding:"max=30"                 json:"phone"`
	Address string  `binding:"max=255"                json:"address"`
	Logo    *string `binding:"omitempty,max=2048"     json:"logo"`
}

// SaveCompany PUT AdminGroup + CompanyRoute. Slug генерируется из названия, если не передан.
func (h *AdminHandler) SaveCompany(c *gin.Context) {
	var params SaveCompanyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	company, err := h.companySvs.Save(reqCtx, service.SaveCompanyArgs{
		Name:    params.Name,
		Slug:    params.Slug,
		CNPJ:    params.CNPJ,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
		Logo:    params.Logo,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCompanyResponse(company))
}

// Financial GET AdminGroup + FinancialRoute.
func (h *AdminHandler) Financial(c *gin.Context) {
	company, ok := h.currentCompany(c)
	if !ok {
		return
	}
	if company == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, FinancialResponse{
		PixKey:       company.PixKey,
		MerchantName: company.MerchantName,
		MerchantCity: company.MerchantCity,
	})
}

// PIX ограничивает имя получателя 25 символами, город 15.
type SaveFinancialParams struct {
	PixKey       string `binding:"required,max=77"  json:"pix_key"`
	MerchantName string `binding:"omitempty,max=25" json:"merchant_name"`
	MerchantCity string `binding:"omitempty,max=15" json:"merchant_city"`
}

// SaveFinancial PUT AdminGroup + FinancialRoute.
func (h *AdminHandler) SaveFinancial(c *gin.Context) {
	var params SaveFinancialParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	company, err := h.companySvs.SaveFinancial(reqCtx, service.SaveFinancialArgs{
		PixKey:       params.PixKey,
		MerchantName: params.MerchantName,
		MerchantCity: params.MerchantCity,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, FinancialResponse{
		PixKey:       company.PixKey,
		MerchantName: company.MerchantName,
		MerchantCity: company.MerchantCity,
	})
}

// currentCompany возвращает nil без ошибки, если компания не настроена.
func (h *AdminHandler) currentCompany(c *gin.Context) (*domain.Company, bool) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	company, err := h.companySvs.Get(reqCtx)
	if err != nil {
		if errorIsAny(err, domain.ErrRecordNotFound) {
			return nil, true
		}
		abortWithError(c, err)
		return nil, false
	}
	return company, true
}
