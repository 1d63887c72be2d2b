package api

import (
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         domain.RoleType `json:"role"`
	HoursBalance float64         `json:"hours_balance"`
	CreatedAt    time.Time       `json:"created_at"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		HoursBalance: u.HoursBalance.InexactFloat64(),
		CreatedAt:    u.CreatedAt,
	}
}

type VoucherResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Hours       float64   `json:"hours"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func newVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		ID:          v.ID,
		Name:        v.Name,
		Hours:       v.Hours.InexactFloat64(),
		Price:       v.Price.InexactFloat64(),
		Active:      v.Active,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}

func newVoucherListResponse(vouchers []domain.Voucher) []VoucherResponse {
	response := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		response[i] = newVoucherResponse(&vouchers[i])
	}
	return response
}

type OrderResponse struct {
	ID            uuid.UUID                `json:"id"`
	UserID        uuid.UUID                `json:"user_id"`
	VoucherID     uuid.UUID                `json:"voucher_id"`
	PaymentMethod domain.PaymentMethodType `json:"payment_method"`
	Status        domain.OrderStatusType   `json:"status"`
	TotalAmount   float64                  `json:"total_amount"`
	VoucherHours  float64                  `json:"voucher_hours"`
	VoucherName   string                   `json:"voucher_name"`
	Company       *domain.CompanySnapshot  `json:"company,omitempty"`
	CompanySlug   *string                  `json:"company_slug,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	PaidAt        *time.Time               `json:"paid_at"`

	// Заполняются только в админке.
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		VoucherID:     o.VoucherID,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		TotalAmount:   o.TotalAmount.InexactFloat64(),
		VoucherHours:  o.VoucherHours.InexactFloat64(),
		VoucherName:   o.VoucherName,
		Company:       o.Company,
		CompanySlug:   o.CompanySlug,
		CreatedAt:     o.CreatedAt,
		PaidAt:        o.PaidAt,
	}
}

type PaymentResponse struct {
	ID             uuid.UUID                `json:"id"`
	OrderID        uuid.UUID                `json:"order_id"`
	PaymentMethod  domain.PaymentMethodType `json:"payment_method"`
	Status         domain.PaymentStatusType `json:"status"`
	Amount         float64                  `json:"amount"`
	PixQRCode      *string                  `json:"pix_qrcode"`
	PixKey         *string                  `json:"pix_key,omitempty"`
	CardLastDigits *string                  `json:"card_last_digits"`
	StatusDetail   *string                  `json:"status_detail,omitempty"`
	Installments   *int                     `json:"installments,omitempty"`
	FallbackMode   bool                     `json:"fallback_mode"`
	CreatedAt      time.Time                `json:"created_at"`
	ConfirmedAt    *time.Time               `json:"confirmed_at,omitempty"`
}

func newPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		OrderID:        p.OrderID,
		PaymentMethod:  p.PaymentMethod,
		Status:         p.Status,
		Amount:         p.Amount.InexactFloat64(),
		PixQRCode:      p.PixQRCode,
		PixKey:         p.PixKey,
		CardLastDigits: p.CardLastDigits,
		StatusDetail:   p.StatusDetail,
		Installments:   p.Installments,
		FallbackMode:   p.FallbackMode,
		CreatedAt:      p.CreatedAt,
		ConfirmedAt:    p.ConfirmedAt,
	}
}

type CompanyResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	CNPJ    string    `json:"cnpj"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
	Logo    *string   `json:"logo"`
}

func newCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		Slug:    c.Slug,
		CNPJ:    c.CNPJ,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Logo:    c.Logo,
	}
}

type FinancialResponse struct {
	PixKey       string `json:"pix_key"`
	MerchantName string `json:"merchant_name"`
	MerchantCity string `json:"merchant_city"`
}
