package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string
	Email             string
	EncryptedPassword string
	Role              RoleType
	HoursBalance      decimal.Decimal
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Voucher пакет часов доступа в интернет. Не удаляется физически, только деактивируется.
type Voucher struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Hours       decimal.Decimal
	Price       decimal.Decimal
	Active      bool
	Description *string
}

// CompanySnapshot копия данных компании на момент создания заказа.
type CompanySnapshot struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	CNPJ    string `json:"cnpj"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order заказ ваучера. TotalAmount, VoucherHours, VoucherName и Company копируются в момент создания и
// в дальнейшем не меняются.
type Order struct {
	ID               uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           uuid.UUID
	VoucherID        uuid.UUID
	PaymentMethod    PaymentMethodType
	Status           OrderStatusType
	TotalAmount      decimal.Decimal
	VoucherHours     decimal.Decimal
	VoucherName      string
	Company          *CompanySnapshot
	CompanySlug      *string
	GatewayPaymentID *string
	GatewayStatus    *string
	PaidAt           *time.Time
}

// OrderWithUser заказ с данными покупателя для админки.
type OrderWithUser struct {
	Order
	UserName  string
	UserEmail string
}

// Payment платеж по заказу. Один платеж на заказ, повторные попытки обновляют ту же запись.
type Payment struct {
	ID               uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
	OrderID          uuid.UUID
	PaymentMethod    PaymentMethodType
	Status           PaymentStatusType
	Amount           decimal.Decimal
	PixQRCode        *string
	PixKey           *string
	CardLastDigits   *string
	GatewayOrderID   *string
	GatewayPaymentID *string
	StatusDetail     *string
	Installments     *int
	// FallbackMode выставляется, когда PIX код сгенерирован локально без участия шлюза. Статусу шлюза
	// для таких платежей доверять нельзя.
	FallbackMode bool
	ConfirmedAt  *time.Time
}

// IsGatewayBacked true для платежей, созданных через QR заказ шлюза.
func (p *Payment) IsGatewayBacked() bool {
	return p.GatewayOrderID != nil && *p.GatewayOrderID != "" && !p.FallbackMode
}

type Company struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Slug         string
	CNPJ         string
	Email        string
	Phone        string
	Address      string
	Logo         *string
	PixKey       string
	MerchantName string
	MerchantCity string
}

func (c *Company) Snapshot() *CompanySnapshot {
	return &CompanySnapshot{
		Name:    c.Name,
		Slug:    c.Slug,
		CNPJ:    c.CNPJ,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

type ClientDashboard struct {
	HoursBalance decimal.Decimal
	TotalOrders  int64
	PaidOrders   int64
	TotalSpent   decimal.Decimal
}

type AdminDashboard struct {
	TotalUsers    int64
	TotalOrders   int64
	PaidOrders    int64
	PendingOrders int64
	TotalRevenue  decimal.Decimal
}

// OrderPaidEvent событие об оплате заказа для внешних потребителей.
type OrderPaidEvent struct {
	OrderID uuid.UUID       `json:"order_id"`
	UserID  uuid.UUID       `json:"user_id"`
	Hours   decimal.Decimal `json:"hours"`
	Amount  decimal.Decimal `json:"amount"`
	PaidAt  time.Time       `json:"paid_at"`
}
