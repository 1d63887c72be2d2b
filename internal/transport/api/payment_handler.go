package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GatewayServiceTimeout запросы, которые ходят в платежный шлюз, ограничены таймаутом его http клиента.
const GatewayServiceTimeout = 35 * time.Second

type PaymentHandler struct {
	paymentSvs   PaymentServicer
	reconcileSvs ReconcileServicer
	publicKey    string
}

func NewPaymentHandler(paymentSvs PaymentServicer, reconcileSvs ReconcileServicer, publicKey string) *PaymentHandler {
	return &PaymentHandler{
		paymentSvs:   paymentSvs,
		reconcileSvs: reconcileSvs,
		publicKey:    publicKey,
	}
}

type ProcessPaymentParams struct {
	OrderID              uuid.UUID                `binding:"required"                        json:"order_id"`
	PaymentMethod        domain.PaymentMethodType `binding:"required,oneof=pix credit debit" json:"payment_method"`
	CardToken            string                   `binding:"max=255"                         json:"card_token"`
	CardPaymentMethodID  string                   `binding:"max=50"                          json:"card_payment_method_id"`
	CardInstallments     int                      `binding:"min=0,max=24"                    json:"card_installments"`
	PayerEmail           string                   `binding:"omitempty,email"                 json:"payer_email"`
	CardHolderName       string                   `binding:"max=255"                         json:"card_holder_name"`
	IdentificationType   string                   `binding:"max=10"                          json:"identification_type"`
	IdentificationNumber string                   `binding:"max=20"                          json:"identification_number"`
}

// Process POST PaymentGroup + ProcessRoute. Инициирует оплату заказа.
func (h *PaymentHandler) Process(c *gin.Context) {
	actor := getActorFromContext(c)

	var params ProcessPaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, GatewayServiceTimeout)
	defer cancel()

	res, err := h.paymentSvs.Process(reqCtx, service.ProcessPaymentArgs{
		Actor:                actor,
		OrderID:              params.OrderID,
		PaymentMethod:        params.PaymentMethod,
		CardToken:            params.CardToken,
		Installments:         params.CardInstallments,
		CardPaymentMethodID:  params.CardPaymentMethodID,
		PayerEmail:           params.PayerEmail,
		CardHolderName:       params.CardHolderName,
		IdentificationType:   params.IdentificationType,
		IdentificationNumber: params.IdentificationNumber,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPaymentStatusResponse(res.Order, res.Payment))
}

type ConfirmResponse struct {
	Message     string        `json:"message"`
	HoursAdded  float64       `json:"hours_added"`
	AlreadyPaid bool          `json:"already_paid"`
	Order       OrderResponse `json:"order"`
}

// Confirm POST PaymentGroup + ConfirmRoute. Явное подтверждение оплаты. Повторное подтверждение
// оплаченного заказа не является ошибкой.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	actor := getActorFromContext(c)
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, GatewayServiceTimeout)
	defer cancel()

	res, err := h.reconcileSvs.Confirm(reqCtx, actor, orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := ConfirmResponse{
		Message:     "payment confirmed",
		AlreadyPaid: res.AlreadyPaid,
		Order:       newOrderResponse(res.Order),
	}
	switch {
	case res.AlreadyPaid:
		response.Message = "order already paid"
	case res.Applied:
		response.HoursAdded = res.Order.VoucherHours.InexactFloat64()
	}
	c.JSON(http.StatusOK, response)
}

type PaymentStatusResponse struct {
	PaymentResponse
	OrderStatus domain.OrderStatusType `json:"order_status"`
}

func newPaymentStatusResponse(order *domain.Order, payment *domain.Payment) PaymentStatusResponse {
	return PaymentStatusResponse{
		PaymentResponse: newPaymentResponse(payment),
		OrderStatus:     order.Status,
	}
}

// Status GET PaymentGroup + StatusRoute. Статус платежа. Ожидающий PIX платеж перед ответом перепроверяется в шлюзе.
func (h *PaymentHandler) Status(c *gin.Context) {
	actor := getActorFromContext(c)
	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, GatewayServiceTimeout)
	defer cancel()

	res, err := h.reconcileSvs.PaymentStatus(reqCtx, actor, orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if res.Payment == nil {
		abort(c, http.StatusNotFound, domain.ErrPaymentNotFound, middlewares.ErrorMeta{
			Code:    middlewares.CodeNotFound,
			Message: "payment not found",
		})
		return
	}

	c.JSON(http.StatusOK, newPaymentStatusResponse(res.Order, res.Payment))
}

// PublicKey GET PaymentGroup + PublicKeyRoute. Публичный ключ шлюза для токенизации карт на фронте.
func (h *PaymentHandler) PublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"public_key": h.publicKey})
}
