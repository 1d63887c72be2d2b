package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type CreateOrderParams struct {
	VoucherID     uuid.UUID                `binding:"required"                        json:"voucher_id"`
	PaymentMethod domain.PaymentMethodType `binding:"required,oneof=pix credit debit" json:"payment_method"`
	CompanySlug   *string                  `binding:"omitempty,max=100"               json:"company_slug"`
}

// Create POST ClientGroup + OrdersRoute. Создает заказ в статусе pending.
func (o *OrdersHandler) Create(c *gin.Context) {
	actor := getActorFromContext(c)

	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, createErr := o.orderSvs.Create(reqCtx, service.CreateOrderArgs{
		UserID:        actor.ID,
		VoucherID:     params.VoucherID,
		PaymentMethod: params.PaymentMethod,
		CompanySlug:   params.CompanySlug,
	})
	if createErr != nil {
		abortWithError(c, createErr)
		return
	}

	c.JSON(http.StatusCreated, newOrderResponse(order))
}

// Index GET ClientGroup + OrdersRoute. Заказы текущего юзера, новые первыми.
func (o *OrdersHandler) Index(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.GetByUserID(reqCtx, actor.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, response)
}
