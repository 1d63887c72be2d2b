package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientHandler каталог и дашборд личного кабинета.
type ClientHandler struct {
	voucherSvs   VoucherServicer
	dashboardSvs DashboardServicer
}

func NewClientHandler(voucherSvs VoucherServicer, dashboardSvs DashboardServicer) *ClientHandler {
	return &ClientHandler{
		voucherSvs:   voucherSvs,
		dashboardSvs: dashboardSvs,
	}
}

type ClientDashboardResponse struct {
	HoursBalance float64 `json:"hours_balance"`
	TotalOrders  int64   `json:"total_orders"`
	PaidOrders   int64   `json:"paid_orders"`
	TotalSpent   float64 `json:"total_spent"`
}

// Vouchers GET ClientGroup + VouchersRoute.
func (h *ClientHandler) Vouchers(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	vouchers, err := h.voucherSvs.ListActive(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVoucherListResponse(vouchers))
}

// Dashboard GET ClientGroup + DashboardRoute.
func (h *ClientHandler) Dashboard(c *gin.Context) {
	actor := getActorFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dashboard, err := h.dashboardSvs.Client(reqCtx, actor.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ClientDashboardResponse{
		HoursBalance: dashboard.HoursBalance.InexactFloat64(),
		TotalOrders:  dashboard.TotalOrders,
		PaidOrders:   dashboard.PaidOrders,
		TotalSpent:   dashboard.TotalSpent.InexactFloat64(),
	})
}
