package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreHandler публичная витрина компании, адресуемая по slug.
type StoreHandler struct {
	companySvs CompanyServicer
	voucherSvs VoucherServicer
}

func NewStoreHandler(companySvs CompanyServicer, voucherSvs VoucherServicer) *StoreHandler {
	return &StoreHandler{
		companySvs: companySvs,
		voucherSvs: voucherSvs,
	}
}

type PaymentMethodsResponse struct {
	Pix    bool `json:"pix"`
	Credit bool `json:"credit"`
	Debit  bool `json:"debit"`
}

type StoreResponse struct {
	CompanyResponse
	PaymentMethods PaymentMethodsResponse `json:"payment_methods"`
}

// Info GET StoreGroup + StoreRoute.
func (h *StoreHandler) Info(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	company, err := h.companySvs.FindBySlug(reqCtx, c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StoreResponse{
		CompanyResponse: newCompanyResponse(company),
		PaymentMethods: PaymentMethodsResponse{
			Pix:    company.PixKey != "",
			Credit: true,
			Debit:  true,
		},
	})
}

// Vouchers GET StoreGroup + StoreVouchersRoute.
func (h *StoreHandler) Vouchers(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.companySvs.FindBySlug(reqCtx, c.Param("slug")); err != nil {
		abortWithError(c, err)
		return
	}

	vouchers, err := h.voucherSvs.ListActive(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVoucherListResponse(vouchers))
}

// Voucher GET StoreGroup + StoreVoucherRoute. Неактивный ваучер не отдается.
func (h *StoreHandler) Voucher(c *gin.Context) {
	voucherID, ok := uuidParam(c, "voucher_id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if _, err := h.companySvs.FindBySlug(reqCtx, c.Param("slug")); err != nil {
		abortWithError(c, err)
		return
	}

	voucher, err := h.voucherSvs.GetActive(reqCtx, voucherID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newVoucherResponse(voucher))
}
