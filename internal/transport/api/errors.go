package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/fsdevblog/cit-vouchers/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// abortWithError прерывает запрос с http статусом, соответствующим доменной ошибке. Само тело ответа пишет
// middlewares.Errors.
func abortWithError(c *gin.Context, err error) {
	var declined *domain.PaymentDeclinedError
	if errors.As(err, &declined) {
		abort(c, http.StatusPaymentRequired, err, middlewares.ErrorMeta{
			Code:    middlewares.CodePaymentDeclined,
			Message: "payment declined",
			Detail:  declined.Detail,
		})
		return
	}

	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			abort(c, m.status, err, middlewares.ErrorMeta{Code: m.code, Message: m.err.Error()})
			return
		}
	}

	c.Status(http.StatusInternalServerError)
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.Abort()
}

var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrRecordNotFound, http.StatusNotFound, middlewares.CodeNotFound},
	{domain.ErrOwnerConflict, http.StatusForbidden, middlewares.CodeForbidden},
	{domain.ErrOrderAlreadyPaid, http.StatusConflict, middlewares.CodeAlreadyPaid},
	{domain.ErrOrderNotPending, http.StatusConflict, middlewares.CodeOrderNotPending},
	{domain.ErrDuplicateKey, http.StatusConflict, middlewares.CodeConflict},
	{domain.ErrPaymentNotFound, http.StatusNotFound, middlewares.CodePaymentNotFound},
	{domain.ErrPaymentNotConfirmed, http.StatusBadRequest, middlewares.CodePaymentNotConfirmed},
	{domain.ErrInvalidPaymentMethod, http.StatusBadRequest, middlewares.CodeValidation},
	{domain.ErrPaymentMethodChanged, http.StatusBadRequest, middlewares.CodeValidation},
	{domain.ErrCardTokenRequired, http.StatusBadRequest, middlewares.CodeValidation},
	{domain.ErrVoucherInactive, http.StatusBadRequest, middlewares.CodeValidation},
	{domain.ErrConstraintViolation, http.StatusBadRequest, middlewares.CodeValidation},
	{domain.ErrGatewayUnavailable, http.StatusBadGateway, middlewares.CodeGatewayUnavailable},
}

// abortWithBindError ошибки валидации отдает с 422, остальные ошибки разбора тела с 400.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		abort(c, http.StatusUnprocessableEntity, err, middlewares.ErrorMeta{Code: middlewares.CodeValidation})
		return
	}
	c.Status(http.StatusBadRequest)
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.Abort()
}

func abort(c *gin.Context, status int, err error, meta middlewares.ErrorMeta) {
	c.Status(status)
	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(meta)
	c.Abort()
}
