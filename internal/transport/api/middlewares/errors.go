package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Коды ошибок в теле ответа.
const (
	CodeBadRequest          = "bad_request"
	CodeValidation          = "validation_error"
	CodeUnauthorized        = "unauthorized"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeConflict            = "conflict"
	CodeAlreadyPaid         = "already_paid"
	CodeOrderNotPending     = "order_not_pending"
	CodePaymentNotFound     = "payment_not_initiated"
	CodePaymentNotConfirmed = "payment_not_confirmed"
	CodePaymentDeclined     = "payment_declined"
	CodeGatewayUnavailable  = "gateway_unavailable"
	CodeInternal            = "internal_error"
)

// ErrorMeta дополнительные данные ошибки, передаются через gin.Error.Meta.
type ErrorMeta struct {
	Code string
	// Message публичный текст ошибки вместо err.Error().
	Message string
	Detail  string
}

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusBadGateway:
		return "bad gateway"
	default:
		return "internal server error"
	}
}

func statusErrorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusConflict:
		return CodeConflict
	case http.StatusBadGateway:
		return CodeGatewayUnavailable
	default:
		return CodeInternal
	}
}

// Errors пишет ответ вида {"error": "...", "code": "..."} по первой ошибке контекста, если хендлер
// сам не записал тело ответа. Текст приватных ошибок наружу не отдается.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		status := c.Writer.Status()

		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(status)
		}

		body := gin.H{"error": msg, "code": statusErrorCode(status)}
		if meta, ok := firstErr.Meta.(ErrorMeta); ok {
			if meta.Code != "" {
				body["code"] = meta.Code
			}
			if meta.Message != "" {
				body["error"] = meta.Message
			}
			if meta.Detail != "" {
				body["detail"] = meta.Detail
			}
		}

		c.JSON(status, body)
		c.Abort()
	}
}
