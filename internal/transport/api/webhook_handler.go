package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errEmptyBody = errors.New("empty webhook body")

type WebhookHandler struct {
	reconcileSvs ReconcileServicer
	verifier     SignatureVerifier
	dedup        WebhookDeduplicator
	l            *logrus.Entry
}

func NewWebhookHandler(
	reconcileSvs ReconcileServicer,
	verifier SignatureVerifier,
	dedup WebhookDeduplicator,
	l *logrus.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		reconcileSvs: reconcileSvs,
		verifier:     verifier,
		dedup:        dedup,
		l: l.WithFields(logrus.Fields{
			"component": "http",
			"module":    "webhook",
		}),
	}
}

// notificationID id в уведомлении шлюза приходит и строкой, и числом.
type notificationID string

func (n *notificationID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err //nolint:wrapcheck
		}
		*n = notificationID(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err //nolint:wrapcheck
	}
	*n = notificationID(num.String())
	return nil
}

type WebhookNotification struct {
	ID     notificationID `json:"id"`
	Action string         `json:"action"`
	Type   string         `json:"type"`
	Data   struct {
		ID notificationID `json:"id"`
	} `json:"data"`
}

// dataID id платежа из тела, с запасным вариантом из query параметров.
func (n *WebhookNotification) dataID(c *gin.Context) string {
	if n.Data.ID != "" {
		return string(n.Data.ID)
	}
	if id := c.Query("data.id"); id != "" {
		return id
	}
	return string(n.ID)
}

func (n *WebhookNotification) isPayment() bool {
	return n.Type == "payment" || n.Action == "payment.created" || n.Action == "payment.updated"
}

// Gateway POST WebhooksGroup + GatewayWebhookRoute. Уведомления шлюза о платежах.
//
// Отвечает 200 всегда, когда уведомление обработано или уже было обработано ранее, независимо от результата
// обработки, иначе шлюз будет бесконечно повторять доставку. 401 при неверной подписи, 400 при нечитаемом теле.
func (h *WebhookHandler) Gateway(c *gin.Context) {
	var notification WebhookNotification
	if err := bindNotification(c, &notification); err != nil {
		abortWithBindError(c, err)
		return
	}

	requestID := c.GetHeader("x-request-id")
	dataID := notification.dataID(c)
	l := h.l.WithFields(logrus.Fields{
		"requestID": requestID,
		"dataID":    dataID,
		"action":    notification.Action,
		"type":      notification.Type,
	})

	if h.verifier.Enabled() {
		if !h.verifier.Verify(c.GetHeader("x-signature"), requestID, dataID) {
			l.Warn("invalid webhook signature")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signature", "code": "unauthorized"})
			return
		}
	} else {
		l.Warn("webhook secret is not set, signature check skipped")
	}

	if !notification.isPayment() || dataID == "" {
		l.Debug("webhook ignored")
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, GatewayServiceTimeout)
	defer cancel()

	if requestID != "" {
		acquired, err := h.dedup.Acquire(reqCtx, requestID)
		switch {
		case err != nil:
			l.WithError(err).Warn("webhook dedup unavailable, processing anyway")
		case !acquired:
			l.Info("duplicate webhook delivery")
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
	}

	res, err := h.reconcileSvs.HandleNotification(reqCtx, dataID)
	if err != nil {
		l.WithError(err).Error("webhook processing failed")
		// освобождаем ключ, чтобы повторная доставка была обработана.
		if requestID != "" {
			if releaseErr := h.dedup.Release(context.WithoutCancel(reqCtx), requestID); releaseErr != nil {
				l.WithError(releaseErr).Warn("release webhook dedup key")
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if res != nil && res.Order != nil {
		l.WithFields(logrus.Fields{
			"orderID": res.Order.ID,
			"status":  res.Order.Status,
			"applied": res.Applied,
		}).Info("webhook processed")
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindNotification(c *gin.Context, dst *WebhookNotification) error {
	body, err := c.GetRawData()
	if err != nil {
		return err //nolint:wrapcheck
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}
	return json.Unmarshal(body, dst) //nolint:wrapcheck
}
