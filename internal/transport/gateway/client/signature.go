package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// SignatureVerifier проверяет подпись уведомлений шлюза (заголовок x-signature вида "ts=...,v1=...").
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// Enabled false, если секрет не задан и проверка подписи отключена.
func (v *SignatureVerifier) Enabled() bool {
	return len(v.secret) > 0
}

// Verify сверяет HMAC-SHA256 манифеста "id:{dataID};request-id:{requestID};ts:{ts};" со значением v1.
// Без секрета всегда возвращает true. Битый заголовок (нет ts или v1) дает false.
func (v *SignatureVerifier) Verify(signatureHeader, requestID, dataID string) bool {
	if !v.Enabled() {
		return true
	}

	ts, v1, ok := parseSignatureHeader(signatureHeader)
	if !ok {
		return false
	}

	expected := v.Sign(ts, requestID, dataID)
	return hmac.Equal([]byte(expected), []byte(v1))
}

// Sign возвращает hex HMAC-SHA256 манифеста.
func (v *SignatureVerifier) Sign(ts, requestID, dataID string) string {
	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (string, string, bool) {
	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	if ts == "" || v1 == "" {
		return "", "", false
	}
	return ts, v1, true
}
