// Package client HTTP клиент платежного шлюза (API совместимый с Mercado Pago).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	RouteOrders         = "/v1/orders"
	RoutePayments       = "/v1/payments"
	RoutePayment        = "/v1/payments/%s"
	RoutePaymentsSearch = "/v1/payments/search"

	DefaultTimeout = 30 * time.Second

	idempotencyHeader   = "X-Idempotency-Key"
	cardIdempotencyPref = "card-"
	qrExpiration        = "PT1H"
	maxErrorBodyLength  = 512
)

// HTTPClient реализация клиента шлюза поверх net/http. Хранилище не трогает.
type HTTPClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func New(baseURL, accessToken string) *HTTPClient {
	return &HTTPClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout переопределяет таймаут HTTP запросов.
func (c *HTTPClient) SetTimeout(timeout time.Duration) *HTTPClient {
	c.httpClient.Timeout = timeout
	return c
}

// CreateQRCharge создает QR заказ для PIX оплаты. Ключ идемпотентности равен ExternalReference, поэтому повторный
// вызов не создает дубликат на стороне шлюза.
func (c *HTTPClient) CreateQRCharge(ctx context.Context, args QRChargeArgs) (*QRCharge, error) {
	amount := args.Amount.StringFixed(2) //nolint:mnd
	body := orderRequest{
		Type:              "qr",
		TotalAmount:       amount,
		Description:       args.Description,
		ExternalReference: args.ExternalReference,
		ExpirationTime:    qrExpiration,
		Config:            orderConfig{QR: orderQRConfig{Mode: "dynamic"}},
		Transactions:      orderTransactions{Payments: []orderPayment{{Amount: amount}}},
		Items: []orderRequestItem{{
			Title:     args.Description,
			UnitPrice: amount,
			Quantity:  1,
		}},
	}

	var resp orderResponse
	status, raw, err := c.do(ctx, http.MethodPost, RouteOrders, body, args.ExternalReference)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, NewStatusCodeError(status, truncate(raw))
	}
	if jsonErr := json.Unmarshal(raw, &resp); jsonErr != nil {
		return nil, fmt.Errorf("parse qr order response: %s", jsonErr.Error())
	}
	if resp.ID == "" || resp.TypeResponse.QRData == "" {
		return nil, errors.New("qr order response without id or qr data")
	}
	return &QRCharge{OrderID: resp.ID, QRData: resp.TypeResponse.QRData}, nil
}

// CreateCardCharge проводит карточный платеж. Ответ 4xx шлюза считается отказом (CardRejected) с описанием
// причины, 5xx и сетевые ошибки возвращаются ошибкой.
func (c *HTTPClient) CreateCardCharge(ctx context.Context, args CardChargeArgs) (*CardCharge, error) {
	installments := args.Installments
	if installments < 1 {
		installments = 1
	}
	body := paymentRequest{
		TransactionAmount: json.Number(args.Amount.StringFixed(2)), //nolint:mnd
		Token:             args.Token,
		Description:       args.Description,
		Installments:      installments,
		PaymentMethodID:   args.PaymentMethodID,
		ExternalReference: args.ExternalReference,
		Payer: paymentPayer{
			Email:     args.Payer.Email,
			FirstName: args.Payer.FirstName,
			LastName:  args.Payer.LastName,
		},
	}
	if args.Payer.IdentificationNumber != "" {
		body.Payer.Identification = &payerIdentification{
			Type:   args.Payer.IdentificationType,
			Number: args.Payer.IdentificationNumber,
		}
	}

	status, raw, err := c.do(ctx, http.MethodPost, RoutePayments, body, cardIdempotencyPref+args.ExternalReference)
	if err != nil {
		return nil, err
	}

	switch {
	case status >= http.StatusInternalServerError:
		return nil, NewStatusCodeError(status, truncate(raw))
	case status >= http.StatusBadRequest:
		return &CardCharge{
			Status:       CardRejected,
			StatusDetail: rejectionDetail(raw),
			Installments: installments,
		}, nil
	}

	var resp paymentResponse
	if jsonErr := json.Unmarshal(raw, &resp); jsonErr != nil {
		return nil, fmt.Errorf("parse card payment response: %s", jsonErr.Error())
	}
	return &CardCharge{
		PaymentID:      string(resp.ID),
		Status:         mapCardStatus(resp.Status),
		GatewayStatus:  resp.Status,
		StatusDetail:   resp.StatusDetail,
		Installments:   resp.Installments,
		LastFourDigits: resp.Card.LastFourDigits,
	}, nil
}

// CheckStatus ищет последний платеж по externalReference. Ответ отличный от 200 или пустой список
// результатов дают CheckPending. Сетевые ошибки оборачивают ErrTransport, решение о них принимает вызывающий.
func (c *HTTPClient) CheckStatus(ctx context.Context, externalReference string) (*StatusResult, error) {
	route := RoutePaymentsSearch + "?" + url.Values{
		"external_reference": {externalReference},
		"sort":               {"date_created"},
		"criteria":           {"desc"},
	}.Encode()

	status, raw, err := c.do(ctx, http.MethodGet, route, nil, "")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return &StatusResult{Status: CheckPending}, nil
	}

	var resp searchResponse
	if jsonErr := json.Unmarshal(raw, &resp); jsonErr != nil || len(resp.Results) == 0 {
		return &StatusResult{Status: CheckPending}, nil //nolint:nilerr
	}
	latest := resp.Results[0]
	return &StatusResult{
		Status:        mapCheckStatus(latest.Status),
		GatewayStatus: latest.Status,
		PaymentID:     string(latest.ID),
	}, nil
}

// GetPayment возвращает детали платежа по его id в шлюзе.
func (c *HTTPClient) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	status, raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf(RoutePayment, url.PathEscape(paymentID)), nil, "")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, NewStatusCodeError(status, truncate(raw))
	}

	var resp paymentResponse
	if jsonErr := json.Unmarshal(raw, &resp); jsonErr != nil {
		return nil, fmt.Errorf("parse payment response: %s", jsonErr.Error())
	}
	return &Payment{
		ID:                string(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
	}, nil
}

// do выполняет запрос и возвращает статус и тело ответа. Ошибки соединения оборачиваются в ErrTransport.
//
//nolint:nonamedreturns
func (c *HTTPClient) do(
	ctx context.Context,
	method, route string,
	payload any,
	idempotencyKey string,
) (status int, body []byte, err error) {
	var reqBody io.Reader
	if payload != nil {
		data, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return 0, nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, c.baseURL+route, reqBody)
	if reqErr != nil {
		return 0, nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set(idempotencyHeader, idempotencyKey)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return 0, nil, errors.Wrapf(ErrTransport, "%s %s: %s", method, route, doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response body")
		}
	}()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return 0, nil, errors.Wrapf(ErrTransport, "read response: %s", readErr.Error())
	}
	return resp.StatusCode, body, nil
}

// rejectionDetail достает описание причины отказа из тела ошибки шлюза.
func rejectionDetail(raw []byte) string {
	var errResp paymentErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		return "payment rejected"
	}
	if len(errResp.Cause) > 0 && errResp.Cause[0].Description != "" {
		return errResp.Cause[0].Description
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	return "payment rejected"
}

func truncate(raw []byte) string {
	if len(raw) > maxErrorBodyLength {
		return string(raw[:maxErrorBodyLength])
	}
	return string(raw)
}

// jsonID принимает id как в виде числа, так и строки.
type jsonID string

func (j *jsonID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		s = ""
	}
	*j = jsonID(s)
	return nil
}
