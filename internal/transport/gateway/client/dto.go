package client

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type QRChargeArgs struct {
	Amount            decimal.Decimal
	Description       string
	ExternalReference string
}

type QRCharge struct {
	OrderID string
	QRData  string
}

type Payer struct {
	Email                string
	FirstName            string
	LastName             string
	IdentificationType   string
	IdentificationNumber string
}

type CardChargeArgs struct {
	Amount            decimal.Decimal
	Description       string
	ExternalReference string
	Token             string
	Installments      int
	PaymentMethodID   string
	Payer             Payer
}

type CardCharge struct {
	PaymentID      string
	Status         CardStatusType
	GatewayStatus  string
	StatusDetail   string
	Installments   int
	LastFourDigits string
}

type StatusResult struct {
	Status        CheckStatusType
	GatewayStatus string
	PaymentID     string
}

type Payment struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
}

// Ниже структуры тел запросов/ответов API шлюза.

type orderRequest struct {
	Type              string             `json:"type"`
	TotalAmount       string             `json:"total_amount"`
	Description       string             `json:"description"`
	ExternalReference string             `json:"external_reference"`
	ExpirationTime    string             `json:"expiration_time"`
	Config            orderConfig        `json:"config"`
	Transactions      orderTransactions  `json:"transactions"`
	Items             []orderRequestItem `json:"items"`
}

type orderConfig struct {
	QR orderQRConfig `json:"qr"`
}

type orderQRConfig struct {
	Mode string `json:"mode"`
}

type orderTransactions struct {
	Payments []orderPayment `json:"payments"`
}

type orderPayment struct {
	Amount string `json:"amount"`
}

type orderRequestItem struct {
	Title     string `json:"title"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	ID           string `json:"id"`
	TypeResponse struct {
		QRData string `json:"qr_data"`
	} `json:"type_response"`
}

type paymentRequest struct {
	TransactionAmount json.Number  `json:"transaction_amount"`
	Token             string       `json:"token"`
	Description       string       `json:"description"`
	Installments      int          `json:"installments"`
	PaymentMethodID   string       `json:"payment_method_id,omitempty"`
	ExternalReference string       `json:"external_reference"`
	Payer             paymentPayer `json:"payer"`
}

type paymentPayer struct {
	Email          string                `json:"email"`
	FirstName      string                `json:"first_name,omitempty"`
	LastName       string                `json:"last_name,omitempty"`
	Identification *payerIdentification `json:"identification,omitempty"`
}

type payerIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type paymentResponse struct {
	ID                jsonID `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	ExternalReference string `json:"external_reference"`
	Installments      int    `json:"installments"`
	Card              struct {
		LastFourDigits string `json:"last_four_digits"`
	} `json:"card"`
}

type paymentErrorResponse struct {
	Message string `json:"message"`
	Cause   []struct {
		Code        any    `json:"code"`
		Description string `json:"description"`
	} `json:"cause"`
}

type searchResponse struct {
	Results []paymentResponse `json:"results"`
}
