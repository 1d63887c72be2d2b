// Package pix собирает BR Code (EMV TLV) для статических PIX платежей.
package pix

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultMerchantName = "CIT Internet"
	DefaultMerchantCity = "SAO PAULO"

	gui               = "br.gov.bcb.pix"
	referencePrefix   = "ORDER"
	referenceChars    = 8
	maxMerchantName   = 25
	maxMerchantCity   = 15
	maxFieldLength    = 99
	crcTrailer        = "6304"
	crcLength         = 4
	payloadFormat     = "01"
	merchantCategory  = "0000"
	currencyBRL       = "986"
	countryCode       = "BR"
	amountDecimalsFix = 2
)

// Теги полей BR Code.
const (
	tagPayloadFormat    = "00"
	tagMerchantAccount  = "26"
	tagMerchantCategory = "52"
	tagCurrency         = "53"
	tagAmount           = "54"
	tagCountry          = "58"
	tagMerchantName     = "59"
	tagMerchantCity     = "60"
	tagAdditionalData   = "62"

	tagGUI       = "00"
	tagPixKey    = "01"
	tagReference = "05"
)

var (
	ErrInvalidAmount = errors.New("amount must be at least 0.01")
	ErrEmptyPixKey   = errors.New("pix key is empty")
	ErrFieldTooLong  = errors.New("field value exceeds 99 bytes")
)

var minAmount = decimal.New(1, -2)

// FieldError ошибка конкретного поля. Оборачивает ErrFieldTooLong.
type FieldError struct {
	Tag    string
	Length int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("pix field %s: %d bytes: %s", e.Tag, e.Length, ErrFieldTooLong.Error())
}

func (e *FieldError) Unwrap() error {
	return ErrFieldTooLong
}

type PayloadArgs struct {
	Amount         decimal.Decimal
	PixKey         string
	OrderReference string
	// MerchantName и MerchantCity приводятся к ASCII без диакритики и обрезаются до 25 и 15 символов.
	// Пустые (в том числе после очистки) заменяются значениями по умолчанию.
	MerchantName string
	MerchantCity string
}

// BuildPayload собирает BR Code строку. Результат детерминирован для одинаковых аргументов.
//
// Ошибки: ErrInvalidAmount, ErrEmptyPixKey, *FieldError (errors.Is(err, ErrFieldTooLong)).
func BuildPayload(args PayloadArgs) (string, error) {
	if args.Amount.LessThan(minAmount) {
		return "", ErrInvalidAmount
	}
	if args.PixKey == "" {
		return "", ErrEmptyPixKey
	}

	merchantName := merchantText(args.MerchantName, maxMerchantName)
	if merchantName == "" {
		merchantName = DefaultMerchantName
	}
	merchantCity := merchantText(args.MerchantCity, maxMerchantCity)
	if merchantCity == "" {
		merchantCity = DefaultMerchantCity
	}

	var b tlvBuilder

	account := new(tlvBuilder)
	account.add(tagGUI, gui)
	account.add(tagPixKey, args.PixKey)
	if account.err != nil {
		return "", account.err
	}

	additional := new(tlvBuilder)
	additional.add(tagReference, referenceLabel(args.OrderReference))
	if additional.err != nil {
		return "", additional.err
	}

	b.add(tagPayloadFormat, payloadFormat)
	b.add(tagMerchantAccount, account.String())
	b.add(tagMerchantCategory, merchantCategory)
	b.add(tagCurrency, currencyBRL)
	b.add(tagAmount, args.Amount.StringFixed(amountDecimalsFix))
	b.add(tagCountry, countryCode)
	b.add(tagMerchantName, merchantName)
	b.add(tagMerchantCity, merchantCity)
	b.add(tagAdditionalData, additional.String())
	if b.err != nil {
		return "", b.err
	}

	payload := b.String() + crcTrailer
	return payload + CRC16([]byte(payload)), nil
}

// Validate проверяет, что последние 4 символа payload совпадают с CRC16 остальной строки.
func Validate(payload string) bool {
	if len(payload) < len(crcTrailer)+crcLength {
		return false
	}
	body, crc := payload[:len(payload)-crcLength], payload[len(payload)-crcLength:]
	if !strings.HasSuffix(body, crcTrailer) {
		return false
	}
	return CRC16([]byte(body)) == crc
}

// referenceLabel ORDER + первые 8 символов (рун) ссылки.
func referenceLabel(orderReference string) string {
	ref := []rune(orderReference)
	if len(ref) > referenceChars {
		ref = ref[:referenceChars]
	}
	return referencePrefix + string(ref)
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// merchantText убирает диакритику и символы вне печатного ASCII, затем обрезает до limit символов.
func merchantText(value string, limit int) string {
	folded, _, err := transform.String(foldDiacritics, value)
	if err != nil {
		folded = value
	}

	var b strings.Builder
	for _, r := range folded {
		if r >= ' ' && r <= '~' {
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if len(out) > limit {
		out = strings.TrimSpace(out[:limit])
	}
	return out
}

// tlvBuilder накапливает поля и запоминает первую ошибку.
type tlvBuilder struct {
	sb  strings.Builder
	err error
}

func (t *tlvBuilder) add(tag, value string) {
	if t.err != nil {
		return
	}
	if len(value) > maxFieldLength {
		t.err = &FieldError{Tag: tag, Length: len(value)}
		return
	}
	t.sb.WriteString(tag)
	t.sb.WriteString(fmt.Sprintf("%02d", len(value)))
	t.sb.WriteString(value)
}

func (t *tlvBuilder) String() string {
	return t.sb.String()
}
