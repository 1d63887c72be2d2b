package pix

import (
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PayloadTestSuite struct {
	suite.Suite
}

func TestPayloadSuite(t *testing.T) {
	suite.Run(t, new(PayloadTestSuite))
}

var hexTail = regexp.MustCompile(`^[0-9A-F]{4}$`)

func (s *PayloadTestSuite) TestCRC16() {
	// контрольное значение CRC-16/CCITT-FALSE.
	s.Equal("29B1", CRC16([]byte("123456789")))
	s.Equal("FFFF", CRC16(nil))

	first := CRC16([]byte("000201"))
	s.Equal(first, CRC16([]byte("000201")))
	s.Regexp(hexTail, first)
}

func (s *PayloadTestSuite) TestBuildPayload() {
	payload, err := BuildPayload(PayloadArgs{
		Amount:         decimal.RequireFromString("25.00"),
		PixKey:         "a@b.com",
		OrderReference: "ORDID1234",
	})
	s.Require().NoError(err)

	s.True(strings.HasPrefix(payload, "000201"))
	s.Contains(payload, "0014br.gov.bcb.pix0107a@b.com")
	s.Contains(payload, "540525.00")
	s.Contains(payload, "5802BR")
	s.Contains(payload, "5912CIT Internet")
	s.Contains(payload, "6009SAO PAULO")
	// ORDER + первые 8 символов ссылки.
	s.Contains(payload, "62170513ORDERORDID123")

	tail := payload[len(payload)-4:]
	s.Regexp(hexTail, tail)
	body := payload[:len(payload)-4]
	s.True(strings.HasSuffix(body, "6304"))
	s.Equal(CRC16([]byte(body)), tail)
	s.True(Validate(payload))

	again, againErr := BuildPayload(PayloadArgs{
		Amount:         decimal.RequireFromString("25"),
		PixKey:         "a@b.com",
		OrderReference: "ORDID1234",
	})
	s.Require().NoError(againErr)
	s.Equal(payload, again)
}

func (s *PayloadTestSuite) TestBuildPayload_Errors() {
	cases := []struct {
		name    string
		args    PayloadArgs
		wantErr error
	}{
		{
			name:    "zero amount",
			args:    PayloadArgs{Amount: decimal.Zero, PixKey: "key", OrderReference: "ref"},
			wantErr: ErrInvalidAmount,
		}, {
			name:    "below minimum",
			args:    PayloadArgs{Amount: decimal.RequireFromString("0.009"), PixKey: "key", OrderReference: "ref"},
			wantErr: ErrInvalidAmount,
		}, {
			name:    "empty key",
			args:    PayloadArgs{Amount: decimal.NewFromInt(1), OrderReference: "ref"},
			wantErr: ErrEmptyPixKey,
		}, {
			name: "key overflows merchant account",
			args: PayloadArgs{
				Amount:         decimal.NewFromInt(1),
				PixKey:         strings.Repeat("k", 90),
				OrderReference: "ref",
			},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			payload, err := BuildPayload(t.args)
			s.Empty(payload)
			s.ErrorIs(err, t.wantErr)
		})
	}
}

func (s *PayloadTestSuite) TestReferenceLabel() {
	cases := []struct {
		ref  string
		want string
	}{
		{ref: "ORDID1234", want: "ORDERORDID123"},
		{ref: "abc", want: "ORDERabc"},
		{ref: "", want: "ORDER"},
		// срез по символам, а не по байтам.
		{ref: "pedidoção123", want: "ORDERpedidoçã"},
	}
	for _, t := range cases {
		s.Run(t.ref, func() {
			s.Equal(t.want, referenceLabel(t.ref))
		})
	}
}

func (s *PayloadTestSuite) TestBuildPayload_MerchantFields() {
	payload, err := BuildPayload(PayloadArgs{
		Amount:         decimal.NewFromInt(5),
		PixKey:         "key",
		OrderReference: "ref",
		MerchantName:   "Lan House Conexão São João do Brasil",
		MerchantCity:   "São José dos Campos",
	})
	s.Require().NoError(err)
	s.Contains(payload, "5925Lan House Conexao Sao Joa")
	s.Contains(payload, "6015Sao Jose dos Ca")
	s.True(Validate(payload))

	// значение без печатных ASCII символов заменяется значением по умолчанию.
	payload, err = BuildPayload(PayloadArgs{
		Amount:         decimal.NewFromInt(5),
		PixKey:         "key",
		OrderReference: "ref",
		MerchantName:   strings.Repeat("n", 100),
		MerchantCity:   "東京",
	})
	s.Require().NoError(err)
	s.Contains(payload, "5925"+strings.Repeat("n", 25))
	s.Contains(payload, "6009SAO PAULO")
}

func (s *PayloadTestSuite) TestValidate() {
	payload, err := BuildPayload(PayloadArgs{
		Amount:         decimal.RequireFromString("10.50"),
		PixKey:         "contato@cit.com",
		OrderReference: "b7c1d2e3-0000-0000-0000-000000000000",
	})
	s.Require().NoError(err)
	s.True(Validate(payload))

	tampered := strings.Replace(payload, "10.50", "10.51", 1)
	s.False(Validate(tampered))
	s.False(Validate("6304"))
}
