package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "CIT Internet", want: "cit-internet"},
		{name: "accents", in: "Conexão Açaí Café", want: "conexao-acai-cafe"},
		{name: "punctuation", in: "Net & Co. Ltda!", want: "net-co-ltda"},
		{name: "separators", in: "  rede__wifi -- centro  ", want: "rede-wifi-centro"},
		{name: "digits", in: "Loja 24 Horas", want: "loja-24-horas"},
		{name: "empty", in: "   ", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.in))
		})
	}
}
