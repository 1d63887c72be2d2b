package repoargs

import "github.com/shopspring/decimal"

type CreateVoucher struct {
	Name        string
	Hours       decimal.Decimal
	Price       decimal.Decimal
	Active      bool
	Description *string
}

// UpdateVoucher частичное обновление, nil поля не меняются.
type UpdateVoucher struct {
	Name        *string
	Hours       *decimal.Decimal
	Price       *decimal.Decimal
	Active      *bool
	Description *string
}
