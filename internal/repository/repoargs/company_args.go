package repoargs

type SaveCompany struct {
	Name         string
	Slug         string
	CNPJ         string
	Email        string
	Phone        string
	Address      string
	Logo         *string
	PixKey       string
	MerchantName string
	MerchantCity string
}
