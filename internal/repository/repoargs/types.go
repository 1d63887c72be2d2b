package repoargs

type RepositoryName string

const (
	UserRepoName    RepositoryName = "user"
	OrderRepoName   RepositoryName = "order"
	PaymentRepoName RepositoryName = "payment"
	VoucherRepoName RepositoryName = "voucher"
	CompanyRepoName RepositoryName = "company"
)

// Page параметры постраничной выборки.
type Page struct {
	Skip  uint
	Limit uint
}
