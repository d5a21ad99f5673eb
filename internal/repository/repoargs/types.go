package repoargs

type RepositoryName string

const (
	UserRepoName    RepositoryName = "user"
	GroupRepoName   RepositoryName = "group"
	ExpenseRepoName RepositoryName = "expense"
	PaymentRepoName RepositoryName = "payment"
	BalanceRepoName RepositoryName = "balance"
)
