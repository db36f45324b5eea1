package store

type Repository interface {
	// Account Operations
	CreateAccount(acc Account) error
	EnableCurrency(code, asset string) error
	GetAllAccounts() ([]*Account, error)
	GetAccountByCode(code string) (*Account, error)
	AccountExists(code string) (bool, error)

	// Journal Operations
	CreateJournal(j Journal, records []Record) (int64, error)
	GetJournal(id string) (*Journal, []*Record, error)
	GetAllJournals() ([]*Journal, error)
	GetRecentJournals(limit int) ([]*Journal, error)
	GetJournalsByAccount(code string, limit int) ([]*Journal, error)
	GetRecordsByJournal(id string) ([]*Record, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}
