package constants

const (
	MaxNameLen = 100
	MaxCodeLen = 16
)

const (
	// DefaultJournalLimit caps journal listings when no limit is given.
	DefaultJournalLimit = 20
	DateFormat          = "2006-01-02 15:04"
)

// ReservedNames are the report section headings; accounts can't reuse them.
var ReservedNames = map[string]bool{
	"assets":      true,
	"liabilities": true,
	"equity":      true,
	"revenue":     true,
	"expenses":    true,
}
