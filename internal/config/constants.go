package config

// Date handling. Dates are stored and compared as ISO strings; for this
// format lexicographic order matches chronological order.
const DateFormat = "2006-01-02"

// Roster defaults.
const (
	DefaultRosterSize = 21
	DefaultNamePrefix = "Player"
)

// Durable store keys.
const (
	KeyRoster  = "roster"
	KeySeasons = "seasons"
	KeySession = "currentTrainingSession"
)

// Database/application settings.
const (
	AppName       = "rollcall"
	StoreFileName = "rollcall.db"
)
