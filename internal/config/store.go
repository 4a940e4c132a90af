package config

// Store holds the settings storage configuration.
// It is passed into the store at construction, there is no ambient
// storage location anywhere else in the application.
type Store struct {
	Path          string // path of the SQLite database file
	DefaultSuffix string // suffix seeded on first initialization
}
