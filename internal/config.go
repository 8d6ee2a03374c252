package config

// DefaultEndpoint is the API endpoint written on first run.
const DefaultEndpoint = "http://localhost:3000"

// DefaultTheme is the presentation theme written on first run.
const DefaultTheme = "light"

// Config represents user settings stored on disk.
// Unset identity fields serialize as JSON null.
type Config struct {
	User  UserConfig `json:"user"`
	API   APIConfig  `json:"api"`
	Theme string     `json:"theme"`
}

// UserConfig identifies the logged-in builder.
type UserConfig struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Squad *string `json:"squad"`
}

// APIConfig points at the guild backend. Nothing reads Key yet; it is kept
// for authenticated requests once a backend exists.
type APIConfig struct {
	Endpoint string  `json:"endpoint"`
	Key      *string `json:"key"`
}

// Default returns the configuration written when no file exists.
func Default() Config {
	return Config{
		API:   APIConfig{Endpoint: DefaultEndpoint},
		Theme: DefaultTheme,
	}
}

// UserName returns the stored user name, or "" when unset.
func (c Config) UserName() string {
	return deref(c.User.Name)
}

// UserSquad returns the stored squad, or "" when unset.
func (c Config) UserSquad() string {
	return deref(c.User.Squad)
}

// UserID returns the stored user id, or "" when unset.
func (c Config) UserID() string {
	return deref(c.User.ID)
}

// StringPtr returns a pointer to s. Handy when filling optional fields.
func StringPtr(s string) *string { return &s }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
