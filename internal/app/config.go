package app

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// DefaultBackendURL is where a locally run marketplace backend listens.
const DefaultBackendURL = "http://localhost:8000"

// Environment keys, also honoured from a .env file in the working directory.
const (
	EnvBackendURL = "MICROMARKET_BACKEND_URL"
	EnvHome       = "MICROMARKET_HOME"
	EnvLogLevel   = "MICROMARKET_LOG_LEVEL"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string       // session dir, e.g. $HOME/.micromarket
	BackendURL string       // marketplace API base URL
	LogLevel   string       // zerolog level name; empty means warn
	HTTP       *http.Client // optional; defaults to http.DefaultClient
}

// FromEnv fills unset fields from the environment, reading a .env file
// first when one is present. Values already set (flags) win.
func (c Config) FromEnv() Config {
	_ = godotenv.Load()

	if c.BackendURL == "" {
		c.BackendURL = os.Getenv(EnvBackendURL)
	}
	if c.BackendURL == "" {
		c.BackendURL = DefaultBackendURL
	}
	if c.Home == "" {
		c.Home = os.Getenv(EnvHome)
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv(EnvLogLevel)
	}
	return c
}
