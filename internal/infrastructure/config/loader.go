// Package config assembles the immutable runtime configuration. Precedence:
// environment variables override the optional YAML file; the platform secret
// store is consulted last, and only for a missing API key.
package config

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/localhelp/internal/domain"
	"github.com/doeshing/localhelp/internal/ports"
)

// Environment variable names, read once at startup.
const (
	EnvProvider = "LOCALHELP_LLM_PROVIDER"
	EnvAPIKey   = "LOCALHELP_API_KEY"
	EnvAPIURL   = "LOCALHELP_API_URL"
	EnvModel    = "LOCALHELP_MODEL"
	EnvDev      = "LOCALHELP_DEV"
	EnvConfig   = "LOCALHELP_CONFIG"
)

// fileConfig mirrors ~/.localhelp/config.yaml.
type fileConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	APIURL   string `yaml:"api_url"`
	Model    string `yaml:"model"`
	Dev      bool   `yaml:"dev"`
}

// Loader builds a domain.Config.
type Loader struct {
	overridePath string
	secrets      ports.SecretStore
	logger       ports.Logger
}

// NewLoader builds a loader. The secret store may be nil, in which case the
// keychain step is skipped.
func NewLoader(path string, secrets ports.SecretStore, logger ports.Logger) *Loader {
	return &Loader{overridePath: path, secrets: secrets, logger: logger}
}

// Load reads the file, applies environment overrides, and falls back to the
// secret store for a missing credential. Secret store failures are absorbed
// into "no credential available".
func (l *Loader) Load() (domain.Config, error) {
	fileCfg, err := l.readFile()
	if err != nil {
		return domain.Config{}, err
	}

	rawProvider := firstNonEmpty(os.Getenv(EnvProvider), fileCfg.Provider)
	cfg := domain.Config{
		Provider: domain.ParseProvider(rawProvider),
		APIKey:   firstNonEmpty(os.Getenv(EnvAPIKey), fileCfg.APIKey),
		APIURL:   firstNonEmpty(os.Getenv(EnvAPIURL), fileCfg.APIURL),
		Model:    firstNonEmpty(os.Getenv(EnvModel), fileCfg.Model),
		Debug:    isDevEnabled() || fileCfg.Dev,
	}

	if cfg.APIKey == "" && cfg.NeedsAPIKey() && l.secrets != nil {
		cfg.APIKey = l.lookupSecret(cfg.Provider)
	}

	return cfg, nil
}

func (l *Loader) lookupSecret(provider domain.Provider) string {
	service := "localhelp-" + string(provider)
	account := currentUser()
	key, err := l.secrets.Get(service, account)
	if err != nil {
		if l.logger != nil {
			l.logger.Debug("secret store lookup failed", map[string]interface{}{
				"service": service, "account": account, "error": err.Error(),
			})
		}
		return ""
	}
	return key
}

func (l *Loader) readFile() (fileConfig, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func (l *Loader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv(EnvConfig); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".localhelp", "config.yaml")
}

func isDevEnabled() bool {
	value := os.Getenv(EnvDev)
	return strings.EqualFold(value, "true") || value == "1"
}

// currentUser resolves the account name for keychain lookups: USER first,
// then a whoami subprocess.
func currentUser() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	out, err := exec.Command("whoami").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
