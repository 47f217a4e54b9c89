package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang-devtools/internal/pkg/logging"
	"golang-devtools/internal/pkg/password"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DEVTOOLS_"

// ServerConfig represents the HTTP API settings
type ServerConfig struct {
	Listen          string        `yaml:"listen"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RateLimit       float64       `yaml:"rate_limit"` // requests per second per client, 0 disables
	RateBurst       int           `yaml:"rate_burst"`
	MaxBodySize     int64         `yaml:"max_body_size"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	TrustedProxies  []string      `yaml:"trusted_proxies"` // addresses or CIDRs allowed to set X-Forwarded-For
}

// TrustedProxyPrefixes parses TrustedProxies. Bare addresses become
// single-host prefixes.
func (s ServerConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, p := range s.TrustedProxies {
		if strings.Contains(p, "/") {
			prefix, err := netip.ParsePrefix(p)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", p, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(p)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", p, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// GeoConfig represents the geolocation service settings
type GeoConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// QRConfig represents the QR image service settings
type QRConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Output  string        `yaml:"output"`
}

// PasswordConfig holds the generator defaults
type PasswordConfig struct {
	Length    int  `yaml:"length"`
	Uppercase bool `yaml:"uppercase"`
	Lowercase bool `yaml:"lowercase"`
	Numbers   bool `yaml:"numbers"`
	Symbols   bool `yaml:"symbols"`
}

// Options converts the defaults into generator options.
func (p PasswordConfig) Options() password.Options {
	return password.Options{
		Length:    p.Length,
		Uppercase: p.Uppercase,
		Lowercase: p.Lowercase,
		Numbers:   p.Numbers,
		Symbols:   p.Symbols,
	}
}

// TimestampConfig selects the zone used for local dates
type TimestampConfig struct {
	Timezone string `yaml:"timezone"` // IANA name, "Local" or "UTC"
}

// Config represents the main configuration structure
type Config struct {
	Logging   logging.LogConfig `yaml:"logging"`
	Server    ServerConfig      `yaml:"server"`
	Geo       GeoConfig         `yaml:"geo"`
	QR        QRConfig          `yaml:"qr"`
	Password  PasswordConfig    `yaml:"password"`
	Timestamp TimestampConfig   `yaml:"timestamp"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warn",
			Format: "simple",
		},
		Server: ServerConfig{
			Listen:          ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       10,
			RateBurst:       20,
			MaxBodySize:     1 << 20,
			CORSOrigins:     []string{"*"},
		},
		Geo: GeoConfig{
			Endpoint: "https://ipapi.co/",
			Timeout:  10 * time.Second,
		},
		QR: QRConfig{
			BaseURL: "https://api.qrserver.com/v1/create-qr-code/",
			Timeout: 15 * time.Second,
			Output:  "qr-code.png",
		},
		Password: PasswordConfig{
			Length:    password.DefaultLength,
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
		},
		Timestamp: TimestampConfig{
			Timezone: "Local",
		},
	}
}

// Load loads configuration from a YAML file on top of Default
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// LoadWithEnv loads the optional YAML file, then .env files, then applies
// DEVTOOLS_* overrides and validates the result
func LoadWithEnv(configPath string, envFiles ...string) (*Config, error) {
	config := Default()
	if configPath != "" {
		var err error
		if config, err = Load(configPath); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// loadDotEnv reads .env style files without overriding variables already set.
// Missing files are ignored.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from DEVTOOLS_* variables returned by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	str("LISTEN", &c.Server.Listen)
	str("GEO_ENDPOINT", &c.Geo.Endpoint)
	str("QR_BASE_URL", &c.QR.BaseURL)
	str("QR_OUTPUT", &c.QR.Output)
	str("TIMEZONE", &c.Timestamp.Timezone)

	if v, ok := lookup(EnvPrefix + "RATE_LIMIT"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_LIMIT %q: %w", EnvPrefix, v, err)
		}
		c.Server.RateLimit = f
	}
	if v, ok := lookup(EnvPrefix + "RATE_BURST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_BURST %q: %w", EnvPrefix, v, err)
		}
		c.Server.RateBurst = n
	}
	if v, ok := lookup(EnvPrefix + "CORS_ORIGINS"); ok && v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "TRUSTED_PROXIES"); ok && v != "" {
		c.Server.TrustedProxies = splitList(v)
	}
	return nil
}

func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	switch c.Timestamp.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Timestamp.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timestamp.Timezone, err)
	}
	return loc, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server: listen address is required")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server: rate_limit must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		return fmt.Errorf("server: rate_burst must be at least 1 when rate limiting is enabled")
	}
	if c.Server.MaxBodySize <= 0 {
		return fmt.Errorf("server: max_body_size must be positive")
	}
	if _, err := c.Server.TrustedProxyPrefixes(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := validateURL("geo", "endpoint", c.Geo.Endpoint); err != nil {
		return err
	}
	if err := validateURL("qr", "base_url", c.QR.BaseURL); err != nil {
		return err
	}

	if c.Password.Length < password.MinLength || c.Password.Length > password.MaxLength {
		return fmt.Errorf("password: length must be between %d and %d", password.MinLength, password.MaxLength)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	return nil
}

func validateURL(section, field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s: %s is required", section, field)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s: %s must be an absolute http(s) URL, got %q", section, field, raw)
	}
	return nil
}
