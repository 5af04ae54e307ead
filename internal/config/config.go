package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const AuthModeBasic = "basic"

var (
	ErrUnsupportedAuthMode = errors.New("config: unsupported fineract auth mode")
	ErrInvalidPort         = errors.New("config: invalid port")
	ErrInvalidTimeout      = errors.New("config: timeouts must be positive")
)

type Config struct {
	EnvName         string        `env:"ENV_NAME" envDefault:"production"`
	LogLevel        string        `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	Fineract Fineract
	SDK      SDK
	Server   Server
	Breaker  Breaker
}

type Fineract struct {
	BaseURL         string        `env:"FINERACT_BASE_URL,required,notEmpty"`
	TenantID        string        `env:"FINERACT_TENANT_ID,required,notEmpty"`
	AuthMode        string        `env:"FINERACT_AUTH_MODE,required,notEmpty"`
	Username        string        `env:"FINERACT_USERNAME,required,notEmpty"`
	Password        string        `env:"FINERACT_PASSWORD,required,notEmpty"`
	BankID          string        `env:"FINERACT_BANK_ID,required,notEmpty"`
	AccountPrefix   string        `env:"FINERACT_ACCOUNT_PREFIX,required"`
	BankCountryCode string        `env:"FINERACT_BANK_COUNTRY_CODE,required,notEmpty"`
	CheckDigits     string        `env:"FINERACT_CHECK_DIGITS,required,notEmpty"`
	IDType          string        `env:"FINERACT_ID_TYPE" envDefault:"IBAN"`
	Locale          string        `env:"FINERACT_LOCALE,required,notEmpty"`
	PaymentTypeID   string        `env:"FINERACT_PAYMENT_TYPE_ID,required,notEmpty"`
	Timeout         time.Duration `env:"LEDGER_TIMEOUT" envDefault:"30s"`
}

type SDK struct {
	BaseURL string        `env:"SDK_BASE_URL,required,notEmpty"`
	Timeout time.Duration `env:"SDK_TIMEOUT" envDefault:"30s"`
}

type Server struct {
	SDKHost  string `env:"SDK_SERVER_HOST,required,notEmpty"`
	SDKPort  int    `env:"SDK_SERVER_PORT" envDefault:"3000"`
	DFSPHost string `env:"DFSP_SERVER_HOST,required,notEmpty"`
	DFSPPort int    `env:"DFSP_SERVER_PORT,required"`
}

// Breaker tunes the circuit breakers in front of both backends.
type Breaker struct {
	ConsecutiveFailures uint32        `env:"BREAKER_CONSECUTIVE_FAILURES" envDefault:"5"`
	OpenTimeout         time.Duration `env:"BREAKER_OPEN_TIMEOUT" envDefault:"30s"`
	Interval            time.Duration `env:"BREAKER_INTERVAL" envDefault:"60s"`
	MaxRequests         uint32        `env:"BREAKER_HALF_OPEN_REQUESTS" envDefault:"1"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return load(env.Options{Environment: environment})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.Fineract.AuthMode = strings.ToLower(strings.TrimSpace(cfg.Fineract.AuthMode))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if c.Fineract.AuthMode != AuthModeBasic {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedAuthMode, c.Fineract.AuthMode))
	}

	for name, port := range map[string]int{"SDK_SERVER_PORT": c.Server.SDKPort, "DFSP_SERVER_PORT": c.Server.DFSPPort} {
		if port <= 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("%w: %s=%d", ErrInvalidPort, name, port))
		}
	}

	if c.Fineract.Timeout <= 0 || c.SDK.Timeout <= 0 || c.ShutdownTimeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}

	return errors.Join(errs...)
}

func (s Server) SDKAddr() string {
	return net.JoinHostPort(s.SDKHost, strconv.Itoa(s.SDKPort))
}

func (s Server) DFSPAddr() string {
	return net.JoinHostPort(s.DFSPHost, strconv.Itoa(s.DFSPPort))
}
