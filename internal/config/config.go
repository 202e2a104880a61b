package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/DanielPopoola/centroeduc-checkout/internal/domain"
	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/shopspring/decimal"
)

const envPrefix = "CHECKOUT_"

const (
	cieloProductionURL = "https://api.cieloecommerce.cielo.com.br"
	cieloSandboxURL    = "https://apisandbox.cieloecommerce.cielo.com.br"
)

type Config struct {
	Primary Primary       `koanf:"primary"`
	Server  ServerConfig  `koanf:"server"`
	Cielo   CieloConfig   `koanf:"cielo"`
	Payment PaymentConfig `koanf:"payment"`
	Logger  LoggerConfig  `koanf:"logger"`
	Tracing TracingConfig `koanf:"tracing"`
	Catalog CatalogConfig `koanf:"catalog"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// CieloConfig holds the merchant credentials and environment of the gateway.
type CieloConfig struct {
	MerchantID  string `koanf:"merchant_id"`
	MerchantKey string `koanf:"merchant_key"`
	Sandbox     bool   `koanf:"sandbox"`
	// BaseURL overrides the production/sandbox endpoint.
	BaseURL string `koanf:"base_url" validate:"omitempty,url"`
	// Timeout of zero means gateway calls never time out.
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
}

// RequireCredentials fails when the merchant credentials are missing. Only
// commands that talk to the gateway need them.
func (c CieloConfig) RequireCredentials() error {
	if c.MerchantID == "" || c.MerchantKey == "" {
		return errors.New("cielo merchant_id and merchant_key are required")
	}
	return nil
}

// APIURL is the transactional endpoint for the configured environment.
func (c CieloConfig) APIURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Sandbox {
		return cieloSandboxURL
	}
	return cieloProductionURL
}

// PaymentConfig controls pricing and the flags sent with each sale.
type PaymentConfig struct {
	MonthlyInterestRate        float64 `koanf:"monthly_interest_rate" validate:"gte=0"`
	CaptureImmediately         bool    `koanf:"capture_immediately"`
	CaptureImmediatelyDonation bool    `koanf:"capture_immediately_donation"`
	Enable3DS                  bool    `koanf:"enable_3ds"`
	SoftDescriptor             string  `koanf:"soft_descriptor" validate:"max=13"`
}

func (c PaymentConfig) MonthlyRate() decimal.Decimal {
	return decimal.NewFromFloat(c.MonthlyInterestRate)
}

type LoggerConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	// Format is "text" or "json"; empty picks text in development.
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

type TracingConfig struct {
	// Endpoint of an OTLP gRPC collector; tracing is off when empty.
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name" validate:"required"`
}

type CatalogConfig struct {
	Plans []PlanConfig `koanf:"plans" validate:"dive"`
}

type PlanConfig struct {
	ID     string `koanf:"id" validate:"required"`
	Label  string `koanf:"label" validate:"required"`
	Months int    `koanf:"months" validate:"gte=1"`
	Price  string `koanf:"price" validate:"required,numeric"`
}

// Build returns the configured catalog, or the built-in one when none is configured.
func (c CatalogConfig) Build() (*domain.Catalog, error) {
	if len(c.Plans) == 0 {
		return domain.NewCatalog(domain.DefaultPlans())
	}

	plans := make([]domain.Plan, 0, len(c.Plans))
	for _, p := range c.Plans {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("plan %q: invalid price %q: %w", p.ID, p.Price, err)
		}
		plans = append(plans, domain.Plan{
			ID:         p.ID,
			Label:      p.Label,
			TermMonths: p.Months,
			Price:      price,
		})
	}
	return domain.NewCatalog(plans)
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                          "production",
		"server.port":                          "8080",
		"server.read_timeout":                  "15s",
		"server.write_timeout":                 "60s",
		"server.idle_timeout":                  "120s",
		"cielo.sandbox":                        false,
		"cielo.timeout":                        "0s",
		"payment.monthly_interest_rate":        0.015,
		"payment.capture_immediately":          false,
		"payment.capture_immediately_donation": true,
		"payment.enable_3ds":                   true,
		"payment.soft_descriptor":              "CENTROEDUC",
		"logger.level":                         "info",
		"tracing.service_name":                 "centroeduc-checkout",
	}
}

// LoadConfig layers defaults, an optional YAML file and CHECKOUT_* environment
// variables, in that order. Nested keys use a double underscore:
// CHECKOUT_PAYMENT__CAPTURE_IMMEDIATELY=true.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
