package config

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InvoiceDefaults seeds new invoices. The file is optional; the
// built-in values match what the app has always produced.
type InvoiceDefaults struct {
	Currency  string `mapstructure:"currency"`
	Template  string `mapstructure:"template"`
	DueInDays int    `mapstructure:"dueInDays"`
}

func DefaultInvoiceDefaults() InvoiceDefaults {
	return InvoiceDefaults{
		Currency:  "USD",
		Template:  "classic",
		DueInDays: 30,
	}
}

// DefaultsHolder serves the current invoice defaults and hot-reloads
// them when the config file changes on disk.
type DefaultsHolder struct {
	current atomic.Value // holds InvoiceDefaults
}

func NewDefaultsHolder() (*DefaultsHolder, error) {
	v := viper.New()

	v.SetConfigName("invoicegen")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/invoicegen")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVOICEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileFound = false
		defaults := DefaultInvoiceDefaults()
		v.SetDefault("defaults.currency", defaults.Currency)
		v.SetDefault("defaults.template", defaults.Template)
		v.SetDefault("defaults.dueInDays", defaults.DueInDays)
	}

	var cfg InvoiceDefaults
	if err := v.UnmarshalKey("defaults", &cfg); err != nil {
		return nil, err
	}
	applyFallbacks(&cfg)
	if err := validateDefaults(cfg); err != nil {
		return nil, err
	}

	holder := &DefaultsHolder{}
	holder.current.Store(cfg)

	if fileFound {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			var updated InvoiceDefaults
			if err := v.UnmarshalKey("defaults", &updated); err != nil {
				log.Printf("[invoice-defaults] reload failed: %v", err)
				return
			}
			applyFallbacks(&updated)
			if err := validateDefaults(updated); err != nil {
				log.Printf("[invoice-defaults] invalid config ignored: %v", err)
				return
			}
			holder.current.Store(updated)
			log.Printf("[invoice-defaults] reloaded from %s", e.Name)
		})
	}

	return holder, nil
}

func (h *DefaultsHolder) Get() InvoiceDefaults {
	return h.current.Load().(InvoiceDefaults)
}

// NewStaticDefaults returns a holder pinned to the given values, for
// tests.
func NewStaticDefaults(cfg InvoiceDefaults) *DefaultsHolder {
	applyFallbacks(&cfg)
	holder := &DefaultsHolder{}
	holder.current.Store(cfg)
	return holder
}

func applyFallbacks(cfg *InvoiceDefaults) {
	base := DefaultInvoiceDefaults()
	if strings.TrimSpace(cfg.Currency) == "" {
		cfg.Currency = base.Currency
	}
	if strings.TrimSpace(cfg.Template) == "" {
		cfg.Template = base.Template
	}
	if cfg.DueInDays == 0 {
		cfg.DueInDays = base.DueInDays
	}
}

func validateDefaults(cfg InvoiceDefaults) error {
	if cfg.DueInDays < 0 {
		return fmt.Errorf("dueInDays must not be negative: %d", cfg.DueInDays)
	}
	return nil
}
