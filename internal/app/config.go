package app

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"

	"github.com/xenking/starmart-datagen/internal/domain/order"
	"github.com/xenking/starmart-datagen/internal/pricing"
	"github.com/xenking/starmart-datagen/internal/refdata"
)

// Output formats.
const (
	FormatCSV      = "csv"
	FormatJSONL    = "jsonl"
	FormatPostgres = "postgres"
)

// ErrUnknownFormat is returned for an unsupported output.format.
var ErrUnknownFormat = errors.New("unknown output format")

// Config holds the run configuration, loadable from environment variables
// (STARMART_ prefix), flags, a .env file or YAML config files.
type Config struct {
	Start         string `default:"2024-01-01" usage:"First simulated day (YYYY-MM-DD)"`
	End           string `default:"2025-01-01" usage:"Day after the last simulated day (YYYY-MM-DD)"`
	Seed          uint64 `default:"42" usage:"Order stream random seed"`
	ReferenceSeed uint64 `default:"42" usage:"Master data random seed" flag:"reference-seed"`
	Discounts     DiscountsConfig
	Customers     CustomersConfig
	Traffic       TrafficConfig
	Basket        BasketConfig
	Pricing       PricingConfig
	Output        OutputConfig
	DatabaseURL   string        `usage:"PostgreSQL connection URL (STARMART_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	HealthAddr    string        `usage:"Liveness endpoint listen address, disabled when empty" flag:"health-addr"`
	HealthStall   time.Duration `default:"2m" usage:"Report unhealthy when the stream stalls this long" flag:"health-stall"`
}

// DiscountsConfig controls the discount period set.
type DiscountsConfig struct {
	Groups  int    `default:"15" usage:"Discount groups per calendar year"`
	Lengths []int  `default:"1,3,7" usage:"Candidate discount group lengths in days"`
	Seed    uint64 `default:"42" usage:"Discount period random seed"`
}

// CustomersConfig sizes the customer roster.
type CustomersConfig struct {
	Recurring    int `default:"40000" usage:"Recurring customers"`
	NonRecurring int `default:"50000" usage:"Non-recurring customers" flag:"non-recurring"`
	OneTime      int `default:"90000" usage:"One-time customers" flag:"one-time"`
}

type TrafficConfig struct {
	BaseCustomers float64 `default:"70" usage:"Base daily customers per store" flag:"base-customers"`
}

type BasketConfig struct {
	BaseMean       float64 `default:"15" usage:"Base basket mean" flag:"base-mean"`
	HolidayWeight  float64 `default:"1.5" usage:"Additive holiday bonus weight" flag:"holiday-weight"`
	DiscountWeight float64 `default:"1.25" usage:"Additive discount bonus weight" flag:"discount-weight"`
}

type PricingConfig struct {
	DiscountSelection string `default:"legacy" usage:"Discount percentage selection: legacy or by-day-type" flag:"discount-selection"`
}

// OutputConfig selects where the dataset goes.
type OutputConfig struct {
	Format     string `default:"csv" usage:"Output format: csv, jsonl or postgres"`
	Dir        string `default:"data" usage:"Output directory for file formats and the manifest"`
	Gzip       bool   `default:"false" usage:"Compress file outputs"`
	FlushEvery int    `default:"50000" usage:"Lines between buffered flushes or COPY batches" flag:"flush-every"`
}

// LoadConfig loads .env, then configuration from environment variables, flags
// and YAML config files, and validates the result.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:], []string{"starmart.yaml", "/etc/starmart/starmart.yaml"})
}

func loadConfig(args, files []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STARMART",
		Args:      args,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyPlatformDefaults falls back to the conventional DATABASE_URL variable.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate reports configuration errors before anything is generated.
func (c *Config) Validate() error {
	if _, _, err := c.Window(); err != nil {
		return err
	}
	if _, err := pricing.ParseDiscountSelection(c.Pricing.DiscountSelection); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatCSV, FormatJSONL:
	case FormatPostgres:
		if c.DatabaseURL == "" {
			return errors.New("database URL is required for postgres output: set STARMART_DATABASE_URL or DATABASE_URL")
		}
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", c.Output.Format)
	}
	if c.Discounts.Groups < 0 {
		return errors.Errorf("discount groups must not be negative, got %d", c.Discounts.Groups)
	}
	for _, l := range c.Discounts.Lengths {
		if l <= 0 {
			return errors.Errorf("discount group length must be positive, got %d", l)
		}
	}
	if c.CustomerCounts().Total() <= 0 {
		return errors.New("customer roster must not be empty")
	}
	return nil
}

// Window parses the half-open simulation window.
func (c *Config) Window() (start, end time.Time, err error) {
	if start, err = time.Parse(time.DateOnly, c.Start); err != nil {
		return start, end, errors.Wrap(err, "parse start")
	}
	if end, err = time.Parse(time.DateOnly, c.End); err != nil {
		return start, end, errors.Wrap(err, "parse end")
	}
	if !end.After(start) {
		return start, end, errors.Wrapf(order.ErrInvalidWindow, "[%s, %s)", c.Start, c.End)
	}
	return start, end, nil
}

// CustomerCounts returns the roster sizes.
func (c *Config) CustomerCounts() refdata.CustomerCounts {
	return refdata.CustomerCounts{
		Recurring:    c.Customers.Recurring,
		NonRecurring: c.Customers.NonRecurring,
		OneTime:      c.Customers.OneTime,
	}
}
