// Package config provides the reconciliation run configuration.
//
// Configuration is a single YAML file naming the field layout of each
// ledger source, the matching policy and the run defaults. Without a file,
// Default() models the standard fleet-card / acquirer source pair.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"fleetrecon/internal/domain"
)

// Config represents the entire run configuration.
type Config struct {
	FleetSchema     SchemaConfig  `yaml:"fleet_schema"`
	AcquirerSchema  SchemaConfig  `yaml:"acquirer_schema"`
	Policy          PolicyConfig  `yaml:"policy"`
	TimeBufferHours int           `yaml:"time_buffer_hours"`
	Logging         LoggingConfig `yaml:"logging"`
}

// SchemaConfig maps one source's column names onto the canonical fields.
// Set datetime_field for a combined timestamp column, or date_field plus
// time_field for split columns.
type SchemaConfig struct {
	Source        string `yaml:"source"`
	DateTimeField string `yaml:"datetime_field"`
	DateField     string `yaml:"date_field"`
	TimeField     string `yaml:"time_field"`
	AmountField   string `yaml:"amount_field"`
	VehicleField  string `yaml:"vehicle_field"`
	SiteField     string `yaml:"site_field"`
	RefField      string `yaml:"ref_field"`
}

// PolicyConfig holds the matching policy knobs.
type PolicyConfig struct {
	RequireSiteMatch bool   `yaml:"require_site_match"`
	AmountEpsilon    string `yaml:"amount_epsilon"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default models the shipped source pair: the fleet-card feed with a
// combined timestamp column and the acquirer feed with split date and time
// columns plus an external transaction number.
func Default() *Config {
	return &Config{
		FleetSchema: SchemaConfig{
			Source:        "fleetcard",
			DateTimeField: "Date Time",
			AmountField:   "Transaction Amount (RM)",
			VehicleField:  "Vehicle Number",
		},
		AcquirerSchema: SchemaConfig{
			Source:       "acquirer",
			DateField:    "TransactionDate",
			TimeField:    "TransactionTime",
			AmountField:  "TotalAmount",
			VehicleField: "VehicleRegistrationNo",
			RefField:     "TransactionNo",
		},
		Policy:          PolicyConfig{AmountEpsilon: "0.01"},
		TimeBufferHours: 1,
		Logging:         LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates a YAML configuration file. The file must be
// complete: both schemas need their field mappings, there is no merging
// with Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, sc := range []SchemaConfig{c.FleetSchema, c.AcquirerSchema} {
		if sc.DateTimeField == "" && (sc.DateField == "" || sc.TimeField == "") {
			return domain.ConfigError(fmt.Sprintf("source %s: set datetime_field or both date_field and time_field", sc.Source))
		}
		if sc.AmountField == "" || sc.VehicleField == "" {
			return domain.ConfigError(fmt.Sprintf("source %s: amount_field and vehicle_field are required", sc.Source))
		}
	}
	if c.TimeBufferHours < 0 {
		return domain.ConfigError(fmt.Sprintf("time_buffer_hours must be >= 0, got %d", c.TimeBufferHours))
	}
	if _, err := c.DomainPolicy(); err != nil {
		return err
	}
	return nil
}

// Schemas returns the domain schema descriptors for the two sources.
func (c *Config) Schemas() (domain.Schema, domain.Schema) {
	return c.FleetSchema.domainSchema(), c.AcquirerSchema.domainSchema()
}

// DomainPolicy returns the matching policy with the epsilon parsed.
func (c *Config) DomainPolicy() (domain.Policy, error) {
	policy := domain.DefaultPolicy()
	policy.RequireSiteMatch = c.Policy.RequireSiteMatch
	if c.Policy.AmountEpsilon != "" {
		eps, err := decimal.NewFromString(c.Policy.AmountEpsilon)
		if err != nil {
			return domain.Policy{}, domain.ConfigError(fmt.Sprintf("invalid amount_epsilon %q", c.Policy.AmountEpsilon))
		}
		policy.AmountEpsilon = eps
	}
	if policy.AmountEpsilon.Sign() <= 0 {
		return domain.Policy{}, domain.ConfigError("amount_epsilon must be positive")
	}
	return policy, nil
}

func (sc SchemaConfig) domainSchema() domain.Schema {
	return domain.Schema{
		Source:        sc.Source,
		DateTimeField: sc.DateTimeField,
		DateField:     sc.DateField,
		TimeField:     sc.TimeField,
		AmountField:   sc.AmountField,
		VehicleField:  sc.VehicleField,
		SiteField:     sc.SiteField,
		RefField:      sc.RefField,
	}
}
