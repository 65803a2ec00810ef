package platforms

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jugandoyeducando/marketmaster/pkg/errors"
)

// Override adjusts deployment-specific configuration without touching
// code: template header offsets drift when a marketplace revises its
// export, and store openings change the store-to-warehouse mapping.
// Only the listed fields are overridable; column schemas and policies
// are fixed properties of the adapter.
type Override struct {
	Sheet           *string           `yaml:"sheet"`
	HeaderSkipRows  *int              `yaml:"header_skip_rows"`
	ChunkSize       *int              `yaml:"chunk_size"`
	SKUPrefix       *string           `yaml:"sku_prefix"`
	Warehouses      []string          `yaml:"warehouses"`
	StoreWarehouses map[string]string `yaml:"store_warehouses"`
}

// Overrides maps platform ids to their adjustments.
type Overrides map[string]Override

// LoadOverrides reads an overrides YAML file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, errors.NewParseError("yaml", path, err.Error(), err)
	}
	for id := range o {
		if _, ok := builtin[id]; !ok {
			return nil, errors.NewConfigError("overrides", "override for unregistered platform "+id, errors.ErrUnknownPlatform)
		}
	}
	return o, nil
}

// Apply merges an override into a configuration and revalidates it.
func (c Config) Apply(o Override) (Config, error) {
	if o.Sheet != nil {
		c.Sheet = *o.Sheet
	}
	if o.HeaderSkipRows != nil {
		c.HeaderSkipRows = *o.HeaderSkipRows
	}
	if o.ChunkSize != nil {
		c.ChunkSize = *o.ChunkSize
	}
	if o.SKUPrefix != nil {
		c.SKUPrefix = *o.SKUPrefix
	}
	if len(o.Warehouses) > 0 {
		c.Warehouses = o.Warehouses
	}
	if len(o.StoreWarehouses) > 0 {
		c.StoreWarehouses = o.StoreWarehouses
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
