package platforms

import (
	"fmt"
	"sort"

	"github.com/jugandoyeducando/marketmaster/pkg/errors"
)

// builtin holds the shipped deployments keyed by platform id.
var builtin = map[string]func() Config{
	"meli-medellin":       MeliMedellin,
	"meli-bogota":         MeliBogota,
	"falabella-price":     FalabellaPrice,
	"falabella-inventory": FalabellaInventory,
	"rappi-bogota":        RappiBogota,
	"rappi-medellin":      RappiMedellin,
	"wix":                 Wix,
}

// IDs returns the registered platform ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(builtin))
	for id := range builtin {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every registered configuration, sorted by id.
func All() []Config {
	configs := make([]Config, 0, len(builtin))
	for _, id := range IDs() {
		configs = append(configs, builtin[id]())
	}
	return configs
}

// Get returns the configuration for a platform id.
func Get(id string) (Config, error) {
	ctor, ok := builtin[id]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", errors.ErrUnknownPlatform, id)
	}
	return ctor(), nil
}
