package inventory

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/mai.yaml
var defaultData []byte

var defaultInventory = sync.OnceValue(func() *Inventory {
	inv, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("embedded inventory is invalid: %v", err))
	}
	return inv
})

// Default returns the embedded demo inventory.
func Default() *Inventory {
	return defaultInventory()
}

// Load reads and validates an inventory file.
func Load(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	inv, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}

// Parse decodes YAML inventory data, assigns question IDs by position and
// validates the result.
func Parse(data []byte) (*Inventory, error) {
	var inv Inventory
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&inv); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}

	for i := range inv.Questions {
		inv.Questions[i].ID = i
	}

	if err := Validate(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// LoadOrDefault loads path, or returns the embedded inventory when path is empty.
func LoadOrDefault(path string) (*Inventory, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
