package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jwebster45206/breadcrumb/pkg/world"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <usable_types.json> <world.json>\n", os.Args[0])
		os.Exit(1)
	}

	typesPath := os.Args[1]
	worldPath := os.Args[2]

	catalog, err := world.LoadTypeCatalog(typesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d usable types from %s\n", len(catalog), typesPath)

	if err := validateWorldFile(worldPath, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("World file is valid!")
}

// validateWorldFile decodes the world document strictly (unknown fields
// rejected) and runs the structural validator over it.
func validateWorldFile(path string, catalog world.TypeCatalog) error {
	fmt.Printf("Validating %s...\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", path)
	}

	var w world.World
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&w); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", path, err)
	}

	// Loading again through the normal path applies defaults and runs the
	// structural checks.
	if _, err := world.LoadWorld(path, catalog); err != nil {
		return err
	}

	return nil
}
