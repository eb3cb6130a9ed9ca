// Package main generates the JSON Schemas of ESTree and Shift tree documents.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

func main() {
	var outputDir string

	flag.StringVar(&outputDir, "o", "docs/schemas", "Output directory for schemas")
	flag.Parse()

	paths, err := generate(outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, path := range paths {
		fmt.Printf("Generated %s\n", path)
	}
}

// generate writes one schema file per taxonomy into dir and returns their
// paths.
func generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	registries := []*astjson.Registry{estree.Registry(), shift.Registry()}
	paths := make([]string, 0, len(registries))

	for _, r := range registries {
		path := filepath.Join(dir, r.Name()+".schema.json")

		if err := writeSchema(path, astjson.DocumentSchema(r)); err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name(), err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func writeSchema(path string, schema map[string]any) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
