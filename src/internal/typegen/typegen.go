// Package typegen renders the route contract types as TypeScript declarations
// for the web UI.
package typegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coder/guts"
	"github.com/coder/guts/config"
)

// Header is prepended to the generated file.
const Header = "// Code generated by bot-panel gen-types. DO NOT EDIT.\n\n"

// Packages lists the Go packages whose exported types make up the API contract.
var Packages = []string{
	"github.com/shourov-bot/bot-panel/src/internal/models",
	"github.com/shourov-bot/bot-panel/src/internal/contract",
}

// Generate returns the TypeScript declarations for Packages.
func Generate() (string, error) {
	golang, err := guts.NewGolangParser()
	if err != nil {
		return "", fmt.Errorf("failed to create parser: %w", err)
	}

	for _, pkg := range Packages {
		if err := golang.IncludeGenerate(pkg); err != nil {
			return "", fmt.Errorf("failed to include %s: %w", pkg, err)
		}
	}

	// time.Time and friends travel as strings
	golang.IncludeCustomDeclaration(config.StandardMappings())

	ts, err := golang.ToTypescript()
	if err != nil {
		return "", fmt.Errorf("failed to convert to typescript: %w", err)
	}

	ts.ApplyMutations(
		config.EnumAsTypes,
		config.EnumLists,
		config.ExportTypes,
		config.ReadOnly,
	)

	out, err := ts.Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to serialize typescript: %w", err)
	}
	return Header + out, nil
}

// WriteFile generates the declarations and writes them to path.
func WriteFile(path string) error {
	out, err := Generate()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
