// Package storage provides functionality for persisting and retrieving
// Page Studio projects. This file handles project export to and import
// from standalone files.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"pagestudio/local-app/internal/model"
)

// FileExport writes a project to a file in the specified format. Only
// JSON is supported: the style and script maps have no stable XML shape.
func FileExport(p *model.Project, filename, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(p, "", "  ")
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FileImport reads a project from a file in the specified format.
func FileImport(filename, format string) (*model.Project, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	p := model.NewProject()
	switch format {
	case "json":
		err = json.Unmarshal(data, p)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	p.Normalize()
	return p, nil
}
