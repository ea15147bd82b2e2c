// Package api is the host boundary: every import/export/save/load
// operation the shell exposes, over the filesystem, each returning a
// status envelope instead of an error so the caller can surface the
// message directly.
package api

import (
	"os"
	"path/filepath"

	"pagestudio/local-app/internal/generate"
	"pagestudio/local-app/internal/importer"
	"pagestudio/local-app/internal/model"
	"pagestudio/local-app/internal/storage"
)

// ExportHTML writes the project as a standalone HTML document.
func ExportHTML(p *model.Project, path string) model.Result {
	if path == "" {
		return model.Info("Export cancelled.")
	}
	if err := os.WriteFile(path, []byte(generate.HTML(p)), 0644); err != nil {
		return model.Errorf("Error exporting: %v", err)
	}
	return model.Success("Successfully exported to " + filepath.Base(path))
}

// SaveLua writes the project as a Macho API Lua script.
func SaveLua(p *model.Project, path string) model.Result {
	if path == "" {
		return model.Info("Save cancelled.")
	}
	if err := os.WriteFile(path, []byte(generate.Lua(p)), 0644); err != nil {
		return model.Errorf("Error saving Lua: %v", err)
	}
	return model.Success("Successfully saved to " + filepath.Base(path))
}

// SaveProject writes the full project state as an indented JSON file.
func SaveProject(p *model.Project, path string) model.Result {
	if path == "" {
		return model.Info("Save cancelled.")
	}
	if err := storage.FileExport(p, path, "json"); err != nil {
		return model.Errorf("Error saving project: %v", err)
	}
	return model.Success("Project saved to " + filepath.Base(path))
}

// LoadProject reads a project JSON file back into a normalized project.
func LoadProject(path string) model.Result {
	if path == "" {
		return model.Info("Load cancelled.")
	}
	p, err := storage.FileImport(path, "json")
	if err != nil {
		return model.Errorf("Error loading project: %v", err)
	}
	return model.SuccessData(p, "Project loaded from "+filepath.Base(path))
}

// ImportHTML parses an HTML file into a fresh project, resolving relative
// assets against the file's directory.
func ImportHTML(path string) model.Result {
	if path == "" {
		return model.Info("Import cancelled.")
	}
	p, err := importer.ImportFile(path)
	if err != nil {
		return model.Errorf("Error parsing HTML: %v", err)
	}
	return model.SuccessData(p, "Imported "+filepath.Base(path))
}
