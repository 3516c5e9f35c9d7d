package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// SchemaFile represents one idempotent schema statement file
type SchemaFile struct {
	Name string
	SQL  string
}

// EnsureSchema creates every table that does not exist yet.
// Each file uses CREATE ... IF NOT EXISTS, so running it on every startup is safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	files, err := loadSchemaFiles()
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	for _, file := range files {
		if _, err := db.ExecContext(ctx, file.SQL); err != nil {
			return fmt.Errorf("failed to apply schema %s: %w", file.Name, err)
		}
	}

	return nil
}

// loadSchemaFiles reads the embedded schema files in name order
func loadSchemaFiles() ([]SchemaFile, error) {
	names, err := fs.Glob(schemaFS, "schema/*.sql")
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no schema files embedded")
	}

	var files []SchemaFile
	for _, name := range names {
		content, err := schemaFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema file %s: %w", name, err)
		}

		files = append(files, SchemaFile{
			Name: strings.TrimSuffix(path.Base(name), ".sql"),
			SQL:  string(content),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
