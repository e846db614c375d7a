// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/linkconv/pkg/types"
)

// ExportYAML writes every recorded run, newest first, to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	runs, err := s.exportRuns(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every recorded run, newest first, to path as JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	runs, err := s.exportRuns(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRuns(ctx context.Context) ([]types.Run, error) {
	runs, err := s.Recent(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if runs == nil {
		runs = []types.Run{}
	}
	return runs, nil
}
