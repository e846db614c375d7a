// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/linkconv/pkg/types"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "nested", DefaultFile))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dir
}

func sampleRun(folder string, converted int, at time.Time) types.Run {
	return types.Run{
		Folder:      folder,
		Converted:   converted,
		NoURL:       1,
		Unsupported: 2,
		StartedAt:   at,
		Duration:    1500 * time.Millisecond,
	}
}

func TestRecordAndRecent(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

	first, err := s.Record(ctx, sampleRun("/links/a", 3, base))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := s.Record(ctx, sampleRun("/links/b", 5, base.Add(time.Hour)))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "/links/b", runs[0].Folder, "newest first")
	assert.Equal(t, 5, runs[0].Converted)
	assert.Equal(t, 1, runs[0].NoURL)
	assert.Equal(t, 2, runs[0].Unsupported)
	assert.Equal(t, 1500*time.Millisecond, runs[0].Duration)
	assert.True(t, base.Add(time.Hour).Equal(runs[0].StartedAt))
	assert.Equal(t, "/links/a", runs[1].Folder)

	limited, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second.ID, limited[0].ID)
}

func TestRecent_Empty(t *testing.T) {
	s, _ := openStore(t)
	runs, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.Record(context.Background(), sampleRun("/links", 1, time.Now()))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestExport(t *testing.T) {
	s, dir := openStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := s.Record(ctx, sampleRun("/links/a", 3, at))
	require.NoError(t, err)

	yamlPath := filepath.Join(dir, "history.yaml")
	require.NoError(t, s.ExportYAML(ctx, yamlPath))
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []types.Run
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "/links/a", fromYAML[0].Folder)
	assert.Equal(t, 3, fromYAML[0].Converted)

	jsonPath := filepath.Join(dir, "history.json")
	require.NoError(t, s.ExportJSON(ctx, jsonPath))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []types.Run
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, 1500*time.Millisecond, fromJSON[0].Duration)
}

func TestExport_Empty(t *testing.T) {
	s, dir := openStore(t)
	path := filepath.Join(dir, "history.json")
	require.NoError(t, s.ExportJSON(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
