package precommit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultConfig(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no repos",
			cfg:     Config{},
			wantErr: "no repos defined",
		},
		{
			name:    "missing rev",
			cfg:     Config{Repos: []Repo{{Repo: "https://github.com/psf/black", Hooks: []Hook{{ID: "black"}}}}},
			wantErr: "missing rev",
		},
		{
			name:    "bad version rev",
			cfg:     Config{Repos: []Repo{{Repo: "https://github.com/psf/black", Rev: "v1.2.x", Hooks: []Hook{{ID: "black"}}}}},
			wantErr: "not a valid version",
		},
		{
			name:    "missing hook id",
			cfg:     Config{Repos: []Repo{{Repo: RepoLocal, Hooks: []Hook{{Name: "x"}}}}},
			wantErr: "missing id",
		},
		{
			name:    "local hook without entry or language",
			cfg:     Config{Repos: []Repo{{Repo: RepoLocal, Hooks: []Hook{{ID: "pytest", Name: "pytest"}}}}},
			wantErr: "local hook missing entry",
		},
		{
			name:    "no hooks",
			cfg:     Config{Repos: []Repo{{Repo: RepoMeta}}},
			wantErr: "no hooks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAcceptsCommitRevAndLocalRepos(t *testing.T) {
	cfg := Config{Repos: []Repo{
		{Repo: "https://github.com/psf/black", Rev: "3f2a9c1e", Hooks: []Hook{{ID: "black"}}},
		{Repo: RepoLocal, Hooks: []Hook{{ID: "pytest", Name: "pytest", Entry: "pytest", Language: "system"}}},
		{Repo: RepoMeta, Hooks: []Hook{{ID: "check-hooks-apply"}}},
	}}
	assert.NoError(t, cfg.Validate())
}

func TestValidateDocumentDefault(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	result, err := ValidateDocument(data)
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
}

func TestValidateDocumentReportsIssues(t *testing.T) {
	doc := []byte(`repos:
  - repo: https://github.com/psf/black
    rev: 23.1.0
    hooks:
      - name: no id here
unknown_key: true
`)
	result, err := ValidateDocument(doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Issues)

	var keywords []string
	for _, issue := range result.Issues {
		keywords = append(keywords, issue.Keyword)
	}
	assert.Contains(t, keywords, "required")
	assert.Contains(t, keywords, "additionalProperties")
}

func TestValidateDocumentInvalidYAML(t *testing.T) {
	_, err := ValidateDocument([]byte("repos: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(`repos:
  - repo: local
    hooks:
      - id: pytest
        name: pytest
        entry: pytest
        language: system
        pass_filenames: false
        always_run: true
fail_fast: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Repos, 1)
	assert.Equal(t, RepoLocal, cfg.Repos[0].Repo)
	hook := cfg.Repos[0].Hooks[0]
	assert.Equal(t, "pytest", hook.ID)
	assert.Equal(t, "pytest", hook.Entry)
	assert.Equal(t, "system", hook.Language)
	require.NotNil(t, hook.PassFilenames)
	assert.False(t, *hook.PassFilenames)
	require.NotNil(t, hook.AlwaysRun)
	assert.True(t, *hook.AlwaysRun)
	require.NotNil(t, cfg.FailFast)

	// Everything that was loaded must be written back out.
	data, err := Marshal(cfg)
	require.NoError(t, err)
	doc := decodeGeneric(t, data)
	written := doc["repos"].([]interface{})[0].(map[string]interface{})["hooks"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{
		"id":             "pytest",
		"name":           "pytest",
		"entry":          "pytest",
		"language":       "system",
		"pass_filenames": false,
		"always_run":     true,
	}, written)

	result, err := ValidateDocument(data)
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(`repos:
  - repo: local
    hooks:
      - id: pytest
        name: pytest
        entry: pytest
        language: system
        not_a_hook_key: true
`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not_a_hook_key")
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("repos: []\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no repos defined")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
