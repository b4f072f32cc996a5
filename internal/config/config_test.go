package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/ocr-clean/internal/config"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ocr-clean.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	content := `
[service]
workers = 8
log_dir = "/var/log/ocr-clean"

[paths]
input_dir = "/data/raw"
output_dir = "/data/clean"
dictionary_dir = "/data/dict"
noise_words_path = "/data/_vocab_candidates.txt"

[triage]
min_alpha_ratio = 0.6
min_char_count = 500
max_list_pattern_ratio = 0.3
max_line_length_cv = 1.5
max_fragment_ratio = 0.4

[language]
confidence_threshold = 0.5

[vocabulary]
context_chars = 80
output_path = "/data/_vocab_candidates.txt"
categories = ["G", "R"]

[notify]
nats_url = "nats://localhost:4222"
subject = "ocr-clean.batch.completed"
`
	path := createTempConfigFile(t, content)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8, cfg.Service.Workers)
	assert.Equal(t, "/data/raw", cfg.Paths.InputDir)
	assert.Equal(t, "/data/clean", cfg.Paths.OutputDir)
	assert.InEpsilon(t, 0.6, cfg.Triage.MinAlphaRatio, 0.0001)
	assert.InEpsilon(t, 0.5, cfg.Language.ConfidenceThreshold, 0.0001)
	assert.Equal(t, 80, cfg.Vocabulary.ContextChars)
	assert.Equal(t, []string{"G", "R"}, cfg.Vocabulary.Categories)
	assert.Equal(t, "nats://localhost:4222", cfg.Notify.NATSURL)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	t.Parallel()

	content := `
[paths]
input_dir = "/data/raw"
output_dir = "/data/clean"
`
	path := createTempConfigFile(t, content)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 24, cfg.Service.Workers)
	assert.InEpsilon(t, 0.5, cfg.Language.ConfidenceThreshold, 0.0001)
	assert.InEpsilon(t, 0.6, cfg.Triage.MinAlphaRatio, 0.0001)
	assert.Equal(t, 500, cfg.Triage.MinCharCount)
	assert.Equal(t, []string{"G", "R"}, cfg.Vocabulary.Categories)
	assert.Empty(t, cfg.Notify.NATSURL)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"), nil)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MalformedTOML(t *testing.T) {
	t.Parallel()

	path := createTempConfigFile(t, "[service\nworkers = oops")

	cfg, err := config.Load(path, nil)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGetLogFilePath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Service: config.ServiceSettings{LogDir: "/var/log/ocr-clean"}}

	assert.Equal(t, filepath.Join("/var/log/ocr-clean", "app.log"), cfg.GetLogFilePath("app.log"))
}
