package pipeline_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/logger"

	"github.com/book-expert/ocr-clean/internal/config"
	"github.com/book-expert/ocr-clean/internal/pipeline"
	"github.com/book-expert/ocr-clean/internal/report"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.New(t.TempDir(), "test.log")
	require.NoError(t, err)

	return log
}

func newTestConfig(t *testing.T, inputDir, outputDir string) *config.Config {
	t.Helper()

	return &config.Config{
		Service: config.ServiceSettings{LogDir: t.TempDir(), Workers: 2},
		Paths: config.PathsSettings{
			InputDir:      inputDir,
			OutputDir:     outputDir,
			DictionaryDir: t.TempDir(),
		},
		Triage: config.TriageSettings{
			MinAlphaRatio:       0.6,
			MinCharCount:        500,
			MaxListPatternRatio: 0.3,
			MaxLineLengthCV:     1.5,
			MaxFragmentRatio:    0.4,
		},
		Language:   config.LanguageSettings{ConfidenceThreshold: 0.3},
		Vocabulary: config.VocabularySettings{ContextChars: 60, Categories: []string{"G", "R"}},
	}
}

// englishProse is a single long line of ordinary English prose, well
// past the minimum character count, so it survives structural triage
// and is confidently detected as English by the stopword scorer.
func englishProse() string {
	sentence := "The quick fox and the lazy dog went to the river and they were not " +
		"afraid of the water, for this was the place where they had been born. "

	return strings.Repeat(sentence, 6)
}

func TestProcessDirectory_CleansAndWritesEnglishDocument(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "book.txt"), []byte(englishProse()), 0o600))

	cfg := newTestConfig(t, inputDir, outputDir)

	driver, err := pipeline.NewDriver(cfg, newTestLogger(t))
	require.NoError(t, err)
	defer driver.Close()

	require.NoError(t, driver.ProcessDirectory(context.Background(), inputDir, outputDir))

	outputData, err := os.ReadFile(filepath.Join(outputDir, "book.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(outputData), "quick fox")

	reportData, err := os.ReadFile(filepath.Join(outputDir, "_cleanup_report.json"))
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(reportData, &decoded))
	assert.InDelta(t, float64(1), decoded["files_processed"], 0)
	assert.InDelta(t, float64(1), decoded["files_modified"], 0)

	triageLog, err := os.ReadFile(filepath.Join(cfg.Service.LogDir, "_triage_results.jsonl"))
	require.NoError(t, err)

	var triageRecord report.TriageResultRecord

	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(triageLog))), &triageRecord))
	assert.Equal(t, "process", triageRecord.Action)
}

func TestProcessDirectory_RejectsShortDocument(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "fragment.txt"), []byte("Too short."), 0o600))

	cfg := newTestConfig(t, inputDir, outputDir)

	driver, err := pipeline.NewDriver(cfg, newTestLogger(t))
	require.NoError(t, err)
	defer driver.Close()

	require.NoError(t, driver.ProcessDirectory(context.Background(), inputDir, outputDir))

	_, statErr := os.Stat(filepath.Join(outputDir, "fragment.txt"))
	assert.True(t, os.IsNotExist(statErr))

	rejectedLog, err := os.ReadFile(filepath.Join(cfg.Service.LogDir, "rejected_files.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(rejectedLog), "too_short")
}

func TestProcessDirectory_EmptyInputDirIsNoOp(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()

	cfg := newTestConfig(t, inputDir, outputDir)

	driver, err := pipeline.NewDriver(cfg, newTestLogger(t))
	require.NoError(t, err)
	defer driver.Close()

	require.NoError(t, driver.ProcessDirectory(context.Background(), inputDir, outputDir))

	_, statErr := os.Stat(filepath.Join(outputDir, "_cleanup_report.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestProcessDirectory_IgnoresNonTextFiles(t *testing.T) {
	t.Parallel()

	inputDir := t.TempDir()
	outputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "image.png"), []byte("binary"), 0o600))

	cfg := newTestConfig(t, inputDir, outputDir)

	driver, err := pipeline.NewDriver(cfg, newTestLogger(t))
	require.NoError(t, err)
	defer driver.Close()

	require.NoError(t, driver.ProcessDirectory(context.Background(), inputDir, outputDir))

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
