// Package config loads the engine's TOML configuration file: worker
// count, filesystem paths, triage thresholds, language confidence, the
// vocabulary extractor's parameters, and the optional completion
// notifier.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/book-expert/logger"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFilename is used when Load is called with an empty path.
const DefaultConfigFilename = "ocr-clean.toml"

// Config is the fully-decoded engine configuration.
type Config struct {
	Service    ServiceSettings    `toml:"service"`
	Paths      PathsSettings      `toml:"paths"`
	Triage     TriageSettings     `toml:"triage"`
	Language   LanguageSettings   `toml:"language"`
	Vocabulary VocabularySettings `toml:"vocabulary"`
	Notify     NotifySettings     `toml:"notify"`
}

// ServiceSettings controls process-wide concurrency and logging.
type ServiceSettings struct {
	LogDir  string `toml:"log_dir"`
	Workers int    `toml:"workers"`
}

// PathsSettings names the filesystem locations the driver reads from
// and writes to.
type PathsSettings struct {
	InputDir       string `toml:"input_dir"`
	OutputDir      string `toml:"output_dir"`
	DictionaryDir  string `toml:"dictionary_dir"`
	NoiseWordsPath string `toml:"noise_words_path"`
}

// TriageSettings exposes the five structural thresholds of §4.5 as
// configuration, defaulting to the spec-mandated values.
type TriageSettings struct {
	MinAlphaRatio       float64 `toml:"min_alpha_ratio"`
	MinCharCount        int     `toml:"min_char_count"`
	MaxListPatternRatio float64 `toml:"max_list_pattern_ratio"`
	MaxLineLengthCV     float64 `toml:"max_line_length_cv"`
	MaxFragmentRatio    float64 `toml:"max_fragment_ratio"`
}

// LanguageSettings controls the English-acceptance confidence threshold.
type LanguageSettings struct {
	ConfidenceThreshold float64 `toml:"confidence_threshold"`
}

// VocabularySettings parameterizes the second-pass vocabulary
// extractor.
type VocabularySettings struct {
	ContextChars int      `toml:"context_chars"`
	OutputPath   string   `toml:"output_path"`
	Categories   []string `toml:"categories"`
}

// NotifySettings configures the optional best-effort NATS completion
// notification. URL left empty disables the notifier entirely.
type NotifySettings struct {
	NATSURL string `toml:"nats_url"`
	Subject string `toml:"subject"`
}

// defaultTriage matches SPEC_FULL.md §4.5.
func defaultTriage() TriageSettings {
	return TriageSettings{
		MinAlphaRatio:       0.6,
		MinCharCount:        500,
		MaxListPatternRatio: 0.3,
		MaxLineLengthCV:     1.5,
		MaxFragmentRatio:    0.4,
	}
}

// Load reads and decodes the TOML configuration at filePath, applying
// defaults for any triage threshold, language confidence, or worker
// count left unset. filePath defaults to DefaultConfigFilename.
func Load(filePath string, log *logger.Logger) (*Config, error) {
	if filePath == "" {
		filePath = DefaultConfigFilename
	}

	configFile, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open config file %q: %w", filePath, err)
	}

	defer func() {
		if closeErr := configFile.Close(); closeErr != nil && log != nil {
			log.Warnf("failed to close config file: %v", closeErr)
		}
	}()

	cfg := Config{Triage: defaultTriage()}

	decoder := toml.NewDecoder(configFile)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode TOML configuration: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in zero-valued fields that would otherwise leave
// the engine unable to run: a worker count, a language confidence
// threshold, and a vocabulary context window.
func applyDefaults(cfg *Config) {
	if cfg.Service.Workers <= 0 {
		cfg.Service.Workers = 24
	}

	if cfg.Language.ConfidenceThreshold <= 0 {
		cfg.Language.ConfidenceThreshold = 0.5
	}

	if cfg.Vocabulary.ContextChars <= 0 {
		cfg.Vocabulary.ContextChars = 60
	}

	if len(cfg.Vocabulary.Categories) == 0 {
		cfg.Vocabulary.Categories = []string{"G", "R"}
	}

	if cfg.Triage == (TriageSettings{}) {
		cfg.Triage = defaultTriage()
	}
}

// GetLogFilePath joins the configured log directory with filename.
func (c *Config) GetLogFilePath(filename string) string {
	return filepath.Join(c.Service.LogDir, filename)
}
