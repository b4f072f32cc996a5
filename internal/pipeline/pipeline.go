// Package pipeline orchestrates the complete normalize → triage →
// strip → clean → write flow across every input document, fanning the
// work out over a bounded worker pool the same way the reference
// PNG-to-text driver fans out OCR jobs: a buffered jobs channel feeding
// a fixed number of worker goroutines, results collected over a second
// channel, and a WaitGroup closing it once every worker drains.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/book-expert/logger"

	"github.com/book-expert/ocr-clean/internal/anachronism"
	"github.com/book-expert/ocr-clean/internal/boilerplate"
	"github.com/book-expert/ocr-clean/internal/config"
	"github.com/book-expert/ocr-clean/internal/dictionary"
	"github.com/book-expert/ocr-clean/internal/lang"
	"github.com/book-expert/ocr-clean/internal/noise"
	"github.com/book-expert/ocr-clean/internal/normalize"
	"github.com/book-expert/ocr-clean/internal/notify"
	"github.com/book-expert/ocr-clean/internal/ocr"
	"github.com/book-expert/ocr-clean/internal/report"
	"github.com/book-expert/ocr-clean/internal/triage"
	"github.com/book-expert/ocr-clean/internal/unwrap"
	"github.com/book-expert/ocr-clean/internal/vocab"
)

const defaultDirPermission = 0o750

// textFileSuffix is the only extension the driver picks up from the
// input directory.
const textFileSuffix = ".txt"

// ProcessingResult is the outcome of running one document through
// every stage.
type ProcessingResult struct {
	ProcessedAt time.Time
	Error       error
	InputPath   string
	OutputPath  string
	Action      triage.Action
	Success     bool
}

// Driver wires every cleanup stage together and runs them over a
// directory of input documents.
type Driver struct {
	cfg        *config.Config
	logger     *logger.Logger
	ocrEngine  *ocr.Engine
	stripper   *boilerplate.Stripper
	detector   *lang.Detector
	triager    *triage.Triager
	unwrapper  *unwrap.Unwrapper
	noiseSet   *noise.Set
	reports    *reportSinks
	notifier   *notify.Notifier
	workers    int
	stripNoise bool
	confidence float64
	aggregate  *report.AggregateReport
}

// reportSinks bundles the three audit-log writers the driver appends
// to as it processes documents.
type reportSinks struct {
	rejected    *report.JSONLWriter
	boilerplate *report.JSONLWriter
	triaged     *report.JSONLWriter
}

func (r *reportSinks) close() {
	if r == nil {
		return
	}

	_ = r.rejected.Close()
	_ = r.boilerplate.Close()
	_ = r.triaged.Close()
}

// NewDriver builds a Driver from cfg. It loads the process-wide
// dictionary and noise-word set if configured, connects the optional
// completion notifier, and opens the three audit logs inside
// cfg.Service.LogDir.
func NewDriver(cfg *config.Config, log *logger.Logger) (*Driver, error) {
	dictSvc, _ := dictionary.Init(cfg.Paths.DictionaryDir)

	var lookup unwrap.DictionaryLookup
	if dictSvc != nil {
		lookup = dictSvc.IsKnownWord

		log.Infof("%s", dictSvc.Stats())
	}

	var noiseSet *noise.Set

	if cfg.Paths.NoiseWordsPath != "" {
		set, err := noise.Load(cfg.Paths.NoiseWordsPath, cfg.Vocabulary.Categories)
		if err != nil {
			log.Warnf("noise word set not loaded: %v", err)
		} else {
			noiseSet = set
		}
	}

	sinks, err := openReportSinks(cfg.Service.LogDir)
	if err != nil {
		return nil, err
	}

	notifier, err := notify.Connect(cfg.Notify.NATSURL, cfg.Notify.Subject, log)
	if err != nil {
		sinks.close()

		return nil, fmt.Errorf("connect notifier: %w", err)
	}

	thresholds := triage.Thresholds{
		MinAlphaRatio:       cfg.Triage.MinAlphaRatio,
		MinCharCount:        cfg.Triage.MinCharCount,
		MaxListPatternRatio: cfg.Triage.MaxListPatternRatio,
		MaxLineLengthCV:     cfg.Triage.MaxLineLengthCV,
		MaxFragmentRatio:    cfg.Triage.MaxFragmentRatio,
	}

	return &Driver{
		cfg:        cfg,
		logger:     log,
		ocrEngine:  ocr.NewEngine(),
		stripper:   boilerplate.New(),
		detector:   lang.New(lang.DefaultStopwords()),
		triager:    triage.New(thresholds),
		unwrapper:  unwrap.New(lookup),
		noiseSet:   noiseSet,
		reports:    sinks,
		notifier:   notifier,
		workers:    cfg.Service.Workers,
		stripNoise: noiseSet != nil,
		confidence: cfg.Language.ConfidenceThreshold,
		aggregate:  report.NewAggregateReport(),
	}, nil
}

func openReportSinks(logDir string) (*reportSinks, error) {
	rejected, err := report.NewJSONLWriter(filepath.Join(logDir, "rejected_files.jsonl"))
	if err != nil {
		return nil, err
	}

	boilerplateLog, err := report.NewJSONLWriter(filepath.Join(logDir, "_boilerplate_stripped.jsonl"))
	if err != nil {
		_ = rejected.Close()

		return nil, err
	}

	triaged, err := report.NewJSONLWriter(filepath.Join(logDir, "_triage_results.jsonl"))
	if err != nil {
		_ = rejected.Close()
		_ = boilerplateLog.Close()

		return nil, err
	}

	return &reportSinks{rejected: rejected, boilerplate: boilerplateLog, triaged: triaged}, nil
}

// Close releases the audit logs and the optional notifier connection.
func (d *Driver) Close() {
	d.reports.close()
	d.notifier.Close()
}

// ProcessDirectory walks inputDir for text files, cleans each one
// through every stage, writes survivors into outputDir, and finally
// runs the second-pass vocabulary extractor over everything written
// before publishing a completion notification.
func (d *Driver) ProcessDirectory(ctx context.Context, inputDir, outputDir string) error {
	startTime := time.Now()

	d.logger.Infof("Starting batch: input=%s output=%s workers=%d", inputDir, outputDir, d.workers)

	files, err := d.findTextFiles(inputDir)
	if err != nil {
		return fmt.Errorf("find input files: %w", err)
	}

	if len(files) == 0 {
		d.logger.Infof("No input files found in %s", inputDir)

		return nil
	}

	if err := os.MkdirAll(outputDir, defaultDirPermission); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	d.logger.Infof("Found %d input files", len(files))

	results := d.processFilesParallel(ctx, files, inputDir, outputDir)

	d.reportResults(results, startTime, outputDir)
	d.runVocabularyExtraction(results)
	d.publishCompletion(startTime, outputDir)

	return nil
}

func (d *Driver) findTextFiles(dir string) ([]string, error) {
	var files []string

	walkErr := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		if strings.EqualFold(filepath.Ext(entry.Name()), textFileSuffix) {
			files = append(files, path)
		}

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking directory %s: %w", dir, walkErr)
	}

	sort.Strings(files)

	return files, nil
}

func (d *Driver) processFilesParallel(ctx context.Context, files []string, inputDir, outputDir string) []ProcessingResult {
	jobs := make(chan string, len(files))
	results := make(chan ProcessingResult, len(files))

	var waitGroup sync.WaitGroup

	workers := d.workers
	if workers <= 0 {
		workers = 1
	}

	for i := 0; i < workers; i++ {
		waitGroup.Add(1)

		go d.worker(ctx, &waitGroup, jobs, results, inputDir, outputDir)
	}

	for _, path := range files {
		jobs <- path
	}

	close(jobs)

	go func() {
		waitGroup.Wait()
		close(results)
	}()

	collected := make([]ProcessingResult, 0, len(files))
	for result := range results {
		collected = append(collected, result)
	}

	return collected
}

func (d *Driver) worker(
	ctx context.Context,
	waitGroup *sync.WaitGroup,
	jobs <-chan string,
	results chan<- ProcessingResult,
	inputDir, outputDir string,
) {
	defer waitGroup.Done()

	for inputPath := range jobs {
		select {
		case <-ctx.Done():
			results <- ProcessingResult{ProcessedAt: time.Now(), Error: ctx.Err(), InputPath: inputPath}

			return
		default:
		}

		relPath, err := filepath.Rel(inputDir, inputPath)
		if err != nil {
			results <- ProcessingResult{ProcessedAt: time.Now(), Error: fmt.Errorf("relative path: %w", err), InputPath: inputPath}

			continue
		}

		outputPath := filepath.Join(outputDir, relPath)

		results <- d.processFile(inputPath, outputPath)
	}
}

// processFile runs one document through every cleanup stage in order:
// normalize, detect language and triage, strip boilerplate, filter
// anachronisms, unwrap cosmetic line breaks, apply the OCR pattern
// table, then optionally strip noise words, before writing the result.
func (d *Driver) processFile(inputPath, outputPath string) ProcessingResult {
	result := ProcessingResult{ProcessedAt: time.Now(), InputPath: inputPath, OutputPath: outputPath}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		result.Error = fmt.Errorf("read input: %w", err)
		d.aggregate.FilesFailed.Add(1)

		return result
	}

	d.aggregate.FilesProcessed.Add(1)
	d.aggregate.TotalBytes.Add(int64(len(raw)))

	text := normalize.New().Normalize(string(raw))

	triageResult := d.triager.Triage(text, d.langFunc)
	result.Action = triageResult.Action

	d.logTriage(inputPath, triageResult)

	if triageResult.Action == triage.ActionReject {
		d.logRejection(inputPath, triageResult)
		result.Success = true

		return result
	}

	stripped := d.stripper.Strip(text)
	d.logBoilerplate(inputPath, stripped)

	anachResult := anachronism.Filter(stripped.Text)
	d.aggregate.AddCategoryTotals(map[string]int{anachronism.Category: anachResult.Removed})
	d.aggregate.TotalSubstitutions.Add(int64(anachResult.Removed))

	unwrapResult := d.unwrapper.Unwrap(anachResult.Text)

	ocrResult := d.ocrEngine.Clean(unwrapResult.Text)

	finalText := ocrResult.Text

	if d.stripNoise {
		noiseStripped, removed := d.noiseSet.Strip(finalText)
		finalText = noiseStripped

		if removed > 0 {
			d.aggregate.AddCategoryTotals(map[string]int{"noise_word": removed})
		}
	}

	categoryTotals := make(map[string]int, len(ocrResult.SubstitutionsByCat))
	for category, count := range ocrResult.SubstitutionsByCat {
		categoryTotals[string(category)] = count
	}

	d.aggregate.AddCategoryTotals(categoryTotals)
	d.aggregate.TotalSubstitutions.Add(int64(ocrResult.TotalSubstitutions))

	if len(stripped.Regions) > 0 {
		d.aggregate.BoilerplateFiles.Add(1)
		d.aggregate.BoilerplateChars.Add(int64(stripped.TotalCharsStripped))
	}

	if err := d.writeAtomic(outputPath, finalText); err != nil {
		result.Error = fmt.Errorf("write output: %w", err)
		d.aggregate.FilesFailed.Add(1)

		return result
	}

	d.aggregate.FilesModified.Add(1)
	result.Success = true

	d.logger.Infof("Cleaned %s -> %s", filepath.Base(inputPath), filepath.Base(outputPath))

	return result
}

// langFunc adapts the stopword detector into triage.LangFunc, folding
// in the configured confidence floor: a detection below threshold is
// reported as undetermined rather than as its raw best-guess language,
// so triage's langCode == "en" check cannot be fooled by a low-
// confidence coincidental match.
func (d *Driver) langFunc(text string) (string, float64) {
	detected := d.detector.Detect(text)
	if detected.Confidence < d.confidence {
		return "und", detected.Confidence
	}

	return detected.Language, detected.Confidence
}

func (d *Driver) logTriage(path string, result triage.Result) {
	err := d.reports.triaged.Write(report.TriageResultRecord{
		Path:           path,
		Action:         string(result.Action),
		Problems:       result.Problems,
		DetectedLang:   result.DetectedLang,
		LangConfidence: result.LangConfidence,
	})
	if err != nil {
		d.logger.Warnf("write triage record for %s: %v", path, err)
	}
}

func (d *Driver) logRejection(path string, result triage.Result) {
	reason := "unknown"
	if len(result.Problems) > 0 {
		reason = result.Problems[0]
	}

	err := d.reports.rejected.Write(report.RejectedFileRecord{
		Path:             path,
		Reason:           reason,
		Lang:             result.DetectedLang,
		Confidence:       result.LangConfidence,
		AlphaRatio:       result.Metrics.AlphaRatio,
		ListPatternRatio: result.Metrics.ListPatternRatio,
	})
	if err != nil {
		d.logger.Warnf("write rejection record for %s: %v", path, err)
	}

	d.aggregate.FilesRejected.Add(1)
}

func (d *Driver) logBoilerplate(path string, result boilerplate.Result) {
	if len(result.Regions) == 0 {
		return
	}

	regions := make([]report.BoilerplateRegionRecord, 0, len(result.Regions))
	for _, region := range result.Regions {
		regions = append(regions, report.BoilerplateRegionRecord{
			Category:    string(region.Category),
			PatternName: region.PatternName,
			StartLine:   region.StartLine,
			EndLine:     region.EndLine,
			CharCount:   region.CharCount,
		})
	}

	err := d.reports.boilerplate.Write(report.BoilerplateStrippedRecord{Path: path, Regions: regions})
	if err != nil {
		d.logger.Warnf("write boilerplate record for %s: %v", path, err)
	}
}

// writeAtomic writes text to a uuid-named temporary sibling of path and
// renames it into place, so a reader never observes a partially
// written file and a crash mid-write never corrupts a prior output.
func (d *Driver) writeAtomic(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirPermission); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".tmp-%s", uuid.New().String()))

	if err := os.WriteFile(tmpPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("rename temp file into place: %w", err)
	}

	return nil
}

// runVocabularyExtraction runs the second-pass extractor over every
// successfully written output file and writes the resulting
// vocabulary-candidates file, when an output path is configured.
func (d *Driver) runVocabularyExtraction(results []ProcessingResult) {
	if d.cfg.Vocabulary.OutputPath == "" {
		return
	}

	written := make([]string, 0, len(results))

	for _, result := range results {
		if result.Success && result.Action != triage.ActionReject {
			written = append(written, result.OutputPath)
		}
	}

	if len(written) == 0 {
		return
	}

	extractor := vocab.New(d.cfg.Vocabulary.ContextChars, nil, dictionary.Global())

	_, words, err := extractor.ExtractBatch(written, d.workers)
	if err != nil {
		d.logger.Errorf("vocabulary extraction failed: %v", err)

		return
	}

	if err := vocab.WriteCandidates(d.cfg.Vocabulary.OutputPath, words); err != nil {
		d.logger.Errorf("write vocabulary candidates: %v", err)
	}
}

func (d *Driver) publishCompletion(startTime time.Time, outputDir string) {
	d.notifier.Publish(notify.BatchCompletedEvent{
		RunID:              startTime.UTC().Format(time.RFC3339Nano),
		OutputDir:          outputDir,
		CompletedAt:        time.Now().UTC(),
		FilesProcessed:     d.aggregate.FilesProcessed.Load(),
		FilesModified:      d.aggregate.FilesModified.Load(),
		FilesFailed:        d.aggregate.FilesFailed.Load(),
		TotalSubstitutions: d.aggregate.TotalSubstitutions.Load(),
	})
}

// reportResults logs a summary and writes the final aggregate report
// into outputDir.
func (d *Driver) reportResults(results []ProcessingResult, startTime time.Time, outputDir string) {
	duration := time.Since(startTime)

	successful, failed := 0, 0

	for i := range results {
		res := &results[i]
		if res.Success {
			successful++
		} else {
			failed++

			if res.Error != nil {
				d.logger.Errorf("Failed %s: %v", filepath.Base(res.InputPath), res.Error)
			}
		}
	}

	d.logger.Successf("Batch complete: %d/%d successful, %d failed in %v", successful, len(results), failed, duration)

	reportPath := filepath.Join(outputDir, "_cleanup_report.json")
	if err := d.aggregate.WriteJSON(reportPath); err != nil {
		d.logger.Errorf("write aggregate report: %v", err)
	}
}
