package report_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/ocr-clean/internal/report"
)

func TestJSONLWriter_WritesOneRecordPerLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rejected_files.jsonl")

	w, err := report.NewJSONLWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Write(report.RejectedFileRecord{Path: "a.txt", Reason: "too_short"}))
	require.NoError(t, w.Write(report.RejectedFileRecord{Path: "b.txt", Reason: "non_english"}))
	require.NoError(t, w.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	require.Len(t, lines, 2)

	var first report.RejectedFileRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "a.txt", first.Path)
	assert.Equal(t, "too_short", first.Reason)

	var second report.RejectedFileRecord
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "b.txt", second.Path)
}

func TestJSONLWriter_ConcurrentWritesNeverInterleave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "_triage_results.jsonl")

	w, err := report.NewJSONLWriter(path)
	require.NoError(t, err)

	var wg sync.WaitGroup

	const n = 50

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func(idx int) {
			defer wg.Done()

			_ = w.Write(report.TriageResultRecord{Path: filepath.Join("doc", string(rune('a'+idx%26))), Action: "keep"})
		}(i)
	}

	wg.Wait()
	require.NoError(t, w.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)

	count := 0

	for scanner.Scan() {
		var rec report.TriageResultRecord

		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))

		count++
	}

	assert.Equal(t, n, count)
}

func TestAggregateReport_AccumulatesAcrossGoroutines(t *testing.T) {
	t.Parallel()

	agg := report.NewAggregateReport()

	var wg sync.WaitGroup

	const n = 20

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			agg.FilesProcessed.Add(1)
			agg.FilesModified.Add(1)
			agg.TotalSubstitutions.Add(3)
			agg.TotalBytes.Add(100)
			agg.AddCategoryTotals(map[string]int{"ligature": 2, "dash": 1})
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(n), agg.FilesProcessed.Load())
	assert.Equal(t, int64(n), agg.FilesModified.Load())
	assert.Equal(t, int64(n*3), agg.TotalSubstitutions.Load())
	assert.Equal(t, int64(n*100), agg.TotalBytes.Load())

	path := filepath.Join(t.TempDir(), "_cleanup_report.json")
	require.NoError(t, agg.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.InDelta(t, float64(n), decoded["files_processed"], 0)

	categories, ok := decoded["per_category_totals"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, float64(n*2), categories["ligature"], 0)
	assert.InDelta(t, float64(n), categories["dash"], 0)
}

func TestAggregateReport_EmptyCategoriesWritesEmptyObject(t *testing.T) {
	t.Parallel()

	agg := report.NewAggregateReport()

	path := filepath.Join(t.TempDir(), "_cleanup_report.json")
	require.NoError(t, agg.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(0), decoded["files_processed"])

	categories, ok := decoded["per_category_totals"].(map[string]any)
	require.True(t, ok)
	assert.Empty(t, categories)
}
