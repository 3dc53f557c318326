package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.AnalysisReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.AnalysisReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.AnalysisReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                    { return ff.ID }

// nowFunc is replaced in tests to pin report file names.
var nowFunc = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file with extension in dir.
func WriteFormatted(f Formatter, report *domain.AnalysisReport, dir, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("loan_report_%s.%s", nowFunc().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	ConsoleFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"schedule":        "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
	"pdf-report":      "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FileExtension returns the extension used when a formatter's output is written to disk.
func FileExtension(f Formatter) string {
	switch name := f.Name(); {
	case strings.HasPrefix(name, "console"):
		return "txt"
	case strings.Contains(name, "csv"):
		return "csv"
	default:
		return name
	}
}
