package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/loan-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes the report in the given format to dir and returns the
// files written. "all" writes the verbose console report and the detailed CSV.
func GenerateReport(report *domain.AnalysisReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, report, dir, FileExtension(f))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	name, err := WriteFormatted(f, report, dir, FileExtension(f))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// SaveConfiguration writes a loan file as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
