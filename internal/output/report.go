package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paradise-calc/paradise/internal/domain"
)

// lookup resolves a format name or returns ErrUnsupportedFormat with suggestions.
func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// WriteReport formats results with the named formatter and writes them to w.
func WriteReport(w io.Writer, results *domain.ScenarioComparison, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("paradise_report_%s.%s", time.Now().Format("20060102_150405"), FileExtension(f))
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport writes the named report to a timestamped file in dir. The format
// "all" writes the console, detailed CSV and HTML reports.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = []Formatter{ConsoleFormatter{}, CSVDetailedExporter{}, HTMLFormatter{}}
	} else {
		f, err := lookup(format)
		if err != nil {
			return nil, err
		}
		formatters = []Formatter{f}
	}

	var written []string
	for _, f := range formatters {
		name, err := WriteFormatted(f, results, dir)
		if err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}
