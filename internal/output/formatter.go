package output

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// Formatter renders one simulation result into a byte stream.
type Formatter interface {
	Name() string
	Format(result *domain.SimulationResult) ([]byte, error)
}

// FormatterFunc adapts a plain function into a named Formatter.
type FormatterFunc struct {
	ID string
	F  func(result *domain.SimulationResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.SimulationResult) ([]byte, error) {
	return f.F(result)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName returns the registered formatter for a name, nil if
// none matches.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names in registry order.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteFormatted renders the result and writes it to a uniquely named file
// in the working directory, returning the filename.
func WriteFormatted(formatter Formatter, result *domain.SimulationResult, extension string) (string, error) {
	data, err := formatter.Format(result)
	if err != nil {
		return "", fmt.Errorf("formatting failed: %w", err)
	}
	filename := fmt.Sprintf("lifetax_report_%s.%s", uuid.NewString(), extension)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
