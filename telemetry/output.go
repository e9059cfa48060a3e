package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/peeps/config"
)

// OutputManager writes session records to sessions.csv in an output directory.
type OutputManager struct {
	dir          string
	sessionsFile *os.File

	// Track if headers have been written
	sessionsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "sessions.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating sessions.csv: %w", err)
	}

	return &OutputManager{dir: dir, sessionsFile: f}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSession appends a session record to sessions.csv.
func (om *OutputManager) WriteSession(rec SessionRecord) error {
	if om == nil {
		return nil
	}

	records := []SessionRecord{rec}

	if !om.sessionsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.sessionsFile); err != nil {
			return fmt.Errorf("writing session: %w", err)
		}
		om.sessionsHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.sessionsFile); err != nil {
			return fmt.Errorf("writing session: %w", err)
		}
	}

	return nil
}

// ReadSessions loads every record from a sessions.csv file.
func ReadSessions(path string) ([]SessionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sessions: %w", err)
	}
	defer f.Close()

	var records []SessionRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("reading sessions: %w", err)
	}
	return records, nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output file.
func (om *OutputManager) Close() error {
	if om == nil || om.sessionsFile == nil {
		return nil
	}
	return om.sessionsFile.Close()
}
