package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/icedtinat/lumina/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	frameFile *os.File
	genFile   *os.File

	// Track if headers have been written
	frameHeaderWritten bool
	genHeaderWritten   bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.frameFile = f

	f, err = os.Create(filepath.Join(dir, "generation.csv"))
	if err != nil {
		om.frameFile.Close()
		return nil, fmt.Errorf("creating generation.csv: %w", err)
	}
	om.genFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrameStats writes a window stats record to frames.csv.
func (om *OutputManager) WriteFrameStats(stats PerfStats, elapsed float64) error {
	if om == nil {
		return nil
	}

	records := []FrameStatsCSV{stats.ToCSV(elapsed)}

	if !om.frameHeaderWritten {
		if err := gocsv.Marshal(records, om.frameFile); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
		om.frameHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.frameFile); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
	}
	return nil
}

// WriteGeneration writes a generation record to generation.csv.
func (om *OutputManager) WriteGeneration(rec GenRecord) error {
	if om == nil {
		return nil
	}

	records := []GenRecord{rec}

	if !om.genHeaderWritten {
		if err := gocsv.Marshal(records, om.genFile); err != nil {
			return fmt.Errorf("writing generation record: %w", err)
		}
		om.genHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.genFile); err != nil {
			return fmt.Errorf("writing generation record: %w", err)
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.frameFile != nil {
		if err := om.frameFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.genFile != nil {
		if err := om.genFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
