package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

// ============================================================================
// CSV EXPORTER
// ============================================================================

// WriteCSV writes a table to path, replacing any existing file. A write
// failure is returned to the caller — exports are the point of the run,
// so there is no partial-success mode.
func WriteCSV(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	log.Debugf("wrote %s (%d rows)", path, len(t.Rows))
	return nil
}
