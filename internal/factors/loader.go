package factors

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Load reads an emission factor table from the JSON document at path.
//
// If the file does not exist, the built-in default table is returned and
// written back to path so subsequent loads are stable. The write-back is
// best-effort: a persistence failure is logged at warn level and the
// in-memory table is still returned.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			table := Default()
			if saveErr := Save(path, table); saveErr != nil {
				log.Warn().Err(saveErr).Str("path", path).
					Msg("could not persist default emission factors")
			}
			return table, nil
		}
		return Table{}, fmt.Errorf("reading emission factors %s: %w", path, err)
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return Table{}, fmt.Errorf("parsing emission factors %s: %w", path, err)
	}

	return table, nil
}

// Save writes the factor table to path as an indented JSON document,
// creating parent directories as needed.
func Save(path string, table Table) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling emission factors: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating emission factors directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing emission factors %s: %w", path, err)
	}

	return nil
}
