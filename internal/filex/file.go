// Package filex contains small filesystem helpers shared by the server and
// the CLI viewer.
package filex

import (
	"encoding/json"
	"fmt"
	"os"

	"pokedex/internal/common"
)

// ReadJSON reads the file at path and unmarshals it into v. Read failures
// wrap common.ErrorDatasetRead and malformed content wraps
// common.ErrorDatasetParse, so callers can distinguish the two with
// errors.Is.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrorDatasetRead, path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrorDatasetParse, path, err)
	}

	return nil
}
