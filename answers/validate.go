package answers

import (
	"fmt"

	"github.com/tsawler/inlay/model"
)

// Validate checks structural requirements on a loaded row set: labels are
// present and unique, row types are known, and each label's leading letter
// agrees with its type.
func Validate(rows []model.AnswerRow) error {
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		if row.Label == "" {
			return fmt.Errorf("row %d: empty label", i)
		}
		if seen[row.Label] {
			return fmt.Errorf("row %d: duplicate label %s", i, row.Label)
		}
		seen[row.Label] = true

		if !row.Type.Valid() {
			return fmt.Errorf("row %d (%s): unknown row type %q", i, row.Label, row.Type)
		}
		if model.RowType(row.Label[0]) != row.Type {
			return fmt.Errorf("row %d: label %s does not match type %s", i, row.Label, row.Type)
		}
	}
	return nil
}
