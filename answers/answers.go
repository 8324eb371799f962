package answers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/inlay/model"
)

// Load reads answer rows from path, dispatching on the file extension.
// Supported formats are .json and .xlsx. The returned rows have passed
// validation.
func Load(path string) ([]model.AnswerRow, error) {
	var rows []model.AnswerRow
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		rows, err = loadJSON(path)
	case ".xlsx":
		rows, err = loadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported answer file format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// typeForLabel derives the row type from the label's leading letter.
func typeForLabel(label string) model.RowType {
	if label == "" {
		return 0
	}
	return model.RowType(label[0])
}
