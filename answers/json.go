package answers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tsawler/inlay/model"
)

type jsonImage struct {
	Format string `json:"format"`
	Data   string `json:"data"` // base64
}

type jsonRow struct {
	Label  string      `json:"label"`
	Type   string      `json:"type,omitempty"`
	Text   string      `json:"text,omitempty"`
	Answer string      `json:"answer"`
	Images []jsonImage `json:"images,omitempty"`
}

// loadJSON reads rows from a JSON array of row objects. Image data is
// base64-encoded; an absent type field is derived from the label.
func loadJSON(path string) ([]model.AnswerRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answer file: %w", err)
	}

	var raw []jsonRow
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answer file: %w", err)
	}

	rows := make([]model.AnswerRow, 0, len(raw))
	for i, jr := range raw {
		row := model.AnswerRow{
			Label:  jr.Label,
			Text:   jr.Text,
			Answer: jr.Answer,
		}
		if jr.Type != "" {
			row.Type = model.RowType(jr.Type[0])
		} else {
			row.Type = typeForLabel(jr.Label)
		}

		for j, ji := range jr.Images {
			data, err := base64.StdEncoding.DecodeString(ji.Data)
			if err != nil {
				return nil, fmt.Errorf("row %d (%s): image %d: %w", i, jr.Label, j, err)
			}
			row.Images = append(row.Images, model.ImageAsset{
				Data:   data,
				Format: model.ParseImageFormat(ji.Format),
			})
		}
		rows = append(rows, row)
	}
	return rows, nil
}
