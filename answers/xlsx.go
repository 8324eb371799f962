package answers

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tsawler/inlay/model"
)

type relationshipsXML struct {
	Relationship []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type workbookXML struct {
	Sheets struct {
		Sheet []struct {
			Name string `xml:"name,attr"`
			RID  string `xml:"id,attr"`
		} `xml:"sheet"`
	} `xml:"sheets"`
}

type sharedStringsXML struct {
	SI []struct {
		T string `xml:"t"`
		R []struct {
			T string `xml:"t"`
		} `xml:"r"`
	} `xml:"si"`
}

type worksheetXML struct {
	SheetData struct {
		Rows []struct {
			R     int       `xml:"r,attr"`
			Cells []cellXML `xml:"c"`
		} `xml:"row"`
	} `xml:"sheetData"`
}

type cellXML struct {
	R  string `xml:"r,attr"`
	T  string `xml:"t,attr"`
	V  string `xml:"v"`
	Is *struct {
		T string `xml:"t"`
	} `xml:"is"`
}

// loadXLSX reads rows from the first worksheet of an XLSX workbook. The
// first non-empty row maps column headers (Label, Type, Text, Answer,
// case-insensitive) to columns; every following row becomes one answer row.
// XLSX input carries no images.
func loadXLSX(path string) ([]model.AnswerRow, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer zr.Close()

	shared, err := parseSharedStrings(&zr.Reader)
	if err != nil {
		return nil, err
	}

	sheetData, err := firstWorksheet(&zr.Reader)
	if err != nil {
		return nil, err
	}

	var ws worksheetXML
	if err := xml.Unmarshal(sheetData, &ws); err != nil {
		return nil, fmt.Errorf("parsing worksheet: %w", err)
	}

	grid := make([][]string, 0, len(ws.SheetData.Rows))
	for _, row := range ws.SheetData.Rows {
		var cells []string
		for _, c := range row.Cells {
			col, err := cellColumn(c.R)
			if err != nil {
				continue
			}
			for len(cells) <= col {
				cells = append(cells, "")
			}
			cells[col] = cellValue(c, shared)
		}
		grid = append(grid, cells)
	}

	return rowsFromGrid(grid)
}

// rowsFromGrid maps a header row plus data rows to answer rows.
func rowsFromGrid(grid [][]string) ([]model.AnswerRow, error) {
	header := -1
	cols := map[string]int{}
	for i, row := range grid {
		for j, v := range row {
			name := strings.ToLower(strings.TrimSpace(v))
			switch name {
			case "label", "type", "text", "answer":
				cols[name] = j
			}
		}
		if len(cols) > 0 {
			header = i
			break
		}
		cols = map[string]int{}
	}
	if header < 0 {
		return nil, fmt.Errorf("no header row found in worksheet")
	}
	if _, ok := cols["label"]; !ok {
		return nil, fmt.Errorf("worksheet header has no Label column")
	}
	if _, ok := cols["answer"]; !ok {
		return nil, fmt.Errorf("worksheet header has no Answer column")
	}

	at := func(row []string, name string) string {
		j, ok := cols[name]
		if !ok || j >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[j])
	}

	var rows []model.AnswerRow
	for _, row := range grid[header+1:] {
		label := at(row, "label")
		if label == "" {
			continue // blank spacer rows are common in hand-edited sheets
		}
		r := model.AnswerRow{
			Label:  label,
			Text:   at(row, "text"),
			Answer: at(row, "answer"),
		}
		if t := at(row, "type"); t != "" {
			r.Type = model.RowType(t[0])
		} else {
			r.Type = typeForLabel(label)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func zipFileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

func parseSharedStrings(zr *zip.Reader) ([]string, error) {
	data, err := zipFileContent(zr, "xl/sharedStrings.xml")
	if err != nil {
		return nil, nil // shared strings are optional
	}
	var sst sharedStringsXML
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, fmt.Errorf("parsing shared strings: %w", err)
	}
	out := make([]string, len(sst.SI))
	for i, si := range sst.SI {
		if si.T != "" {
			out[i] = si.T
			continue
		}
		var b strings.Builder
		for _, run := range si.R {
			b.WriteString(run.T)
		}
		out[i] = b.String()
	}
	return out, nil
}

// firstWorksheet resolves the workbook's first sheet through the
// relationships file, falling back to the conventional sheet1 path.
func firstWorksheet(zr *zip.Reader) ([]byte, error) {
	target := "xl/worksheets/sheet1.xml"

	wbData, err := zipFileContent(zr, "xl/workbook.xml")
	if err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}
	var wb workbookXML
	if err := xml.Unmarshal(wbData, &wb); err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}

	if relData, err := zipFileContent(zr, "xl/_rels/workbook.xml.rels"); err == nil && len(wb.Sheets.Sheet) > 0 {
		var rels relationshipsXML
		if err := xml.Unmarshal(relData, &rels); err == nil {
			for _, rel := range rels.Relationship {
				if rel.ID == wb.Sheets.Sheet[0].RID {
					t := strings.TrimPrefix(rel.Target, "/")
					if !strings.HasPrefix(t, "xl/") {
						t = "xl/" + t
					}
					target = t
					break
				}
			}
		}
	}

	data, err := zipFileContent(zr, target)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet: %w", err)
	}
	return data, nil
}

// cellColumn converts a cell reference like "B7" to a 0-indexed column.
func cellColumn(ref string) (int, error) {
	i := 0
	for i < len(ref) && isRefLetter(ref[i]) {
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, fmt.Errorf("invalid cell reference: %s", ref)
	}
	col := 0
	for _, c := range strings.ToUpper(ref[:i]) {
		col = col*26 + int(c-'A') + 1
	}
	return col - 1, nil
}

func isRefLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func cellValue(c cellXML, shared []string) string {
	switch c.T {
	case "s":
		idx, err := strconv.Atoi(c.V)
		if err == nil && idx >= 0 && idx < len(shared) {
			return shared[idx]
		}
		return ""
	case "inlineStr":
		if c.Is != nil {
			return c.Is.T
		}
		return ""
	default:
		return c.V
	}
}
