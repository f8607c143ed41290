package corpus

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXColumns is the required header row of an import workbook.
var XLSXColumns = []string{"id", "language", "category", "level", "prompt", "target"}

// ImportResult summarizes an XLSX import.
type ImportResult struct {
	Rows     int
	Imported int
	Skipped  int
	Errors   []string
}

// LoadXLSX reads items from the first sheet of an .xlsx workbook and merges
// them into base. Rows with missing fields are skipped and reported. Items
// whose id already exists in base are replaced.
func LoadXLSX(path string, base *Catalog) (*Catalog, *ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	col, err := headerIndex(rows[0])
	if err != nil {
		return nil, nil, err
	}

	items := make(map[string]map[string][]Item)
	var languages []Language
	var categories []Category
	if base != nil {
		languages = base.Languages()
		categories = base.Categories()
		for lang, byCat := range base.items {
			items[lang] = make(map[string][]Item, len(byCat))
			for cat, list := range byCat {
				items[lang][cat] = append([]Item(nil), list...)
			}
		}
	}

	res := &ImportResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(name string) string {
			idx := col[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if isBlank(row) {
			continue
		}
		res.Rows++

		it := Item{
			ID:     cell("id"),
			Level:  Level(strings.ToLower(cell("level"))),
			Prompt: cell("prompt"),
			Target: cell("target"),
		}
		lang := strings.ToLower(cell("language"))
		cat := strings.ToLower(cell("category"))
		if it.ID == "" || lang == "" || cat == "" || it.Target == "" {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: id, language, category and target are required", rowNum))
			continue
		}
		if !it.Level.Valid() {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: unknown level %q", rowNum, it.Level))
			continue
		}

		if items[lang] == nil {
			items[lang] = make(map[string][]Item)
			if !containsLanguage(languages, lang) {
				languages = append(languages, Language{ID: lang, Label: titleCase(lang)})
			}
		}
		removeItem(items[lang], it.ID)
		items[lang][cat] = append(items[lang][cat], it)
		res.Imported++
	}

	c, err := New(languages, categories, items)
	if err != nil {
		return nil, nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, res, nil
}

// WriteXLSXTemplate writes a workbook containing the header row and the
// items of c, suitable for editing and re-importing.
func WriteXLSXTemplate(path string, c *Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, h := range XLSXColumns {
		if err := f.SetCellValue(sheet, cellName(i, 1), h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	row := 2
	if c != nil {
		for _, lang := range c.Languages() {
			for _, cat := range c.Categories() {
				for _, it := range c.Items(lang.ID, cat.ID) {
					values := []string{it.ID, lang.ID, cat.ID, string(it.Level), it.Prompt, it.Target}
					for i, v := range values {
						if err := f.SetCellValue(sheet, cellName(i, row), v); err != nil {
							return fmt.Errorf("write row %d: %w", row, err)
						}
					}
					row++
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func headerIndex(header []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range XLSXColumns {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("missing column %q in header", want)
		}
	}
	return col, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func containsLanguage(langs []Language, id string) bool {
	for _, l := range langs {
		if l.ID == id {
			return true
		}
	}
	return false
}

func removeItem(byCat map[string][]Item, id string) {
	for cat, list := range byCat {
		for i, it := range list {
			if it.ID == id {
				byCat[cat] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}
