package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"nceerrors/internal/domain/errorrecord"
)

const DefaultSheet = "Sheet1"

// Колонки, обязательные в первой строке листа
var RequiredColumns = []string{
	"error_description",
	"category",
	"customer_overview_type",
	"error_date",
	"error_count",
}

// Result строки листа, пригодные для вставки, и число отброшенных
type Result struct {
	Rows    []errorrecord.Input
	Dropped int
}

// ParseFile читает лист с записями об ошибках. Строки с пустыми
// или нечитаемыми значениями отбрасываются.
func ParseFile(path, sheet string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	return Parse(f, sheet)
}

func Parse(f *excelize.File, sheet string) (*Result, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx == -1 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	// сырые значения: даты приходят серийным номером Excel
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headerMap := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		headerMap[strings.TrimSpace(strings.ToLower(header))] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := headerMap[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing expected columns in Excel: %s", strings.Join(missing, ", "))
	}

	res := &Result{}
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		in, ok := parseRow(row, headerMap)
		if !ok {
			res.Dropped++
			continue
		}
		res.Rows = append(res.Rows, in)
	}

	return res, nil
}

func parseRow(row []string, headerMap map[string]int) (errorrecord.Input, bool) {
	cell := func(col string) string {
		i := headerMap[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	in := errorrecord.Input{
		Description:          cell("error_description"),
		Category:             cell("category"),
		CustomerOverviewType: cell("customer_overview_type"),
	}
	if in.Description == "" || in.Category == "" || in.CustomerOverviewType == "" {
		return in, false
	}

	date, ok := cellDate(cell("error_date"))
	if !ok {
		return in, false
	}
	in.Date = date

	count, ok := cellCount(cell("error_count"))
	if !ok {
		return in, false
	}
	in.Count = count

	return in, true
}

func cellDate(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return "", false
		}
		return t.Format(errorrecord.DateLayout), true
	}

	t, err := errorrecord.ParseDate(raw)
	if err != nil {
		return "", false
	}
	return t.Format(errorrecord.DateLayout), true
}

func cellCount(raw string) (string, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
