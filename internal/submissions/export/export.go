// Package export renders the submission listing as an XLSX workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet is the name of the single worksheet produced by WriteXLSX.
const Sheet = "Submissions"

// Row is one stored file joined with its index record. Student, Hash and
// SubmittedAt are empty when the file has no index record.
type Row struct {
	Filename    string
	Size        int64
	Student     string
	Hash        string
	SubmittedAt time.Time
}

var headers = []any{"Filename", "Size (bytes)", "Student", "SHA-256", "Submitted At"}

var widths = []struct {
	col   string
	width float64
}{
	{"A", 32},
	{"B", 14},
	{"C", 20},
	{"D", 66},
	{"E", 20},
}

// WriteXLSX writes rows to w as a workbook with a header line.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return err
	}

	if err := setRow(f, 1, headers); err != nil {
		return err
	}

	for i, r := range rows {
		submitted := ""
		if !r.SubmittedAt.IsZero() {
			submitted = r.SubmittedAt.Local().Format("2006-01-02 15:04:05")
		}
		if err := setRow(f, i+2, []any{r.Filename, r.Size, r.Student, r.Hash, submitted}); err != nil {
			return err
		}
	}

	for _, c := range widths {
		if err := f.SetColWidth(Sheet, c.col, c.col, c.width); err != nil {
			return fmt.Errorf("xlsx column %s: %w", c.col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// setRow writes values into line starting at column A.
func setRow(f *excelize.File, line int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(Sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx row %d: %w", line, err)
	}
	return nil
}
