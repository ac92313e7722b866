package serviceImp

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	repo "github.com/jaybhuva31/Paaksathi-AI/pkg/export/repository"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/export/service"
)

const (
	sheetName   = "Users"
	maxColWidth = 50
)

var headers = []string{"નામ", "મોબાઇલ", "ઈમેલ", "નોંધણી તારીખ (IST)"}

type exportSvc struct {
	r   repo.ExportRepository
	loc *time.Location
	now func() time.Time
}

func NewExportService(r repo.ExportRepository, loc *time.Location) service.ExportService {
	if loc == nil {
		loc = time.UTC
	}
	return &exportSvc{r: r, loc: loc, now: time.Now}
}

func orDash(s string, valid bool) string {
	if !valid || s == "" {
		return emptyCell
	}
	return s
}

func (s *exportSvc) Users(ctx context.Context) (*service.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	users, err := s.r.UsersNewestFirst()
	if err != nil {
		return nil, apperr.Export(fmt.Errorf("read users: %w", err))
	}

	table := make([][]string, 0, len(users)+1)
	table = append(table, headers)
	for _, u := range users {
		table = append(table, []string{
			orDash(u.Name.String, u.Name.Valid),
			orDash(u.Mobile.String, u.Mobile.Valid),
			orDash(u.Email.String, u.Email.Valid),
			registrationCell(u.CreatedAt.String, u.CreatedAt.Valid, s.loc),
		})
	}

	data, err := renderWorkbook(table)
	if err != nil {
		return nil, apperr.Export(err)
	}
	name := fmt.Sprintf("users_export_%s.xlsx", s.now().In(s.loc).Format("20060102_150405"))
	return &service.File{Name: name, Data: data}, nil
}

// renderWorkbook writes table[0] as a bold header and sizes each column to
// its longest value plus two, capped at maxColWidth.
func renderWorkbook(table [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	widths := make([]int, len(headers))
	for i, row := range table {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
			if n := utf8.RuneCountInString(v); n > widths[j] {
				widths[j] = n
			}
		}
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, axis, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", last+"1", bold); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for j, w := range widths {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, float64(min(w+2, maxColWidth))); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
