package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/timegrid"
)

// ── export module business errors ──

var ErrExportGenerateFail = errors.New("generate workbook failed")

// Fixed identity columns to the left of the slot grid.
const exportSlotStartCol = 7

// ExportService renders the assembled day grid into an xlsx workbook.
//
// Layout mirrors the interactive grid so an export always matches the UI
// state for the same day and filters:
//   - row 1: "Дата" + the day as DD.MM.YYYY
//   - row 2: identity headers, a layer-label column, then the 48 slot labels
//   - three rows per vehicle (schedule / plan / fact); identity cells merged
//   - plan cells carry the first request number plus "+N" when more share
//     the slot; fills come from the stored palette
type ExportService interface {
	// Export returns the workbook content and a suggested filename.
	Export(ctx context.Context, req *dto.GridRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	cols    timegrid.ColumnMap
	grids   GridService
	palette PaletteService
	logger  *zap.Logger
}

// NewExportService builds an ExportService.
func NewExportService(cols timegrid.ColumnMap, grids GridService, palette PaletteService, logger *zap.Logger) ExportService {
	return &exportService{cols: cols, grids: grids, palette: palette, logger: logger}
}

func (s *exportService) Export(ctx context.Context, req *dto.GridRequest) (*bytes.Buffer, string, error) {
	grid, err := s.grids.GetGrid(ctx, req)
	if err != nil {
		return nil, "", err
	}
	colors, err := s.palette.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	buf, err := s.render(grid, colors)
	if err != nil {
		s.logger.Error("write workbook failed", zap.String("day", grid.Day), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("export_%s.xlsx", grid.Day), nil
}

func (s *exportService) render(grid *timegrid.Grid, colors *dto.PaletteResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "График"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E7E6E6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	scheduleFill, err := fillStyle(f, colors.ScheduleFill)
	if err != nil {
		return nil, err
	}
	planFill, err := fillStyle(f, colors.PlanFill)
	if err != nil {
		return nil, err
	}
	factFill, err := fillStyle(f, colors.FactFill)
	if err != nil {
		return nil, err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	// ── date row ──
	f.SetCellValue(sheet, "A1", "Дата")
	if d, perr := time.Parse("2006-01-02", grid.Day); perr == nil {
		f.SetCellValue(sheet, "B1", d.Format("02.01.2006"))
	} else {
		f.SetCellValue(sheet, "B1", grid.Day)
	}

	// ── header row ──
	headers := []string{
		s.cols.NameFinal,
		s.cols.PlateFinal,
		s.cols.ClassFinal,
		"График работы",
		"Режим работы",
		"",
	}
	for i, h := range headers {
		cell := cellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for j, slot := range grid.Slots {
		cell := cellName(exportSlotStartCol+j, 2)
		f.SetCellValue(sheet, cell, slot)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	// ── vehicle blocks ──
	row := 3
	for _, v := range grid.Vehicles {
		regime := ""
		if v.RegimeStart != "" && v.RegimeEnd != "" {
			regime = v.RegimeStart + " - " + v.RegimeEnd
		}

		f.SetCellValue(sheet, cellName(1, row), v.Name)
		f.SetCellValue(sheet, cellName(2, row), v.Plate)
		f.SetCellValue(sheet, cellName(3, row), v.Class)
		f.SetCellValue(sheet, cellName(4, row), v.ScheduleText)
		f.SetCellValue(sheet, cellName(5, row), regime)

		for i, label := range []string{"График работы", "План", "Факт"} {
			cell := cellName(6, row+i)
			f.SetCellValue(sheet, cell, label)
			f.SetCellStyle(sheet, cell, cell, labelStyle)
		}
		for col := 1; col <= 5; col++ {
			f.MergeCell(sheet, cellName(col, row), cellName(col, row+2))
		}

		for j, slot := range grid.Slots {
			col := exportSlotStartCol + j

			if grid.Schedule[v.Plate][slot] == 1 {
				cell := cellName(col, row)
				f.SetCellStyle(sheet, cell, cell, scheduleFill)
			}
			if nums := grid.Plan[v.Plate][slot]; len(nums) > 0 {
				cell := cellName(col, row+1)
				f.SetCellStyle(sheet, cell, cell, planFill)
				text := nums[0]
				if len(nums) > 1 {
					text = fmt.Sprintf("%s +%d", nums[0], len(nums)-1)
				}
				f.SetCellValue(sheet, cell, text)
			}
			if grid.Fact[v.Plate][slot] == 1 {
				cell := cellName(col, row+2)
				f.SetCellStyle(sheet, cell, cell, factFill)
			}
		}

		row += 3
	}

	// ── column widths and frozen panes ──
	widths := map[int]float64{1: 28, 2: 16, 3: 18, 4: 18, 5: 16, 6: 14}
	for col, w := range widths {
		name, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(sheet, name, name, w)
	}
	first, _ := excelize.ColumnNumberToName(exportSlotStartCol)
	last, _ := excelize.ColumnNumberToName(exportSlotStartCol + len(grid.Slots) - 1)
	f.SetColWidth(sheet, first, last, 4)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze: true, XSplit: 6, YSplit: 2,
		TopLeftCell: "G3", ActivePane: "bottomRight",
	})

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ── helpers ──

func fillStyle(f *excelize.File, hex string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{hex}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
