package exports

import (
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/nzai/pubapi/constants"
	"github.com/nzai/pubapi/quotes"
	"go.uber.org/zap"
)

// SheetName worksheet the table is written to
const SheetName = "Sheet1"

// column letters for date followed by quotes.Columns
var columnNames = []string{"A", "B", "C", "D", "E", "F"}

// WriteXLSX write table into an excel workbook at path.
// Row 1 is the symbol, row 2 the header, quotes start at row 3.
func WriteXLSX(table quotes.Table, symbol, path string) error {
	f := excelize.NewFile()

	f.SetCellValue(SheetName, "A1", symbol)

	header := append([]string{"date"}, quotes.Columns...)
	for index, name := range header {
		f.SetCellValue(SheetName, axis(index, 2), name)
	}

	for rowIndex, quote := range table {
		row := rowIndex + 3
		f.SetCellValue(SheetName, axis(0, row), quote.Date.Format(constants.DatePattern))
		for index, value := range quote.Values() {
			f.SetCellValue(SheetName, axis(index+1, row), value)
		}
	}

	err := f.SaveAs(path)
	if err != nil {
		zap.L().Error("save xlsx failed", zap.Error(err), zap.String("path", path))
		return err
	}

	zap.L().Info("xlsx saved", zap.String("symbol", symbol), zap.String("path", path), zap.Int("rows", len(table)))

	return nil
}

func axis(column, row int) string {
	return fmt.Sprintf("%s%d", columnNames[column], row)
}
