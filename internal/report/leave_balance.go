// Package report renders read-only reports as downloadable workbooks.
package report

import (
	"bytes"
	"fmt"

	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/xuri/excelize/v2"
)

const leaveBalanceSheet = "Leave Balances"

var leaveBalanceHeaders = []string{
	"Employee ID",
	"Full Name",
	"Employment Type",
	"Total Balance",
	"Total Added",
	"Total Balance Used",
	"Current Leave Balance",
}

// BuildLeaveBalanceWorkbook renders the balance reports as an .xlsx
// workbook, one row per employee with a header row.
func BuildLeaveBalanceWorkbook(reports []dto.LeaveBalanceReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(leaveBalanceSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, header := range leaveBalanceHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(leaveBalanceSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, rep := range reports {
		values := []interface{}{
			rep.EmployeeID,
			rep.FullName,
			rep.EmploymentType,
			rep.TotalBalance.InexactFloat64(),
			rep.TotalAdded.InexactFloat64(),
			rep.TotalBalanceUsed.InexactFloat64(),
			rep.CurrentLeaveBalance.InexactFloat64(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(leaveBalanceSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialise workbook: %w", err)
	}
	return buf.Bytes(), nil
}
