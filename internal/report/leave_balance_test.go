package report

import (
	"bytes"
	"testing"

	"github.com/andikarp/hris-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildLeaveBalanceWorkbook(t *testing.T) {
	reports := []dto.LeaveBalanceReport{
		{
			EmployeeID:          "emp-1",
			FullName:            "Ana Widjaja",
			EmploymentType:      "PERMANENT",
			TotalBalance:        decimal.NewFromInt(12),
			TotalAdded:          decimal.NewFromInt(1),
			TotalBalanceUsed:    decimal.NewFromInt(5),
			CurrentLeaveBalance: decimal.NewFromInt(8),
		},
		{
			EmployeeID:          "emp-2",
			FullName:            "Budi Santoso",
			EmploymentType:      "CONTRACT",
			TotalBalance:        decimal.NewFromFloat(7.5),
			TotalAdded:          decimal.Zero,
			TotalBalanceUsed:    decimal.NewFromInt(2),
			CurrentLeaveBalance: decimal.NewFromFloat(5.5),
		},
	}

	data, err := BuildLeaveBalanceWorkbook(reports)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(leaveBalanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header row plus one row per employee")

	assert.Equal(t, leaveBalanceHeaders, rows[0])
	assert.Equal(t, "emp-1", rows[1][0])
	assert.Equal(t, "Ana Widjaja", rows[1][1])
	assert.Equal(t, "8", rows[1][6])
	assert.Equal(t, "emp-2", rows[2][0])
	assert.Equal(t, "5.5", rows[2][6])
}

func TestBuildLeaveBalanceWorkbook_Empty(t *testing.T) {
	data, err := BuildLeaveBalanceWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(leaveBalanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row")
}
