package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportResultXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")
	require.NoError(t, ExportResultXLSX(path, sampleResult()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(resultSheet)
	require.NoError(t, err)
	// header, order sun, two gems, chaos star, summary
	require.Len(t, rows, 6)

	assert.Equal(t, "Core", rows[0][0])
	assert.Equal(t, "Gem %", rows[0][9])

	assert.Equal(t, "Order Sun", rows[1][0])
	assert.Equal(t, "relic", rows[1][1])
	assert.Equal(t, "9/15", rows[1][3])
	assert.Equal(t, "1.669", rows[1][8])

	assert.Equal(t, "Order gem #1", rows[2][2])
	assert.Equal(t, "attack Lv5", rows[2][5])
	assert.Equal(t, "0.17", rows[2][9])

	assert.Equal(t, "Chaos Star", rows[4][0])
	assert.Equal(t, "0/9", rows[4][3])

	assert.Equal(t, "Final %", rows[5][0])
	assert.Equal(t, "dealer", rows[5][1])
	assert.Equal(t, "1.669", rows[5][8])
}

func TestExportResultXLSX_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "result.xlsx")
	assert.Error(t, ExportResultXLSX(path, sampleResult()))
}
