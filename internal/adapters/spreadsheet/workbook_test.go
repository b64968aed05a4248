package spreadsheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fr0stylo/enms/internal/app/ports"
)

func writeWorkbook(t *testing.T, sheets map[string][][]any) string {
	t.Helper()

	file := excelize.NewFile()
	for name, rows := range sheets {
		_, err := file.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, file.SetSheetRow(name, cell, &values))
		}
	}
	require.NoError(t, file.DeleteSheet("Sheet1"))
	path := filepath.Join(t.TempDir(), "topology.xlsx")
	require.NoError(t, file.SaveAs(path))
	require.NoError(t, file.Close())
	return path
}

func TestRecordsZipsRowsWithHeader(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{
		"Device": {
			{"name", "vendor", "longitude"},
			{"Washington", "Arista", -77.03},
			{},
			{"Boston", "Cisco"},
		},
	})

	workbook, err := Open(path)
	require.NoError(t, err)
	defer workbook.Close()

	records, err := workbook.Records("Device")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Washington", records[0]["name"])
	require.Equal(t, "-77.03", records[0]["longitude"])
	require.Equal(t, "Cisco", records[1]["vendor"])
	_, hasLongitude := records[1]["longitude"]
	require.False(t, hasLongitude)
}

func TestRecordsMissingSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, map[string][][]any{"Device": {{"name"}}})
	workbook, err := Open(path)
	require.NoError(t, err)
	defer workbook.Close()

	_, err = workbook.Records("Link")
	require.True(t, errors.Is(err, ports.ErrSheetNotFound), "got %v", err)
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}

func TestShippedTopologyHasExampleDevice(t *testing.T) {
	t.Parallel()

	workbook, err := Open(filepath.Join("..", "..", "..", "projects", "usa.xlsx"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = workbook.Close() })

	devices, err := workbook.Records("Device")
	require.NoError(t, err)
	require.Len(t, devices, 8)
	require.Equal(t, "Washington", devices[0]["name"])
	require.Equal(t, "Arista", devices[0]["vendor"])

	links, err := workbook.Records("Link")
	require.NoError(t, err)
	require.Len(t, links, 9)
	for _, link := range links {
		require.NotEmpty(t, link["source_name"])
		require.NotEmpty(t, link["destination_name"])
	}
}
