package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX(sampleRecord())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Fields", "Remarks"}, f.GetSheetList())

	fields, err := f.GetRows("Fields")
	require.NoError(t, err)
	require.NotEmpty(t, fields)
	assert.Equal(t, []string{"Field", "Value", "Comparison", "Data Source", "Path"}, fields[0])
	assert.Equal(t, "Primary Result", fields[1][0])
	assert.Equal(t, "0 - The request passed OK.", fields[1][1])

	remarks, err := f.GetRows("Remarks")
	require.NoError(t, err)
	require.Len(t, remarks, 3)
	assert.Equal(t, "Processing", remarks[1][0])
	assert.Equal(t, "20", remarks[1][1])
	assert.Equal(t, "Risk Management", remarks[2][0])
}
