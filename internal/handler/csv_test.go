package handler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadImportCSVMapsColumnsByHeader(t *testing.T) {
	in := strings.NewReader(
		"brand,name,stock,unit,category,status,image,extra\n" +
			"Acme,Widget,10,pcs,Hardware,active,widget.png,ignored\n")

	rows, err := readImportCSV(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Widget", rows[0].Name)
	assert.Equal(t, "Acme", rows[0].Brand)
	assert.Equal(t, "10", rows[0].Stock)
	assert.Equal(t, "widget.png", rows[0].Image)
}

func TestReadImportCSVMissingColumnsReadEmpty(t *testing.T) {
	in := strings.NewReader("name,stock\nWidget,10\n")

	rows, err := readImportCSV(in)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Widget", rows[0].Name)
	assert.Equal(t, "", rows[0].Unit)
	assert.Equal(t, "", rows[0].Image)
}

func TestReadImportCSVEmptyInput(t *testing.T) {
	rows, err := readImportCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteExportCSVHeaderAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	err := writeExportCSV(&buf, [][]string{
		{`Widget "Pro"`, "pcs", "Hardware", "Acme, Inc.", "10", "active", ""},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,unit,category,brand,stock,status,image", lines[0])
	assert.Contains(t, lines[1], `"Widget ""Pro"""`)
	assert.Contains(t, lines[1], `"Acme, Inc."`)
}
