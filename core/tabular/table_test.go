package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRead(t *testing.T) {
	input := "\ufeffStore Code (SKU), Name,Price\r\n" +
		"A1, Widget,10.00\n" +
		"\"B2\",\"Gadget, large\",25\n" +
		"C3\n"

	table, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	sku, ok := table.Column("store code (sku)")
	require.True(t, ok)
	name, ok := table.Column("Name")
	require.True(t, ok)
	price, ok := table.Column("Cost", "Price")
	require.True(t, ok)

	rows := table.Rows()
	assert.Equal(t, "A1", rows[0].Get(sku))
	assert.Equal(t, "Widget", rows[0].Get(name))
	assert.Equal(t, "Gadget, large", rows[1].Get(name))
	assert.Equal(t, "25", rows[1].Get(price))
	assert.Equal(t, "", rows[2].Get(price))
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[2].Line)
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestTable_ColumnMissing(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	col, ok := table.Column("c")
	assert.False(t, ok)
	assert.Equal(t, -1, col)
	assert.Equal(t, "", Row{}.Get(col))
}

func TestSheet_WriteCSV(t *testing.T) {
	sheet := Sheet{
		Header: []string{"Name", "Totals Equal?"},
		Rows: [][]string{
			{"Widget", "Yes"},
			{"Gadget, large", "NO!!!"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, sheet.Write(&buf, FormatCSV))
	assert.Equal(t, "Name,Totals Equal?\r\nWidget,Yes\r\n\"Gadget, large\",NO!!!\r\n", buf.String())

	// Round trip through the reader
	table, err := Read(&buf)
	require.NoError(t, err)
	col, _ := table.Column("name")
	assert.Equal(t, "Gadget, large", table.Rows()[1].Get(col))
}

func TestSheet_WriteXLSX(t *testing.T) {
	sheet := Sheet{
		Name:   "Item Sales",
		Header: []string{"Name", "Quantity"},
		Rows:   [][]string{{"Widget", "3.00"}},
	}

	var buf bytes.Buffer
	require.NoError(t, sheet.Write(&buf, FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Item Sales")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name", "Quantity"}, {"Widget", "3.00"}}, rows)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	assert.Contains(t, f.ContentType(), "spreadsheetml")

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	assert.Equal(t, "text/csv", f.ContentType())

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}
