package csvdb

import (
	"fmt"
	"goDataIngestion/pkg/utils"
	"strings"

	"github.com/pkg/errors"
)

// Table is an in-memory CSV dataset: a header row followed by data rows.
// Values are kept as the text found in the source file.
type Table struct {
	columns []string
	colMap  map[string]int
	rows    [][]string
}

func NewTable(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, errors.New("table needs at least one column")
	}
	t := new(Table)
	t.columns = columns
	colMap := make(map[string]int)
	for i, col := range columns {
		colMap[col] = i
	}
	t.colMap = colMap
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.New(fmt.Sprintf("row %d has %d fields while the header has %d",
				i, len(row), len(columns)))
		}
	}
	t.rows = rows
	return t, nil
}

// ReadTable loads a CSV file whose first record is the header.
// Files ending with .gz or .gzip are decompressed on the fly.
func ReadTable(path string) (*Table, error) {
	reader, err := newReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.close()

	if !reader.next() {
		if err := reader.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New(fmt.Sprintf("%s has no header row", path))
	}
	columns := make([]string, len(reader.values))
	copy(columns, reader.values)
	columns[0] = strings.TrimPrefix(columns[0], cUTF8BOM)

	rows := make([][]string, 0)
	for reader.next() {
		rows = append(rows, reader.values)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return NewTable(columns, rows)
}

func (t *Table) Columns() []string {
	return t.columns
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Row(i int) []string {
	return t.rows[i]
}

func (t *Table) GetColIdx(colName string) int {
	i, ok := t.colMap[colName]
	if ok {
		return i
	}
	return -1
}

// Subset returns a table sharing the header with the rows at indexes, in that order.
func (t *Table) Subset(indexes []int) (*Table, error) {
	rows := make([][]string, len(indexes))
	for i, idx := range indexes {
		if idx < 0 || idx >= len(t.rows) {
			return nil, errors.New(fmt.Sprintf("row index %d out of range [0,%d)", idx, len(t.rows)))
		}
		rows[i] = t.rows[idx]
	}
	return &Table{columns: t.columns, colMap: t.colMap, rows: rows}, nil
}

// WriteTo stores the table at path with its header row. CWriteModeWrite
// truncates an existing file; CWriteModeAppend adds rows and only writes the
// header when the file is new.
func (t *Table) WriteTo(path, writeMode string, bufferSize int) error {
	withHeader := writeMode == CWriteModeWrite || !utils.PathExist(path)
	writer, err := newWriter(path, writeMode)
	if err != nil {
		return err
	}

	if withHeader {
		if err := writer.write(t.columns); err != nil {
			writer.close()
			return err
		}
	}

	buff := newInsertBuffer(bufferSize)
	for _, row := range t.rows {
		if buff.register(row) {
			if err := t.flush(writer, buff); err != nil {
				writer.close()
				return err
			}
		}
	}
	if err := t.flush(writer, buff); err != nil {
		writer.close()
		return err
	}
	return writer.close()
}

func (t *Table) flush(writer *Writer, buff *insertBuff) error {
	for _, row := range buff.rows {
		if err := writer.write(row); err != nil {
			buff.init()
			return err
		}
	}
	buff.init()
	return writer.flush()
}
