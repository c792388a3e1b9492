package tabular

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelSource decodes the first sheet of a workbook. Unlike CSV, the whole
// file is parsed up front; that is a property of the format, not a choice.
type ExcelSource struct {
	header []string
	rows   [][]string
	pos    int
}

func NewExcelSource(r io.Reader) (*ExcelSource, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, decodeError(err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &ExcelSource{}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, decodeError(err)
	}

	src := &ExcelSource{}
	if len(rows) > 0 {
		header := make([]string, len(rows[0]))
		for i, name := range rows[0] {
			header[i] = strings.TrimSpace(name)
		}
		src.header = header
		src.rows = rows[1:]
	}
	return src, nil
}

func (s *ExcelSource) Next() (Row, error) {
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	record := s.rows[s.pos]
	s.pos++

	row := make(Row, len(s.header))
	for i, name := range s.header {
		if name == "" {
			continue
		}
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}
	return row, nil
}

func (s *ExcelSource) Close() error {
	return nil
}
