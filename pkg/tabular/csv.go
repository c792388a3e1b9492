package tabular

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
)

// CSVSource decodes CSV row by row; it never buffers the whole file.
type CSVSource struct {
	reader *csv.Reader
	header []string
	closer io.Closer
}

func NewCSVSource(r io.Reader) *CSVSource {
	br := stripUTF8BOM(bufio.NewReader(r))

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	src := &CSVSource{reader: reader}
	if closer, ok := r.(io.Closer); ok {
		src.closer = closer
	}
	return src
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}

func (s *CSVSource) readHeader() error {
	record, err := s.reader.Read()
	if err == io.EOF {
		// An empty file decodes to zero rows, not an error.
		s.header = []string{}
		return nil
	}
	if err != nil {
		return decodeError(err)
	}
	header := make([]string, len(record))
	for i, name := range record {
		header[i] = strings.TrimSpace(name)
	}
	s.header = header
	return nil
}

func (s *CSVSource) Next() (Row, error) {
	if s.header == nil {
		if err := s.readHeader(); err != nil {
			return nil, err
		}
	}
	if len(s.header) == 0 {
		return nil, io.EOF
	}

	record, err := s.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, decodeError(err)
	}

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

func (s *CSVSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
