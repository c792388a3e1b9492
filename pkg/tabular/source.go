package tabular

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Row is one decoded spreadsheet/CSV row, keyed by column header.
type Row map[string]string

// Source produces ordered row mappings from an uploaded tabular file.
type Source interface {
	// Next returns the next row mapping or io.EOF when the source is
	// exhausted.
	Next() (Row, error)
	Close() error
}

// DecodeError marks a malformed or unreadable upload. It aborts the whole
// upload; no rows from a failed decode are ever committed.
type DecodeError struct {
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode tabular data: %v", e.cause)
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

func decodeError(err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{cause: err}
}

const (
	mimeCSV  = "text/csv"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXLS  = "application/vnd.ms-excel"
)

// FromUpload selects a decoder for the uploaded file based on its declared
// content type. Ambiguous declarations (e.g. application/octet-stream) are
// resolved by content sniffing.
func FromUpload(contentType string, r io.Reader) (Source, error) {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch mediaType {
	case mimeCSV, "application/csv", "text/plain":
		return NewCSVSource(r), nil
	case mimeXLSX, mimeXLS:
		return NewExcelSource(r)
	}

	br := bufio.NewReaderSize(r, 3072)
	head, err := br.Peek(3072)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, decodeError(err)
	}
	switch mimetype.Detect(head).String() {
	case mimeXLSX, mimeXLS, "application/zip":
		return NewExcelSource(br)
	}
	return NewCSVSource(br), nil
}

// ReadAll drains a source into memory. Spreadsheet sources are already fully
// parsed; for CSV this buys convenience at the cost of streaming.
func ReadAll(src Source) ([]Row, error) {
	defer func() { _ = src.Close() }()

	var rows []Row
	for {
		row, err := src.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
