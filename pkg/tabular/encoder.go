package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// Encoder serializes records to CSV with RFC 4180 quoting applied to every
// field. Exports are encoded fully before being written to the client, so a
// failure never produces a truncated body.
type Encoder struct {
	Header []string
}

func NewEncoder(header []string) *Encoder {
	return &Encoder{Header: header}
}

func (e *Encoder) Encode(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(e.Header); err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename builds a content-disposition filename carrying a UTC
// timestamp so repeated exports never collide.
func ExportFilename(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s.csv", prefix, t.UTC().Format("2006-01-02T15-04-05"))
}
