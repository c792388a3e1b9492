package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncoder_EscapesCommasQuotesNewlines(t *testing.T) {
	enc := NewEncoder([]string{"ID", "Comment"})
	out, err := enc.Encode([][]string{
		{"1", `He said, "hi"`},
		{"2", "line one\nline two"},
	})
	require.NoError(t, err)

	got := string(out)
	require.Contains(t, got, `"He said, ""hi"""`)
	require.Contains(t, got, "\"line one\nline two\"")
}

func TestEncoder_ZeroRecordsYieldsHeaderOnly(t *testing.T) {
	enc := NewEncoder([]string{"ID", "Job Title", "Applicant Email"})
	out, err := enc.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, "ID,Job Title,Applicant Email\n", string(out))
}

func TestExportFilename_UTCTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 9, 14, 30, 5, 0, time.FixedZone("EST", -5*3600))
	require.Equal(t, "resumes-2025-03-09T19-30-05.csv", ExportFilename("resumes", at))
}
