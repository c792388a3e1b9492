package tabular

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVSource_MapsRowsByHeader(t *testing.T) {
	input := "sessionId,title,speakers,time,room,track\n" +
		"ACD101,AWS Basics,John Doe,10:00 AM,Hall A,Beginner\n"

	rows, err := ReadAll(NewCSVSource(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "ACD101", rows[0]["sessionId"])
	require.Equal(t, "John Doe", rows[0]["speakers"])
	require.Equal(t, "Beginner", rows[0]["track"])
}

func TestCSVSource_StripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFemail,name\nFoo@Bar.COM,Foo\n"

	rows, err := ReadAll(NewCSVSource(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Foo@Bar.COM", rows[0]["email"])
}

func TestCSVSource_ShortRecordsPadToEmpty(t *testing.T) {
	input := "title,company,location\nEngineer,Acme\n"

	rows, err := ReadAll(NewCSVSource(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Acme", rows[0]["company"])
	require.Equal(t, "", rows[0]["location"])
}

func TestCSVSource_QuotedFieldRoundTrip(t *testing.T) {
	original := `He said, "hi"`
	encoded, err := NewEncoder([]string{"comment"}).Encode([][]string{{original}})
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"He said, ""hi"""`)

	rows, err := ReadAll(NewCSVSource(strings.NewReader(string(encoded))))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, original, rows[0]["comment"])
}

func TestCSVSource_EmptyFileYieldsNoRows(t *testing.T) {
	rows, err := ReadAll(NewCSVSource(strings.NewReader("")))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestCSVSource_MalformedQuoteIsDecodeError(t *testing.T) {
	input := "title,company\n\"unterminated,Acme\n"

	_, err := ReadAll(NewCSVSource(strings.NewReader(input)))
	require.Error(t, err)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestFromUpload_SelectsByDeclaredType(t *testing.T) {
	src, err := FromUpload("text/csv; charset=utf-8", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)
	_, ok := src.(*CSVSource)
	require.True(t, ok)
}

func TestFromUpload_SniffsAmbiguousCSV(t *testing.T) {
	src, err := FromUpload("application/octet-stream", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	rows, err := ReadAll(src)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "1", rows[0]["a"])
}
