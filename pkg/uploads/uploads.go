package uploads

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TempFile is a scoped upload: written at request start, removed on every
// exit path via Cleanup.
type TempFile struct {
	Path        string
	Name        string
	ContentType string
}

// SaveTemp writes the multipart file under the given field to dir and
// returns its location together with the declared content type.
func SaveTemp(r *http.Request, field, dir string, maxSize int64) (*TempFile, error) {
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return nil, errors.Wrap(err, "parse multipart form")
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, errors.Wrapf(err, "missing upload field %q", field)
	}
	defer func() { _ = file.Close() }()

	return write(file, header, dir)
}

func write(file multipart.File, header *multipart.FileHeader, dir string) (*TempFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}

	name := uuid.NewString()
	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create upload file")
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, file); err != nil {
		_ = os.Remove(path)
		return nil, errors.Wrap(err, "write upload file")
	}

	return &TempFile{
		Path:        path,
		Name:        name,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

// Cleanup removes the temp file. Removal failure does not change the
// user-visible outcome of the request; it is logged and swallowed.
func (f *TempFile) Cleanup(log *logrus.Entry) {
	if f == nil {
		return
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("path", f.Path).Warn("failed to remove uploaded temp file")
	}
}

// SaveStored keeps a multipart file permanently under dir (resumes) and
// returns the generated filename.
func SaveStored(r *http.Request, field, dir string, maxSize int64) (string, error) {
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return "", errors.Wrap(err, "parse multipart form")
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		// Resume attachment is optional on some forms.
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", errors.Wrapf(err, "read upload field %q", field)
	}
	defer func() { _ = file.Close() }()

	saved, err := write(file, header, dir)
	if err != nil {
		return "", err
	}
	return saved.Name, nil
}
