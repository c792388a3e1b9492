package uploads

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/confhall/confhall/pkg/composables"
	"github.com/confhall/confhall/pkg/configuration"
	"github.com/confhall/confhall/pkg/tabular"
)

// ReadTabular stores the uploaded file under the configured uploads
// directory, decodes it according to its declared MIME type, and removes the
// temp file before returning. The temp file is removed on every path;
// removal failures are logged only.
func ReadTabular(r *http.Request, field string) ([]tabular.Row, error) {
	conf := configuration.Use()

	tmp, err := SaveTemp(r, field, filepath.Join(conf.UploadsPath, "tmp"), conf.MaxUploadSize)
	if err != nil {
		return nil, err
	}
	defer tmp.Cleanup(composables.UseLogger(r.Context()))

	f, err := os.Open(tmp.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded file")
	}
	defer func() { _ = f.Close() }()

	src, err := tabular.FromUpload(tmp.ContentType, f)
	if err != nil {
		return nil, err
	}
	return tabular.ReadAll(src)
}
