package resolve

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
)

// resolveDescriptor locates the image description file for the request.
//
// A name that already carries the .wks extension is used as a literal path
// without an existence check; reading it is the engine's concern. Any other
// name is searched as <name>.wks in, first, the directory named by the
// WKS_FILE_DIR build variable (lookup-driven mode only), then the configured
// canned-image directories. The returned error names every searched
// directory when nothing matches.
func (r *Resolver) resolveDescriptor(ctx context.Context, req *Request) (string, error) {
	name := req.Descriptor
	if strings.HasSuffix(name, constants.WksExtension) {
		return name, nil
	}

	searched := make([]string, 0, len(r.cannedDirs)+1)
	if req.ImageName != "" {
		if dir, ok, err := r.env.LookupVariable(ctx, constants.VarWksFileDir, req.ImageName); err != nil {
			return "", errors.Wrap(err, "looking up "+constants.VarWksFileDir)
		} else if ok && dir != "" {
			searched = append(searched, dir)
		}
	}
	searched = append(searched, r.cannedDirs...)

	for _, dir := range searched {
		candidate := filepath.Join(dir, name+constants.WksExtension)
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			r.log.Debug().Str("descriptor", candidate).Msg("resolved image description")
			return candidate, nil
		}
	}

	return "", errors.Wrapf(errors.ErrImageDescriptorNotFound,
		"no %q image found in: %s", name, strings.Join(searched, ", "))
}
