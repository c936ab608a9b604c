package tcphttp

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Resolver maps a route and resource onto a regular file below the content root.
type Resolver struct {
	root  string
	pages *Pages
}

// NewResolver inits the resolver.
func NewResolver(contentRoot string, pages *Pages) *Resolver {
	return &Resolver{root: contentRoot, pages: pages}
}

// Resolve reads contentRoot/route/resource. When that is not an existing regular file inside the
// content root the not-found page is returned with [CodeNotFound]. The error is only non-nil when
// reading fails, including when the not-found page itself is missing.
func (r *Resolver) Resolve(_ context.Context, route, resource string) (string, Code, error) {
	if filePath, ok := r.contained(route, resource); ok && isRegularFile(filePath) {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", CodeUnknown, errors.Wrapf(err, "read %q", filePath)
		}

		return string(data), CodeOK, nil
	}

	body, err := r.pages.Load(PageNotFound)
	if err != nil {
		return "", CodeUnknown, err
	}

	return body, CodeNotFound, nil
}

// isRegularFile treats any stat failure as the file not existing.
func isRegularFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// contained joins the path and reports whether it stays below the content root.
func (r *Resolver) contained(route, resource string) (string, bool) {
	filePath := filepath.Join(r.root, route, resource)

	rel, err := filepath.Rel(r.root, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filePath, false
	}

	return filePath, true
}
