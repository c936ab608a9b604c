package tcphttp

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// StaticDir is the directory under the content root that holds the canned error pages.
const StaticDir = "Static"

// PageName names one of the canned error pages.
type PageName string

const (
	PageNotFound            PageName = "NotFound.html"
	PageUnauthorized        PageName = "Unauthorized.html"
	PageInternalServerError PageName = "InternalServerError.html"
)

// pageForCode returns the page that answers an outcome code, false for outcomes without one.
func pageForCode(c Code) (PageName, bool) {
	switch c {
	case CodeUnauthorized:
		return PageUnauthorized, true
	case CodeInternalServerError:
		return PageInternalServerError, true
	case CodeNotFound:
		return PageNotFound, true
	default:
		return "", false
	}
}

// Pages loads the canned error pages from disk. Pages are read on every call.
type Pages struct {
	root string
}

// NewPages inits a page provider for the content root.
func NewPages(contentRoot string) *Pages {
	return &Pages{root: contentRoot}
}

// Load reads the named page. A missing page is an error, there is no fallback content.
func (p *Pages) Load(name PageName) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.root, StaticDir, string(name)))
	if err != nil {
		return "", errors.Wrapf(err, "load page %q", name)
	}

	return string(data), nil
}
