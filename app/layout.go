package app

import (
	"os"
	"path/filepath"

	"github.com/advdv/tcphttp"
	"github.com/cockroachdb/errors"
)

const wwwDir = "www"

// DiscoverContentRoot walks up from start until it finds a directory holding the error pages
// directory. A "www" child holding it is preferred over the directory itself.
func DiscoverContentRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "resolve %q", start), tcphttp.ErrConfiguration)
	}

	for {
		for _, candidate := range []string{filepath.Join(dir, wwwDir), dir} {
			if isDir(filepath.Join(candidate, tcphttp.StaticDir)) {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Mark(errors.Newf(
				"no content root with a %q directory found from %q", tcphttp.StaticDir, start), tcphttp.ErrConfiguration)
		}

		dir = parent
	}
}

// contentRoot returns the configured content root, or discovers one from the working directory.
func contentRoot(env Environment) (string, error) {
	if root := env.contentRoot(); root != "" {
		return root, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "get working directory")
	}

	return DiscoverContentRoot(wd)
}

func isDir(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}
