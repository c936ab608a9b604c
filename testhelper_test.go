package tcphttp_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	notFoundPage     = "<h1>Not Found</h1>"
	unauthorizedPage = "<h1>Unauthorized</h1>"
	errorPage        = "<h1>Internal Server Error</h1>"
	appCSS           = "body { color: red; }"
	indexHTML        = "<p>hello</p>"
)

// newContentRoot writes a content root with all error pages and a few files to a temp dir.
func newContentRoot(t testing.TB) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "Static/NotFound.html", notFoundPage)
	writeFile(t, root, "Static/Unauthorized.html", unauthorizedPage)
	writeFile(t, root, "Static/InternalServerError.html", errorPage)
	writeFile(t, root, "static/app.css", appCSS)
	writeFile(t, root, "public/index.html", indexHTML)
	writeFile(t, root, "public/café.txt", "café")

	return root
}

func writeFile(t testing.TB, root, name, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func removeFile(t testing.TB, root, name string) {
	t.Helper()
	require.NoError(t, os.Remove(filepath.Join(root, filepath.FromSlash(name))))
}

// wire formats the bytes the server is expected to write for a response.
func wire(status, contentType string, n int, body string) string {
	return "HTTP/1.1 " + status + "\r\nContent-Type:" + contentType + "\r\nContent-Length:" +
		strconv.Itoa(n) + "\r\n\r\n " + body
}
