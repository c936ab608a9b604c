package app_test

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	notFoundPage     = "<h1>Not Found</h1>"
	unauthorizedPage = "<h1>Unauthorized</h1>"
	errorPage        = "<h1>Internal Server Error</h1>"
	appCSS           = "body { color: red; }"
)

func newContentRoot(t testing.TB) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "Static", "NotFound.html"), notFoundPage)
	writeFile(t, filepath.Join(root, "Static", "Unauthorized.html"), unauthorizedPage)
	writeFile(t, filepath.Join(root, "Static", "InternalServerError.html"), errorPage)
	writeFile(t, filepath.Join(root, "static", "app.css"), appCSS)

	return root
}

func writeFile(t testing.TB, p, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

// clientBody is what an HTTP client reads from a response body: the server writes a space
// before the body but counts only the body, so the last character falls outside the length.
func clientBody(body string) string {
	return (" " + body)[:len(body)]
}
