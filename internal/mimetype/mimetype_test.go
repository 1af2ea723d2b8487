package mimetype

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseNormalizes(t *testing.T) {
	got, err := Parse(" Video/MP4 ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got != "video/mp4" {
		t.Fatalf("expected video/mp4, got %q", got)
	}
}

func TestParseRejectsMissingSubtype(t *testing.T) {
	for _, bad := range []string{"video", "video/", "/mp4", "a/b/c", ""} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestWildcard(t *testing.T) {
	if got := Type("video/mp4").Wildcard(); got != "video/*" {
		t.Fatalf("expected video/*, got %q", got)
	}
}

func TestParseMimeOrExtension(t *testing.T) {
	got, err := ParseMimeOrExtension(".mp4")
	if err != nil {
		t.Fatalf("extension lookup failed: %v", err)
	}
	if got != "video/mp4" {
		t.Fatalf("expected video/mp4, got %q", got)
	}

	got, err = ParseMimeOrExtension("text/html")
	if err != nil {
		t.Fatalf("mime parse failed: %v", err)
	}
	if got != "text/html" {
		t.Fatalf("expected text/html, got %q", got)
	}
}

func TestFromExtensionUnknownIsAmbiguous(t *testing.T) {
	_, err := FromExtension("nosuchext")
	var ambiguous *AmbiguousExtensionError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousExtensionError, got %v", err)
	}
}

func TestUserPathFileURLCollapsesToPath(t *testing.T) {
	p, err := ParseUserPath("file:///test.txt")
	if err != nil {
		t.Fatalf("ParseUserPath failed: %v", err)
	}
	if p.IsURL() {
		t.Fatal("file URL should classify as a file")
	}
	if p.String() != "/test.txt" {
		t.Fatalf("expected /test.txt, got %q", p.String())
	}
}

func TestUserPathURLMimeIsSchemeDerived(t *testing.T) {
	p, err := ParseUserPath("https://example.com/watch")
	if err != nil {
		t.Fatalf("ParseUserPath failed: %v", err)
	}
	if !p.IsURL() {
		t.Fatal("expected a URL")
	}
	mime, err := p.Mime()
	if err != nil {
		t.Fatalf("Mime failed: %v", err)
	}
	if mime != "x-scheme-handler/https" {
		t.Fatalf("expected x-scheme-handler/https, got %q", mime)
	}
}

func TestUserPathPlainStringIsFile(t *testing.T) {
	p, err := ParseUserPath("notes.txt")
	if err != nil {
		t.Fatalf("ParseUserPath failed: %v", err)
	}
	if p.IsURL() {
		t.Fatal("expected a file path")
	}
	mime, err := p.Mime()
	if err != nil {
		t.Fatalf("Mime failed: %v", err)
	}
	if mime != "text/plain" {
		t.Fatalf("expected text/plain, got %q", mime)
	}
}

func TestFromFileDirectory(t *testing.T) {
	mime, err := FromFile(t.TempDir())
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if mime != "inode/directory" {
		t.Fatalf("expected inode/directory, got %q", mime)
	}
}

func TestFromFileSniffsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.nosuchext")
	if err := os.WriteFile(path, []byte("<html><body>hi</body></html>"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	mime, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if mime != "text/html" {
		t.Fatalf("expected text/html, got %q", mime)
	}
}

func TestFromFileMissingAndUnknownIsAmbiguous(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "gone.nosuchext"))
	var ambiguous *AmbiguousExtensionError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousExtensionError, got %v", err)
	}
}

func TestKnownTypesIncludesCustomKeys(t *testing.T) {
	types := KnownTypes()
	found := false
	for _, mt := range types {
		if mt == "x-scheme-handler/terminal" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected x-scheme-handler/terminal in known types")
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Fatalf("types not sorted or not unique at %d: %q >= %q", i, types[i-1], types[i])
		}
	}
}
