// Package mimetype models normalized MIME types and classifies user
// supplied paths and URLs into them.
package mimetype

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Type is a normalized "type/subtype" MIME string. The subtype may be
// the wildcard "*".
type Type string

// AmbiguousExtensionError reports a file extension with no known MIME type.
type AmbiguousExtensionError struct {
	Ext string
}

func (e *AmbiguousExtensionError) Error() string {
	return fmt.Sprintf("could not find a mimetype associated with the file extension: %q", e.Ext)
}

// BadPathError reports an unusable path or file URL.
type BadPathError struct {
	Path string
}

func (e *BadPathError) Error() string {
	return fmt.Sprintf("bad path: %s", e.Path)
}

// Parse validates and normalizes a "type/subtype" string.
func Parse(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	major, minor, ok := strings.Cut(s, "/")
	if !ok || major == "" || minor == "" || strings.Contains(minor, "/") {
		return "", fmt.Errorf("bad mime: %q", s)
	}
	return Type(s), nil
}

// ParseMimeOrExtension accepts either a MIME type or a ".ext" form that
// is resolved through the extension table.
func ParseMimeOrExtension(s string) (Type, error) {
	if strings.HasPrefix(s, ".") {
		return FromExtension(strings.TrimPrefix(s, "."))
	}
	return Parse(s)
}

// Major returns the type part before the slash.
func (t Type) Major() string {
	major, _, _ := strings.Cut(string(t), "/")
	return major
}

// Wildcard returns the single-level essence wildcard, e.g. "video/*"
// for "video/mp4".
func (t Type) Wildcard() Type {
	return Type(t.Major() + "/*")
}

func (t Type) String() string { return string(t) }

// FromExtension resolves a file extension (without the leading dot)
// through the built-in table, falling back to the platform registry.
func FromExtension(ext string) (Type, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "", &AmbiguousExtensionError{Ext: ext}
	}
	if t, ok := extensionTypes[ext]; ok {
		return t, nil
	}
	if guess := mime.TypeByExtension("." + ext); guess != "" {
		if mt, _, err := mime.ParseMediaType(guess); err == nil {
			return Type(mt), nil
		}
	}
	return "", &AmbiguousExtensionError{Ext: ext}
}

// FromFile classifies a file path: directories map to inode/directory,
// known extensions resolve through the table, and anything else is
// content-sniffed. A file that can be neither guessed nor read yields
// AmbiguousExtensionError.
func FromFile(path string) (Type, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "inode/directory", nil
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if t, err := FromExtension(ext); err == nil {
		return t, nil
	}

	if t, err := sniffFile(path); err == nil {
		return t, nil
	}
	return "", &AmbiguousExtensionError{Ext: ext}
}

// sniffFile detects a MIME type from leading file content.
func sniffFile(path string) (Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return "text/plain", nil // empty files open as plain text
	}

	detected := http.DetectContentType(buf[:n])
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return "", err
	}
	return Type(mt), nil
}
