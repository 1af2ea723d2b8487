package mimetype

import "sort"

// extensionTypes is the built-in extension table consulted before the
// platform registry, so classification behaves the same on systems
// without a populated /etc/mime.types.
var extensionTypes = map[string]Type{
	"7z":    "application/x-7z-compressed",
	"aac":   "audio/aac",
	"avi":   "video/x-msvideo",
	"avif":  "image/avif",
	"bmp":   "image/bmp",
	"bz2":   "application/x-bzip2",
	"c":     "text/x-c",
	"cpp":   "text/x-c",
	"css":   "text/css",
	"csv":   "text/csv",
	"deb":   "application/vnd.debian.binary-package",
	"doc":   "application/msword",
	"docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"epub":  "application/epub+zip",
	"flac":  "audio/flac",
	"flv":   "video/x-flv",
	"gif":   "image/gif",
	"go":    "text/x-go",
	"gz":    "application/gzip",
	"h":     "text/x-c",
	"htm":   "text/html",
	"html":  "text/html",
	"ico":   "image/vnd.microsoft.icon",
	"ics":   "text/calendar",
	"jpeg":  "image/jpeg",
	"jpg":   "image/jpeg",
	"js":    "text/javascript",
	"json":  "application/json",
	"log":   "text/plain",
	"m4a":   "audio/mp4",
	"md":    "text/markdown",
	"mkv":   "video/x-matroska",
	"mov":   "video/quicktime",
	"mp3":   "audio/mpeg",
	"mp4":   "video/mp4",
	"odp":   "application/vnd.oasis.opendocument.presentation",
	"ods":   "application/vnd.oasis.opendocument.spreadsheet",
	"odt":   "application/vnd.oasis.opendocument.text",
	"ogg":   "audio/ogg",
	"ogv":   "video/ogg",
	"opus":  "audio/opus",
	"otf":   "font/otf",
	"pdf":   "application/pdf",
	"png":   "image/png",
	"ppt":   "application/vnd.ms-powerpoint",
	"pptx":  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"ps":    "application/postscript",
	"py":    "text/x-python",
	"rar":   "application/vnd.rar",
	"rs":    "text/x-rust",
	"rtf":   "application/rtf",
	"sh":    "application/x-shellscript",
	"svg":   "image/svg+xml",
	"tar":   "application/x-tar",
	"tif":   "image/tiff",
	"tiff":  "image/tiff",
	"toml":  "application/toml",
	"ttf":   "font/ttf",
	"txt":   "text/plain",
	"wav":   "audio/wav",
	"webm":  "video/webm",
	"webp":  "image/webp",
	"woff":  "font/woff",
	"woff2": "font/woff2",
	"xhtml": "application/xhtml+xml",
	"xls":   "application/vnd.ms-excel",
	"xlsx":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xml":   "application/xml",
	"xz":    "application/x-xz",
	"yaml":  "application/yaml",
	"yml":   "application/yaml",
	"zip":   "application/zip",
}

// customTypes are keys with no extension that are still worth
// completing and listing.
var customTypes = []Type{
	"inode/directory",
	"x-scheme-handler/http",
	"x-scheme-handler/https",
	"x-scheme-handler/terminal",
}

// KnownExtensions returns every table extension with a leading dot,
// sorted ascending.
func KnownExtensions() []string {
	exts := make([]string, 0, len(extensionTypes))
	for ext := range extensionTypes {
		exts = append(exts, "."+ext)
	}
	sort.Strings(exts)
	return exts
}

// KnownTypes returns the custom keys plus every distinct table MIME,
// sorted ascending.
func KnownTypes() []Type {
	seen := make(map[Type]struct{}, len(extensionTypes))
	types := make([]Type, 0, len(extensionTypes)+len(customTypes))
	for _, t := range customTypes {
		seen[t] = struct{}{}
		types = append(types, t)
	}
	for _, t := range extensionTypes {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
