package mimetype

import "net/url"

// UserPath is a path or URL given on the command line, normalized so
// file:// URLs collapse to plain file paths.
type UserPath struct {
	url  *url.URL
	file string
}

func ParseUserPath(s string) (*UserPath, error) {
	u, err := url.Parse(s)
	if err == nil && u.Scheme == "file" {
		if u.Path == "" {
			return nil, &BadPathError{Path: s}
		}
		return &UserPath{file: u.Path}, nil
	}
	if err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "" || u.Path != "") {
		return &UserPath{url: u}, nil
	}
	return &UserPath{file: s}, nil
}

func (p *UserPath) IsURL() bool { return p.url != nil }

// String renders the canonical form tested against regex rules and
// handed to spawned handlers.
func (p *UserPath) String() string {
	if p.url != nil {
		return p.url.String()
	}
	return p.file
}

// Mime classifies the path: URLs map to a scheme-derived key, files go
// through extension and content classification.
func (p *UserPath) Mime() (Type, error) {
	if p.url != nil {
		return Type("x-scheme-handler/" + p.url.Scheme), nil
	}
	return FromFile(p.file)
}
