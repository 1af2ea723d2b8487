// Package registry holds the user's persisted MIME associations: the
// default applications they chose and the associations added on their
// behalf, in two independent namespaces.
package registry

import (
	"github.com/openwith/openwith/internal/handler"
	"github.com/openwith/openwith/internal/mimetype"
)

// HandlerList is an ordered handler list; position 0 is the primary.
// Insertion deduplicates, first occurrence wins.
type HandlerList []handler.DesktopHandler

func (l HandlerList) contains(h handler.DesktopHandler) bool {
	for _, existing := range l {
		if existing == h {
			return true
		}
	}
	return false
}

func (l HandlerList) push(h handler.DesktopHandler) HandlerList {
	if l.contains(h) {
		return l
	}
	return append(l, h)
}

// Front returns the primary handler.
func (l HandlerList) Front() (handler.DesktopHandler, bool) {
	if len(l) == 0 {
		return "", false
	}
	return l[0], true
}

// Registry is the parsed mimeapps.list state. It is loaded once per
// invocation and persisted after each mutation.
type Registry struct {
	DefaultApps       map[mimetype.Type]HandlerList
	AddedAssociations map[mimetype.Type]HandlerList

	path string
}

// New returns an empty registry persisting to the given path.
func New(path string) *Registry {
	return &Registry{
		DefaultApps:       map[mimetype.Type]HandlerList{},
		AddedAssociations: map[mimetype.Type]HandlerList{},
		path:              path,
	}
}

// AddHandler appends a handler to the default list for a mime. The
// primary handler is unchanged if one already exists.
func (r *Registry) AddHandler(mime mimetype.Type, h handler.DesktopHandler) {
	r.DefaultApps[mime] = r.DefaultApps[mime].push(h)
}

// SetHandler replaces the entire default list for a mime with the
// single given handler.
func (r *Registry) SetHandler(mime mimetype.Type, h handler.DesktopHandler) {
	r.DefaultApps[mime] = HandlerList{h}
}

// UnsetHandler removes the whole default list for a mime. It reports
// whether anything changed.
func (r *Registry) UnsetHandler(mime mimetype.Type) bool {
	if _, ok := r.DefaultApps[mime]; !ok {
		return false
	}
	delete(r.DefaultApps, mime)
	return true
}

// RemoveHandler removes one handler from a mime's default list,
// dropping the key entirely when the list empties. It reports whether
// anything changed.
func (r *Registry) RemoveHandler(mime mimetype.Type, h handler.DesktopHandler) bool {
	list, ok := r.DefaultApps[mime]
	if !ok {
		return false
	}
	for i, existing := range list {
		if existing == h {
			list = append(list[:i], list[i+1:]...)
			if len(list) == 0 {
				delete(r.DefaultApps, mime)
			} else {
				r.DefaultApps[mime] = list
			}
			return true
		}
	}
	return false
}

// AddAssociation appends a handler to the added-associations list for
// a mime.
func (r *Registry) AddAssociation(mime mimetype.Type, h handler.DesktopHandler) {
	r.AddedAssociations[mime] = r.AddedAssociations[mime].push(h)
}
