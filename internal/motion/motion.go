package motion

import (
	"fmt"
	"sort"

	"github.com/dshills/countjump/internal/jump"
	"github.com/dshills/countjump/internal/textobj"
)

// Motion represents a registered jump motion.
type Motion struct {
	// Name is the motion identifier (e.g., "paragraph.nextStart").
	Name string

	// Keys is the key sequence that triggers this motion.
	Keys string

	// Locate finds the motion target; committed by the jump package.
	Locate jump.LocateFunc

	// ToEnd indicates the motion targets the end of a span, so an
	// operator over it should include the final character
	// (committed with ModeOperatorPendingToEnd).
	ToEnd bool
}

// TextObject represents a registered text object.
type TextObject struct {
	// Name is the object identifier (e.g., "paragraph").
	Name string

	// Key is the key that selects this object after the
	// inner/around prefix.
	Key string

	// Builder carves out the object's span.
	Builder *textobj.SpanBuilder
}

// Registry indexes motions and text objects by their key sequences.
type Registry struct {
	motions map[string]*Motion
	objects map[string]*TextObject
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		motions: make(map[string]*Motion),
		objects: make(map[string]*TextObject),
	}
}

// RegisterMotion adds a motion. Duplicate key sequences are rejected.
func (r *Registry) RegisterMotion(m *Motion) error {
	if m == nil || m.Keys == "" {
		return fmt.Errorf("motion %q: empty key sequence", nameOf(m))
	}
	if m.Locate == nil {
		return fmt.Errorf("motion %q: nil locate function", m.Name)
	}
	if existing, ok := r.motions[m.Keys]; ok {
		return fmt.Errorf("keys %q already bound to motion %q", m.Keys, existing.Name)
	}
	r.motions[m.Keys] = m
	return nil
}

// RegisterObject adds a text object. Duplicate keys are rejected.
func (r *Registry) RegisterObject(o *TextObject) error {
	if o == nil || o.Key == "" {
		return fmt.Errorf("text object: empty key")
	}
	if o.Builder == nil {
		return fmt.Errorf("text object %q: nil builder", o.Name)
	}
	if existing, ok := r.objects[o.Key]; ok {
		return fmt.Errorf("key %q already bound to text object %q", o.Key, existing.Name)
	}
	r.objects[o.Key] = o
	return nil
}

// Motion returns the motion bound to the given key sequence, or nil.
func (r *Registry) Motion(keys string) *Motion {
	return r.motions[keys]
}

// TextObject returns the text object bound to the given key, or nil.
func (r *Registry) TextObject(key string) *TextObject {
	return r.objects[key]
}

// HasPrefix returns true if any registered motion's key sequence
// starts with the given prefix. Input loops use this to keep reading
// keys instead of rejecting a partial sequence.
func (r *Registry) HasPrefix(prefix string) bool {
	for keys := range r.motions {
		if len(keys) > len(prefix) && keys[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// MotionKeys returns all bound key sequences, sorted.
func (r *Registry) MotionKeys() []string {
	keys := make([]string, 0, len(r.motions))
	for k := range r.motions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func nameOf(m *Motion) string {
	if m == nil {
		return ""
	}
	return m.Name
}
