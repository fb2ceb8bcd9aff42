// Package config loads jump definitions from TOML files.
//
// A config file declares jump families under [[jump]] tables:
//
//	[[jump]]
//	name = "function"
//	begin = '^func '
//	end = '^}'
//	keys = { next-start = "]f", prev-start = "[f", object = "f" }
//
//	[[jump]]
//	name = "comment"
//	predicate = '^\s*//'
//	keys = { next-start = "]c", next-end = "]C" }
//
// Each entry carries exactly one of: a begin/end pattern pair, a
// predicate pattern, or (via the lua key) the name of a predicate
// registered by a Lua script.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/motion"
	"github.com/dshills/countjump/internal/region"
	"github.com/dshills/countjump/internal/search"
)

// LoadError reports a problem with one jump definition.
type LoadError struct {
	Name string // definition name, or "" when unnamed
	Err  error
}

// Error implements error.
func (e *LoadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("jump definition: %v", e.Err)
	}
	return fmt.Sprintf("jump definition %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// file is the TOML document shape.
type file struct {
	Jumps []entry `toml:"jump"`
}

type entry struct {
	Name      string  `toml:"name"`
	Begin     string  `toml:"begin"`
	End       string  `toml:"end"`
	Predicate string  `toml:"predicate"`
	Lua       string  `toml:"lua"`
	Linewise  bool    `toml:"linewise"`
	Keys      keyDecl `toml:"keys"`
}

type keyDecl struct {
	NextStart string `toml:"next-start"`
	NextEnd   string `toml:"next-end"`
	PrevStart string `toml:"prev-start"`
	PrevEnd   string `toml:"prev-end"`
	Object    string `toml:"object"`
}

// PredicateResolver looks up a predicate registered outside the config
// file, such as one provided by a Lua script. It reports whether the
// name is known.
type PredicateResolver func(name string) (region.LinePredicate, bool)

// Load reads jump definitions from the TOML file at path.
// A missing file is not an error; it loads no definitions.
func Load(path string) ([]*motion.Definition, error) {
	return LoadWith(path, nil)
}

// LoadWith reads jump definitions from the TOML file at path, resolving
// lua predicate references through resolve.
func LoadWith(path string, resolve PredicateResolver) ([]*motion.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return ParseWith(data, resolve)
}

// Parse decodes jump definitions from TOML data.
func Parse(data []byte) ([]*motion.Definition, error) {
	return ParseWith(data, nil)
}

// ParseWith decodes jump definitions from TOML data, resolving lua
// predicate references through resolve.
func ParseWith(data []byte, resolve PredicateResolver) ([]*motion.Definition, error) {
	var doc file
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	defs := make([]*motion.Definition, 0, len(doc.Jumps))
	for _, e := range doc.Jumps {
		def, err := e.definition(resolve)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (e entry) definition(resolve PredicateResolver) (*motion.Definition, error) {
	def := &motion.Definition{
		Name: e.Name,
		Keys: motion.Keys{
			NextStart: e.Keys.NextStart,
			NextEnd:   e.Keys.NextEnd,
			PrevStart: e.Keys.PrevStart,
			PrevEnd:   e.Keys.PrevEnd,
			Object:    e.Keys.Object,
		},
	}
	if e.Linewise {
		def.Kind = view.Linewise
	}

	if e.Predicate != "" {
		re, err := regexp.Compile(e.Predicate)
		if err != nil {
			return nil, &LoadError{Name: e.Name, Err: fmt.Errorf("predicate: %w", err)}
		}
		def.Predicate = region.PatternPredicate(re)
	}
	if e.Lua != "" {
		if def.Predicate != nil {
			return nil, &LoadError{Name: e.Name, Err: fmt.Errorf("predicate and lua are mutually exclusive")}
		}
		if resolve == nil {
			return nil, &LoadError{Name: e.Name, Err: fmt.Errorf("lua predicate %q: no scripts loaded", e.Lua)}
		}
		pred, ok := resolve(e.Lua)
		if !ok {
			return nil, &LoadError{Name: e.Name, Err: fmt.Errorf("lua predicate %q: not registered", e.Lua)}
		}
		def.Predicate = pred
	}
	if e.Begin != "" {
		pat, err := search.NewPattern(e.Begin, false)
		if err != nil {
			return nil, &LoadError{Name: e.Name, Err: fmt.Errorf("begin: %w", err)}
		}
		def.Begin = pat
	}
	if e.End != "" {
		pat, err := search.NewPattern(e.End, false)
		if err != nil {
			return nil, &LoadError{Name: e.Name, Err: fmt.Errorf("end: %w", err)}
		}
		def.End = pat
	}

	if err := def.Validate(); err != nil {
		return nil, &LoadError{Name: e.Name, Err: err}
	}
	return def, nil
}
