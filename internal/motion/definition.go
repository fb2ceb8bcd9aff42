package motion

import (
	"fmt"

	"github.com/dshills/countjump/internal/bell"
	"github.com/dshills/countjump/internal/engine/view"
	"github.com/dshills/countjump/internal/jump"
	"github.com/dshills/countjump/internal/region"
	"github.com/dshills/countjump/internal/search"
	"github.com/dshills/countjump/internal/textobj"
)

// Keys names the key sequences a Definition binds. Empty fields are
// simply not bound.
type Keys struct {
	NextStart string
	NextEnd   string
	PrevStart string
	PrevEnd   string

	// Object is the text-object key used after the inner/around prefix.
	Object string
}

// Definition describes one jump family: regions delimited by a
// begin/end pattern pair, or regions of lines satisfying a predicate.
// Exactly one of the two forms must be set.
type Definition struct {
	Name string
	Keys Keys

	// Pattern-pair form.
	Begin search.Pattern
	End   search.Pattern

	// Predicate form.
	Predicate region.LinePredicate

	// Kind is the selection granularity of the text object.
	// Predicate regions default to linewise, pattern pairs to charwise.
	Kind view.Kind
}

// Validate checks that the definition is well formed.
func (d *Definition) Validate() error {
	hasPair := d.Begin.Regexp != nil && d.End.Regexp != nil
	hasPred := d.Predicate != nil
	switch {
	case d.Name == "":
		return fmt.Errorf("definition without a name")
	case hasPair && hasPred:
		return fmt.Errorf("definition %q: both pattern pair and predicate set", d.Name)
	case !hasPair && !hasPred:
		return fmt.Errorf("definition %q: needs a begin/end pattern pair or a predicate", d.Name)
	}
	return nil
}

// Motions expands the definition into its bound motions, with locate
// closures carrying the definition's pattern or predicate.
func (d *Definition) Motions(j *jump.Jumper) []*Motion {
	var out []*Motion
	add := func(keys, suffix string, locate jump.LocateFunc, toEnd bool) {
		if keys == "" {
			return
		}
		out = append(out, &Motion{
			Name:   d.Name + "." + suffix,
			Keys:   keys,
			Locate: locate,
			ToEnd:  toEnd,
		})
	}

	if d.Predicate != nil {
		// A backward scan's far edge is the region's textual start,
		// so prev-start pairs with wantEnd and prev-end without.
		add(d.Keys.NextStart, "nextStart", region.BoundaryLocator(d.Predicate, 1, false), false)
		add(d.Keys.NextEnd, "nextEnd", region.BoundaryLocator(d.Predicate, 1, true), true)
		add(d.Keys.PrevStart, "prevStart", region.BoundaryLocator(d.Predicate, -1, true), false)
		add(d.Keys.PrevEnd, "prevEnd", region.BoundaryLocator(d.Predicate, -1, false), false)
		return out
	}

	add(d.Keys.NextStart, "nextStart", j.SearchLocator(forward(d.Begin), search.Flags{}), false)
	add(d.Keys.NextEnd, "nextEnd", j.SearchLocator(forward(d.End), search.Flags{MoveToEnd: true}), true)
	add(d.Keys.PrevStart, "prevStart", j.SearchLocator(backward(d.Begin), search.Flags{}), false)
	add(d.Keys.PrevEnd, "prevEnd", j.SearchLocator(backward(d.End), search.Flags{MoveToEnd: true}), false)
	return out
}

// Object expands the definition into its text object, or nil when no
// object key is bound.
func (d *Definition) Object(j *jump.Jumper, ringer bell.Ringer) *TextObject {
	if d.Keys.Object == "" {
		return nil
	}

	kind := d.Kind
	var begin, end jump.LocateFunc
	if d.Predicate != nil {
		if kind == view.Charwise {
			kind = view.Linewise
		}
		begin = region.RegionEndLocator(d.Predicate, -1)
		end = region.RegionEndLocator(d.Predicate, 1)
	} else {
		begin = j.SearchLocator(backward(d.Begin), search.Flags{AcceptAtCursor: true})
		end = j.SearchLocator(forward(d.End), search.Flags{AcceptAtCursor: true, MoveToEnd: true})
	}

	return &TextObject{
		Name:    d.Name,
		Key:     d.Keys.Object,
		Builder: textobj.NewSpanBuilder(begin, end, kind, ringer),
	}
}

func forward(p search.Pattern) search.Pattern {
	p.Backward = false
	return p
}

func backward(p search.Pattern) search.Pattern {
	p.Backward = true
	return p
}

// Paragraphs is the built-in definition: regions are runs of non-blank
// lines.
func Paragraphs() *Definition {
	return &Definition{
		Name:      "paragraph",
		Predicate: region.NonBlank,
		Kind:      view.Linewise,
		Keys: Keys{
			NextStart: "]p",
			NextEnd:   "]P",
			PrevStart: "[p",
			PrevEnd:   "[P",
			Object:    "p",
		},
	}
}
