// Package lua hosts user-defined line predicates written in Lua.
//
// A script registers predicates by name:
//
//	countjump.register_predicate("heading", function(lineno, text)
//	    return text:sub(1, 1) == "#"
//	end)
//
// The state opens only safe standard libraries (no io, os, debug, or
// package), following the sandboxing posture of a plugin host.
package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/countjump/internal/region"
)

// Host owns a sandboxed Lua state and the predicates scripts have
// registered with it.
//
// gopher-lua states are not goroutine-safe; the mutex serializes all
// access so predicates may be evaluated from the editor loop while a
// script is (re)loaded elsewhere.
type Host struct {
	mu     sync.Mutex
	state  *lua.LState
	preds  map[string]*lua.LFunction
	closed bool

	// OnError is invoked when a predicate call raises a Lua error.
	// Predicate errors fail closed: the line does not match. May be
	// nil.
	OnError func(name string, err error)
}

// NewHost creates a sandboxed Lua state with the registration API
// installed.
func NewHost() *Host {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Safe libraries only: no io, os, debug, or package.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	h := &Host{
		state: L,
		preds: make(map[string]*lua.LFunction),
	}

	mod := L.NewTable()
	L.SetField(mod, "register_predicate", L.NewFunction(h.registerPredicate))
	L.SetGlobal("countjump", mod)

	return h
}

// registerPredicate implements countjump.register_predicate(name, fn).
func (h *Host) registerPredicate(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	if name == "" {
		L.ArgError(1, "predicate name must not be empty")
		return 0
	}
	h.preds[name] = fn
	return 0
}

// LoadFile executes a script, letting it register predicates.
func (h *Host) LoadFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return fmt.Errorf("lua host closed")
	}
	if err := h.state.DoFile(path); err != nil {
		return fmt.Errorf("loading lua script %s: %w", path, err)
	}
	return nil
}

// LoadString executes inline script source.
func (h *Host) LoadString(src string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return fmt.Errorf("lua host closed")
	}
	if err := h.state.DoString(src); err != nil {
		return fmt.Errorf("loading lua script: %w", err)
	}
	return nil
}

// Names returns the registered predicate names.
func (h *Host) Names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.preds))
	for name := range h.preds {
		names = append(names, name)
	}
	return names
}

// Predicate returns the named predicate as a LinePredicate closure.
// The closure evaluates the Lua function with (lineno, text); a truthy
// return means the line belongs to the region. Lua predicates are
// line-level, so the boundary column is always 0.
func (h *Host) Predicate(name string) (region.LinePredicate, bool) {
	h.mu.Lock()
	fn, ok := h.preds[name]
	h.mu.Unlock()
	if !ok {
		return nil, false
	}

	return func(line int, text string) (int, bool) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed {
			return 0, false
		}

		err := h.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, lua.LNumber(line), lua.LString(text))
		if err != nil {
			if h.OnError != nil {
				h.OnError(name, err)
			}
			return 0, false
		}

		ret := h.state.Get(-1)
		h.state.Pop(1)
		return 0, lua.LVAsBool(ret)
	}, true
}

// Close releases the Lua state. Predicates obtained earlier stop
// matching rather than crashing.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}
