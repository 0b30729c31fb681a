// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package routetree

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/coredispatch/routetree/internal/route"
)

// Status reports the outcome of a Find call.
type Status int8

const (
	// StatusNotFound means no registered template matches the request at
	// all.
	StatusNotFound Status = iota
	// StatusMatch means a registered template matched and Result carries
	// its payload and captured parameters.
	StatusMatch
	// StatusMethodMismatch means the path (and hostname, if given) exists
	// under some other method, but not the one requested.
	StatusMethodMismatch
)

// String implements fmt.Stringer for readable test failures and logs.
func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "Match"
	case StatusMethodMismatch:
		return "MethodMismatch"
	default:
		return "NotFound"
	}
}

// Result is the outcome of Matcher.Find.
type Result[T any] struct {
	Status Status
	// Data is the payload supplied to Add, valid only when Status is
	// StatusMatch.
	Data T
	// Params holds the captured parameter bindings, or nil if the matched
	// route has none.
	Params map[string]string
	// Static reports whether the match was served by the static-exact
	// cache rather than a tree walk; hosts may use this to skip
	// per-request work that only applies to parameterized routes.
	Static bool
}

// Option configures a Matcher at construction time.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger wires a diagnostics logger. It receives a Debug-level line on
// every static-cache hit and a Warn-level line whenever a registration
// adds a second record for the same method at the same terminal (a plain
// lookup still returns the earlier record; the later one is returned only
// when the mixed-segment regex tie-break selects it). It never affects
// matching results; the default is
// a logger that discards everything, so the matcher stays silent unless a
// caller opts in.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// RouteOption configures a single Add call.
type RouteOption func(*routeOptions)

type routeOptions struct {
	domain string
}

// WithDomain scopes the route to requests carrying a matching hostname.
// domain may itself contain {name} placeholders, interpreted exactly as
// path parameters (e.g. "{customer}.example.com").
func WithDomain(domain string) RouteOption {
	return func(o *routeOptions) {
		o.domain = domain
	}
}

// FindOption configures a single Find call.
type FindOption func(*findOptions)

type findOptions struct {
	hostname string
}

// WithHostname supplies the request's hostname, so that domain-scoped
// routes registered with WithDomain are considered.
func WithHostname(hostname string) FindOption {
	return func(o *findOptions) {
		o.hostname = hostname
	}
}

// Matcher stores a set of route templates and resolves concrete requests
// against them. The zero value is not usable; construct one with New.
//
// Matcher is safe for concurrent Find calls once registration (all Add
// calls) has finished. Add calls are serialized against each other, but
// Find takes no lock, so Add is not safe to call concurrently with Find.
type Matcher[T any] struct {
	tree   *route.Tree
	logger *log.Logger

	// serializes Add calls so that concurrent registrations cannot corrupt
	// the tree; Find does not take it.
	mu sync.Mutex
}

// New returns an empty Matcher parameterized by the host's payload type.
func New[T any](opts ...Option) *Matcher[T] {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Matcher[T]{tree: route.NewTree(), logger: o.logger}
}

// Add registers a route. method is any ASCII token, case-folded to upper
// case; the empty string is the any-method marker, consulted only when no
// record exists for the request's exact method. path may omit the leading
// "/"; it is added automatically. Add returns an error only for a
// malformed template or for a catch-all segment followed by further
// segments.
func (m *Matcher[T]) Add(method, path string, data T, opts ...RouteOption) error {
	var o routeOptions
	for _, opt := range opts {
		opt(&o)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, shadowed, err := m.tree.AddRoute(method, path, data, o.domain)
	if err != nil {
		return err
	}
	if shadowed {
		m.logger.Warn(
			"route shadowed by an earlier registration",
			"method", method, "path", path, "domain", o.domain,
		)
	}
	return nil
}

// Find resolves a concrete request against the registered routes.
func (m *Matcher[T]) Find(method, path string, opts ...FindOption) Result[T] {
	var o findOptions
	for _, opt := range opts {
		opt(&o)
	}

	res := m.tree.Find(method, path, o.hostname)
	switch res.Status {
	case route.StatusMatch:
		if res.Static {
			m.logger.Debug("static cache hit", "method", method, "path", path)
		}
		return Result[T]{
			Status: StatusMatch,
			Data:   res.Record.Data.(T),
			Params: route.ExtractParams(res.Record, res.Segments),
			Static: res.Static,
		}
	case route.StatusMethodMismatch:
		return Result[T]{Status: StatusMethodMismatch}
	default:
		return Result[T]{Status: StatusNotFound}
	}
}
