// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import "strings"

// Status is the three-way outcome of a lookup.
type Status int8

const (
	StatusNotFound Status = iota
	StatusMatch
	StatusMethodMismatch
)

// LookupResult is the result of Tree.Find.
type LookupResult struct {
	Status Status
	Record *MethodRecord
	// Segments is the normalized sequence the match was resolved against;
	// ExtractParams needs it to pull bound values out of the record.
	Segments []string
	Static   bool
}

// Find consults the hostname-scoped static cache (if a hostname is given),
// then the hostname-scoped tree walk, then the domain-agnostic static
// cache, then the domain-agnostic tree walk. The first match wins; if no
// branch matches but some branch observed a path/hostname that exists under
// a different method, StatusMethodMismatch is returned instead of
// StatusNotFound.
func (t *Tree) Find(method, path, hostname string) LookupResult {
	path = strings.TrimSuffix(path, "/")
	method = strings.ToUpper(method)
	mismatch := false

	if hostname != "" {
		if res, ok := t.findScope(method, path, hostname, &mismatch); ok {
			return res
		}
	}
	if res, ok := t.findScope(method, path, "", &mismatch); ok {
		return res
	}
	if mismatch {
		return LookupResult{Status: StatusMethodMismatch}
	}
	return LookupResult{Status: StatusNotFound}
}

// findScope tries one domain scope (hostname, or "" for domain-agnostic):
// first its static cache entry, then a full tree walk. A cache entry with
// no record for the method records the mismatch and still falls through to
// the walk, so the result is the same as the walk alone would give.
func (t *Tree) findScope(method, path, domain string, mismatch *bool) (LookupResult, bool) {
	cacheKey := path
	if domain != "" {
		cacheKey = domain + "::" + path
	}
	if n, ok := t.static.get(cacheKey); ok {
		if list, ok2 := n.methodList(method); ok2 {
			return LookupResult{Status: StatusMatch, Record: list[0], Segments: nil, Static: true}, true
		}
		if len(n.methods) > 0 {
			*mismatch = true
		}
	}

	segments := Normalize(domain, path)
	candidates, mm := t.root.walk(method, segments, 0)
	if mm {
		*mismatch = true
	}
	if len(candidates) > 0 {
		return LookupResult{Status: StatusMatch, Record: candidates[0], Segments: segments}, true
	}
	return LookupResult{}, false
}

// walk is the recursive tree-walk procedure. It returns the ordered list of
// still-viable candidate records (so that an ancestor param branch with a
// regex-qualified position can filter them) along with whether a
// method-mismatch was observed anywhere on this path.
func (n *Node) walk(method string, segments []string, i int) (candidates []*MethodRecord, mismatch bool) {
	if i == len(segments) {
		return n.endOfInput(method)
	}

	seg := segments[i]

	if child, ok := n.static.get(seg); ok {
		if list, mm := child.walk(method, segments, i+1); len(list) > 0 {
			return list, mm
		} else if mm {
			mismatch = true
		}
	}

	if n.param != nil {
		list, mm := n.param.walk(method, segments, i+1)
		if mm {
			mismatch = true
		}
		if len(list) > 0 {
			if n.param.hasRegexParam {
				if rec, ok := filterByRegexAt(list, i, seg); ok {
					return []*MethodRecord{rec}, mismatch
				}
				// No candidate qualifies at this position; fall through
				// to the wildcard branch rather than returning this list.
			} else {
				return list, mismatch
			}
		}
	}

	if n.wildcard != nil {
		if list, ok := n.wildcard.methodList(method); ok {
			return list[:1], mismatch
		}
		if len(n.wildcard.methods) > 0 {
			mismatch = true
		}
	}

	return nil, mismatch
}

// endOfInput implements the end-of-path branch of the tree walk: an exact
// terminal match, else an optional param terminal, else an optional
// (catch-all) wildcard terminal matching zero trailing segments.
func (n *Node) endOfInput(method string) (candidates []*MethodRecord, mismatch bool) {
	if list, ok := n.methodList(method); ok {
		return list, false
	}
	mismatch = len(n.methods) > 0

	if n.param != nil {
		if list, ok := n.param.methodList(method); ok && list[0].endsOptional() {
			return list[:1], mismatch
		}
	}
	if n.wildcard != nil {
		if list, ok := n.wildcard.methodList(method); ok && list[0].endsOptional() {
			return list[:1], mismatch
		}
		if len(n.wildcard.methods) > 0 {
			mismatch = true
		}
	}
	return nil, mismatch
}

// filterByRegexAt picks, among candidates, the first record whose mixed-
// segment regex at position i matches seg; failing that, the first record
// with no regex requirement at position i; failing that, no match.
func filterByRegexAt(candidates []*MethodRecord, i int, seg string) (*MethodRecord, bool) {
	for _, rec := range candidates {
		if re, ok := rec.ParamsRegexp[i]; ok && re.MatchString(seg) {
			return rec, true
		}
	}
	for _, rec := range candidates {
		if _, ok := rec.ParamsRegexp[i]; !ok {
			return rec, true
		}
	}
	return nil, false
}

// ExtractParams builds the captured-parameter map for a matched record
// against the segment sequence the match was resolved against. It returns
// nil if the route has no parameters.
func ExtractParams(rec *MethodRecord, segments []string) map[string]string {
	if rec == nil || len(rec.ParamsMap) == 0 {
		return nil
	}
	out := make(map[string]string, len(rec.ParamsMap))
	for _, entry := range rec.ParamsMap {
		switch {
		case entry.Optional:
			start := -entry.Index
			if start > len(segments) {
				start = len(segments)
			}
			out[entry.Name] = strings.Join(segments[start:], "/")
		case entry.Regex != nil:
			m := entry.Regex.FindStringSubmatch(segments[entry.Index])
			if m == nil {
				continue
			}
			for gi, name := range entry.Regex.SubexpNames() {
				if gi == 0 || name == "" {
					continue
				}
				out[name] = m[gi]
			}
		default:
			out[entry.Name] = segments[entry.Index]
		}
	}
	return out
}
