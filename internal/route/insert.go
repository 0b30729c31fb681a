// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// AddRoute registers one route template at method (upper-cased; "" means
// any method) and path (optionally domain-scoped), associating it with
// data. It returns the terminal node and whether this insertion shadows an
// already-registered record at the same terminal and method — the caller
// may use that to emit a diagnostic, but the insertion always succeeds;
// shadowing is not an error.
//
// An error is returned only for a malformed template, or for segments
// following a catch-all, which this implementation rejects at registration
// time rather than leaving the tree in an unspecified state.
func (t *Tree) AddRoute(method, path string, data any, domain string) (terminal *Node, shadowed bool, err error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if err := ValidateTemplate(path); err != nil {
		return nil, false, err
	}
	if domain != "" {
		if err := ValidateTemplate("/" + strings.ReplaceAll(domain, ".", "/")); err != nil {
			return nil, false, err
		}
	}
	trimmedPath := strings.TrimSuffix(path, "/")
	method = strings.ToUpper(method)

	segments := Normalize(domain, path)

	var paramsMap []ParamEntry
	paramsRegexp := map[int]*regexp.Regexp{}

	node := t.root
	for i, raw := range segments {
		seg := Classify(raw)
		switch seg.Kind {
		case KindWildcard:
			if i != len(segments)-1 {
				return nil, false, errors.Wrapf(ErrMisplacedWildcard, "%q", path)
			}
			if node.wildcard == nil {
				node.wildcard = &Node{key: raw}
			}
			node = node.wildcard
			paramsMap = append(paramsMap, ParamEntry{Index: -i, Name: seg.Name, Optional: true})

		case KindParam:
			if node.param == nil {
				node.param = &Node{key: raw}
			}
			node = node.param
			paramsMap = append(paramsMap, ParamEntry{Index: i, Name: seg.Name})

		case KindMixed:
			if node.param == nil {
				node.param = &Node{key: raw}
			}
			node = node.param
			node.hasRegexParam = true
			paramsRegexp[i] = seg.Regex
			paramsMap = append(paramsMap, ParamEntry{Index: i, Regex: seg.Regex})

		default: // KindLiteral
			node = node.static.getOrCreate(raw)
		}
	}

	if node.methods == nil {
		node.methods = make(map[string][]*MethodRecord)
	}
	if len(node.methods[method]) > 0 {
		shadowed = true
	}
	record := &MethodRecord{Data: data, ParamsMap: paramsMap, ParamsRegexp: paramsRegexp}
	node.methods[method] = append(node.methods[method], record)

	if len(paramsMap) == 0 && domain == "" {
		t.static.set(trimmedPath, node)
	}

	return node, shadowed, nil
}
