// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import "github.com/pkg/errors"

// ErrInvalidTemplate is returned by AddRoute when a route or domain template
// cannot be parsed: unbalanced braces or an empty placeholder name. A
// catch-all followed by further segments is reported with
// ErrMisplacedWildcard instead.
var ErrInvalidTemplate = errors.New("route: invalid template")

// ErrMisplacedWildcard is returned when a catch-all segment is followed by
// further segments, instead of silently truncating or corrupting the tree.
var ErrMisplacedWildcard = errors.New("route: catch-all must be the final segment")

func invalidTemplate(path string, cause error) error {
	return errors.Wrapf(ErrInvalidTemplate, "parsing %q: %v", path, cause)
}
