// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package routetree implements a purpose-built radix/trie HTTP route
// matcher: literal, single-segment parameter, and multi-segment wildcard
// children, mixed literal-plus-parameter segments resolved via regular
// expressions, a static-exact-match fast path, and domain-scoped
// sub-trees.
//
// Routes are registered with Add during a single-threaded startup phase;
// once registration is done, Find may be called concurrently without
// further synchronization. The matcher never mutates a node after it has
// been installed, except to attach additional children or additional
// method records, or to flag a parameter child as carrying a mixed-segment
// regex, so once registration is done there is nothing for a concurrent
// reader to race against.
package routetree
