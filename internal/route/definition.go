// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

// SegmentElement is one literal run or bind placeholder inside a
// TemplateSegment. Exactly one of Ident or BindIdent is set.
type SegmentElement struct {
	Ident     *string `parser:"  @Ident"`
	BindIdent *string `parser:"| '{' @Ident '}'"`
}

// TemplateSegment is a "/"-delimited piece of a route template, in parsed
// (not yet classified) form.
type TemplateSegment struct {
	Elements []SegmentElement `parser:"@@*"`
}

// Template is the parsed form of a full route path. It exists only to
// validate template syntax (balanced braces, well-formed identifiers)
// before the segmenter's Normalize/Classify pair does the actual work on
// the raw path string.
type Template struct {
	Segments []TemplateSegment `parser:"( '/' @@ )*"`
}
