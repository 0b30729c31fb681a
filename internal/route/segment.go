// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"regexp"
	"strings"
)

// Kind classifies a single path or domain segment of a route template.
type Kind int8

const (
	KindLiteral Kind = iota
	KindParam
	KindWildcard
	KindMixed
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindParam:
		return "param"
	case KindWildcard:
		return "wildcard"
	case KindMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Segment is the classified form of one "/"- or "."-delimited piece of a
// template. Raw is always the original text; the remaining fields are set
// depending on Kind.
type Segment struct {
	Raw   string
	Kind  Kind
	Name  string         // Param, Wildcard
	Regex *regexp.Regexp // Mixed: anchored, named capture groups
	Names []string       // Mixed: capture-group names in template order
}

var (
	wildcardPattern    = regexp.MustCompile(`^\{\.\.\.([A-Za-z_][A-Za-z0-9_]*)\}$`)
	paramPattern       = regexp.MustCompile(`^\{([A-Za-z_][A-Za-z0-9_]*)\}$`)
	placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)
)

// Classify never fails: an unrecognized shape simply falls back to Literal.
func Classify(raw string) Segment {
	if m := wildcardPattern.FindStringSubmatch(raw); m != nil {
		return Segment{Raw: raw, Kind: KindWildcard, Name: m[1]}
	}
	if m := paramPattern.FindStringSubmatch(raw); m != nil {
		return Segment{Raw: raw, Kind: KindParam, Name: m[1]}
	}
	matches := placeholderPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return Segment{Raw: raw, Kind: KindLiteral}
	}
	return classifyMixed(raw, matches)
}

func classifyMixed(raw string, matches [][]int) Segment {
	var pattern strings.Builder
	pattern.WriteByte('^')
	names := make([]string, 0, len(matches))
	last := 0
	for _, m := range matches {
		start, end, nameStart, nameEnd := m[0], m[1], m[2], m[3]
		pattern.WriteString(escapeLiteralDots(raw[last:start]))
		name := raw[nameStart:nameEnd]
		pattern.WriteString("(?P<" + name + ">[^/]+)")
		names = append(names, name)
		last = end
	}
	pattern.WriteString(escapeLiteralDots(raw[last:]))
	pattern.WriteByte('$')
	re := regexp.MustCompile(pattern.String())
	return Segment{Raw: raw, Kind: KindMixed, Regex: re, Names: names}
}

func escapeLiteralDots(s string) string {
	return strings.ReplaceAll(s, ".", `\.`)
}

// domainSentinel separates the hostname portion of a normalized
// segment sequence from the path portion.
const domainSentinel = "//"

// Normalize never fails. It strips a single trailing "/" from path, splits
// the remainder on "/" (preserving empty interior segments), and, if domain
// is non-empty, prepends domain.split(".") plus the sentinel segment.
func Normalize(domain, path string) []string {
	trimmed := strings.TrimSuffix(path, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")

	var segments []string
	if domain != "" {
		segments = append(segments, strings.Split(domain, ".")...)
		segments = append(segments, domainSentinel)
	}
	if trimmed != "" {
		segments = append(segments, strings.Split(trimmed, "/")...)
	}
	return segments
}
