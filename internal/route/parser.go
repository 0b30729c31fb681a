// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// TemplateParser is a BNF-based route template syntax validator using a
// stateful lexer. It exists to reject malformed templates early, with a
// clear error, rather than let a bad brace pairing silently misclassify a
// segment further down the pipeline.
type TemplateParser struct {
	parser *participle.Parser[Template]
}

// Parse validates s and returns its parsed AST.
func (p *TemplateParser) Parse(s string) (*Template, error) {
	return p.parser.ParseString("", s)
}

// NewTemplateParser builds a TemplateParser. It only fails if the grammar
// itself is malformed, which cannot happen with a fixed grammar; callers
// that build one at package init time may safely discard the error.
func NewTemplateParser() (*TemplateParser, error) {
	l, err := lexer.New(
		lexer.Rules{
			"Root": {
				{Name: "Segment", Pattern: `/`, Action: lexer.Push("Segment")},
			},
			"Segment": {
				lexer.Include("Common"),
				{Name: "Bind", Pattern: `{`, Action: lexer.Push("Bind")},
				{Name: "Segment", Pattern: `/`, Action: lexer.Push("Segment")},
			},
			"Bind": {
				lexer.Include("Common"),
				{Name: "BindEnd", Pattern: `}`, Action: lexer.Pop()},
			},
			"Common": {
				// Legal URI characters per RFC 3986, plus "," and "=" for
				// mixed segments like {id},name={name}.txt, plus "." for
				// literal dots and the "..." catch-all prefix.
				{Name: "Ident", Pattern: `[a-zA-Z0-9\-._~@!$&'()*+;%=,]+`},
			},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "new lexer")
	}

	parser, err := participle.Build[Template](
		participle.Lexer(l),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build parser")
	}

	return &TemplateParser{parser: parser}, nil
}

var defaultTemplateParser *TemplateParser

func init() {
	p, err := NewTemplateParser()
	if err != nil {
		panic(err)
	}
	defaultTemplateParser = p
}

// ValidateTemplate parses path purely to surface syntax errors (unbalanced
// braces, an empty bind name) as an ErrInvalidTemplate rather than letting
// Classify silently fall back to treating malformed text as a literal.
func ValidateTemplate(path string) error {
	if _, err := defaultTemplateParser.Parse(path); err != nil {
		return invalidTemplate(path, err)
	}
	return nil
}
