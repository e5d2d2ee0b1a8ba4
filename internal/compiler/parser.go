package compiler

import (
	"bytes"
	"fmt"

	"github.com/aretw0/derelict/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parser is responsible for converting raw story documents into a Story.
type Parser struct {
	strict bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithStrict rejects documents carrying keys the domain does not know about.
func WithStrict(strict bool) ParserOption {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a new parser instance. Parsers are strict by default.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{strict: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes a YAML (or JSON) story document.
// The document is first read into generic maps, then decoded into domain types
// through their mapstructure tags, so unknown keys are caught with their path.
func (p *Parser) Parse(data []byte) (*domain.Story, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty story document")
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse story: %w", err)
	}

	var story domain.Story
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &story,
		TagName:     "mapstructure",
		ErrorUnused: p.strict,
		// number guards may list answers as bare YAML integers
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode story: %w", err)
	}

	if story.Entry == "" {
		return nil, fmt.Errorf("story missing entry scene")
	}
	return &story, nil
}
