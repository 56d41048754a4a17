package store

import (
	"fmt"
	"strings"
)

// IsEmptyListField reports whether a string-encoded list field carries no
// data at all: blank, or the empty-list marker "[]".
func IsEmptyListField(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == "[]"
}

// ParseListField decodes a string-encoded list literal into its items. The
// crawler pipeline writes Python-style literals ("['주차', '포장']"), so both
// single- and double-quoted strings are accepted. Malformed input returns an
// error, never panics.
func ParseListField(raw string) ([]string, error) {
	p := &listParser{input: strings.TrimSpace(raw)}
	return p.parse()
}

type listParser struct {
	input string
	pos   int
}

func (p *listParser) parse() ([]string, error) {
	p.skipSpaces()
	if !p.match('[') {
		return nil, fmt.Errorf("expected '[' at position %d", p.pos)
	}

	var items []string
	p.skipSpaces()
	if p.match(']') {
		return p.finish(items)
	}

	for {
		item, err := p.parseString()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpaces()
		if p.match(',') {
			p.skipSpaces()
			// trailing comma before the closing bracket is tolerated
			if p.match(']') {
				return p.finish(items)
			}
			continue
		}
		if p.match(']') {
			return p.finish(items)
		}
		return nil, fmt.Errorf("expected ',' or ']' at position %d", p.pos)
	}
}

func (p *listParser) finish(items []string) ([]string, error) {
	p.skipSpaces()
	if p.hasNext() {
		return nil, fmt.Errorf("unexpected trailing input at position %d", p.pos)
	}
	return items, nil
}

func (p *listParser) parseString() (string, error) {
	p.skipSpaces()
	if !p.hasNext() {
		return "", fmt.Errorf("expected string at position %d", p.pos)
	}

	quote := p.peek()
	if quote != '\'' && quote != '"' {
		return "", fmt.Errorf("expected quoted string at position %d", p.pos)
	}
	p.pos++

	var sb strings.Builder
	for p.hasNext() {
		ch := p.peek()
		p.pos++
		switch ch {
		case quote:
			return sb.String(), nil
		case '\\':
			if !p.hasNext() {
				return "", fmt.Errorf("dangling escape at position %d", p.pos)
			}
			sb.WriteByte(p.peek())
			p.pos++
		default:
			sb.WriteByte(ch)
		}
	}
	return "", fmt.Errorf("unterminated string starting with %q", quote)
}

func (p *listParser) skipSpaces() {
	for p.hasNext() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *listParser) hasNext() bool {
	return p.pos < len(p.input)
}

func (p *listParser) peek() byte {
	return p.input[p.pos]
}

func (p *listParser) match(expected byte) bool {
	if p.hasNext() && p.peek() == expected {
		p.pos++
		return true
	}
	return false
}
