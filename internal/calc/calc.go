// ABOUTME: Arithmetic evaluation for calculation-intent utterances
// ABOUTME: Strips filler phrases, then parses a small explicit grammar
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidExpression indicates input outside the supported arithmetic grammar.
// Callers branch on this to produce guidance text; the detail is wrapped.
var ErrInvalidExpression = errors.New("invalid expression")

// fillerPhrases are stripped from the utterance before parsing.
// "what is" must precede "what's" so the longer phrase is removed intact.
var fillerPhrases = []string{"calculate", "what is", "what's", "="}

// allowedChars is the post-stripping character allowlist
const allowedChars = "0123456789.+-*/()"

// Calculate strips filler from a raw utterance, evaluates the remaining
// expression, and returns the result formatted as text.
func Calculate(input string) (string, error) {
	expr := Sanitize(input)
	if expr == "" {
		return "", fmt.Errorf("%w: nothing to evaluate", ErrInvalidExpression)
	}

	for _, r := range expr {
		if !strings.ContainsRune(allowedChars, r) {
			return "", fmt.Errorf("%w: disallowed character %q", ErrInvalidExpression, r)
		}
	}

	result, err := Evaluate(expr)
	if err != nil {
		return "", err
	}

	return strconv.FormatFloat(result, 'f', -1, 64), nil
}

// Sanitize lowercases the input, removes filler phrases, and strips whitespace
func Sanitize(input string) string {
	expr := strings.ToLower(input)
	for _, phrase := range fillerPhrases {
		expr = strings.ReplaceAll(expr, phrase, "")
	}
	return strings.Join(strings.Fields(expr), "")
}

// Evaluate parses and evaluates a sanitized arithmetic expression.
// Grammar: expr = term {("+"|"-") term}; term = factor {("*"|"/") factor};
// factor = "-" factor | "(" expr ")" | number.
func Evaluate(expr string) (float64, error) {
	p := &parser{input: expr}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.input) {
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidExpression, p.input[p.pos], p.pos)
	}
	return result, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return left, nil
		}
		p.pos++

		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return left, nil
		}
		p.pos++

		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if right == 0 {
				return 0, fmt.Errorf("%w: division by zero", ErrInvalidExpression)
			}
			left /= right
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	ch, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrInvalidExpression)
	}

	switch {
	case ch == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil

	case ch == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		closing, ok := p.peek()
		if !ok || closing != ')' {
			return 0, fmt.Errorf("%w: unmatched parenthesis", ErrInvalidExpression)
		}
		p.pos++
		return v, nil

	default:
		return p.parseNumber()
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for {
		ch, ok := p.peek()
		if !ok || (ch != '.' && (ch < '0' || ch > '9')) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("%w: expected number at position %d", ErrInvalidExpression, p.pos)
	}

	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed number %q", ErrInvalidExpression, p.input[start:p.pos])
	}
	return v, nil
}
