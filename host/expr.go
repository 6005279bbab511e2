// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"strconv"
)

var (
	errExprParse  = errors.New("expression syntax error")
	errDivByZero  = errors.New("division by zero")
	errIdentifier = errors.New("invalid identifier")
)

// A resolver translates identifiers appearing in an expression into
// numeric values.
type resolver interface {
	resolveIdentifier(s string) (int64, error)
}

// An exprParser evaluates integer expressions. Expressions may contain
// numbers in several bases, identifiers resolved by the caller, the usual
// arithmetic and bitwise operators, and parentheses. In hex mode, bare
// numbers and identifiers are interpreted as hexadecimal.
type exprParser struct {
	hexMode bool
}

func newExprParser() *exprParser {
	return &exprParser{}
}

// Parse evaluates the expression string and returns its value.
func (p *exprParser) Parse(expr string, r resolver) (int64, error) {
	s := &exprScanner{s: expr, hexMode: p.hexMode, res: r}
	v, err := s.parseExpr(0)
	if err != nil {
		return 0, err
	}
	s.skipSpace()
	if s.pos != len(s.s) {
		return 0, errExprParse
	}
	return v, nil
}

// Binary operator precedences, loosest-binding first.
var binaryOps = []struct {
	symbol string
	prec   int
	eval   func(a, b int64) (int64, error)
}{
	{"|", 1, func(a, b int64) (int64, error) { return a | b, nil }},
	{"^", 2, func(a, b int64) (int64, error) { return a ^ b, nil }},
	{"&", 3, func(a, b int64) (int64, error) { return a & b, nil }},
	{"<<", 4, func(a, b int64) (int64, error) { return a << uint32(b), nil }},
	{">>", 4, func(a, b int64) (int64, error) { return a >> uint32(b), nil }},
	{"+", 5, func(a, b int64) (int64, error) { return a + b, nil }},
	{"-", 5, func(a, b int64) (int64, error) { return a - b, nil }},
	{"*", 6, func(a, b int64) (int64, error) { return a * b, nil }},
	{"/", 6, func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, errDivByZero
		}
		return a / b, nil
	}},
	{"%", 6, func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, errDivByZero
		}
		return a % b, nil
	}},
}

type exprScanner struct {
	s       string
	pos     int
	hexMode bool
	res     resolver
}

// parseExpr parses an expression using precedence climbing, consuming
// binary operators whose precedence is minPrec or tighter.
func (s *exprScanner) parseExpr(minPrec int) (int64, error) {
	lhs, err := s.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		i := s.peekBinaryOp()
		if i < 0 || binaryOps[i].prec < minPrec {
			return lhs, nil
		}
		s.pos += len(binaryOps[i].symbol)

		rhs, err := s.parseExpr(binaryOps[i].prec + 1)
		if err != nil {
			return 0, err
		}

		lhs, err = binaryOps[i].eval(lhs, rhs)
		if err != nil {
			return 0, err
		}
	}
}

func (s *exprScanner) parseUnary() (int64, error) {
	s.skipSpace()
	if s.pos == len(s.s) {
		return 0, errExprParse
	}

	switch c := s.s[s.pos]; c {
	case '-':
		s.pos++
		v, err := s.parseUnary()
		return -v, err

	case '+':
		s.pos++
		return s.parseUnary()

	case '~':
		s.pos++
		v, err := s.parseUnary()
		return ^v, err

	case '(':
		s.pos++
		v, err := s.parseExpr(0)
		if err != nil {
			return 0, err
		}
		s.skipSpace()
		if s.pos == len(s.s) || s.s[s.pos] != ')' {
			return 0, errExprParse
		}
		s.pos++
		return v, nil

	case '$':
		s.pos++
		return s.parseNumber(16)

	case '\'':
		if s.pos+2 >= len(s.s) || s.s[s.pos+2] != '\'' {
			return 0, errExprParse
		}
		v := int64(s.s[s.pos+1])
		s.pos += 3
		return v, nil

	default:
		switch {
		case c >= '0' && c <= '9':
			return s.parsePrefixedNumber()
		case isIdentChar(c):
			return s.parseIdentifier()
		default:
			return 0, errExprParse
		}
	}
}

// parsePrefixedNumber parses a number starting with a digit, honoring the
// 0x, 0b and 0d base prefixes.
func (s *exprScanner) parsePrefixedNumber() (int64, error) {
	base := 10
	if s.hexMode {
		base = 16
	}

	if s.s[s.pos] == '0' && s.pos+1 < len(s.s) {
		switch s.s[s.pos+1] {
		case 'x':
			base = 16
			s.pos += 2
		case 'b':
			base = 2
			s.pos += 2
		case 'd':
			base = 10
			s.pos += 2
		}
	}
	return s.parseNumber(base)
}

func (s *exprScanner) parseNumber(base int) (int64, error) {
	start := s.pos
	for s.pos < len(s.s) && isBaseDigit(s.s[s.pos], base) {
		s.pos++
	}
	if s.pos == start {
		return 0, errExprParse
	}

	v, err := strconv.ParseInt(s.s[start:s.pos], base, 64)
	if err != nil {
		return 0, errExprParse
	}
	return v, nil
}

func (s *exprScanner) parseIdentifier() (int64, error) {
	start := s.pos
	for s.pos < len(s.s) && isIdentChar(s.s[s.pos]) {
		s.pos++
	}

	id := s.s[start:s.pos]

	// In hex mode, bare identifiers are treated as hexadecimal numbers.
	if s.hexMode {
		if v, err := strconv.ParseInt(id, 16, 64); err == nil {
			return v, nil
		}
	}

	if s.res == nil {
		return 0, errIdentifier
	}
	return s.res.resolveIdentifier(id)
}

// peekBinaryOp returns the index of the binary operator at the scan
// position, or -1 when none is present. Longer operators are matched
// before shorter ones.
func (s *exprScanner) peekBinaryOp() int {
	s.skipSpace()

	best := -1
	for i, op := range binaryOps {
		if len(s.s)-s.pos < len(op.symbol) {
			continue
		}
		if s.s[s.pos:s.pos+len(op.symbol)] == op.symbol {
			if best < 0 || len(op.symbol) > len(binaryOps[best].symbol) {
				best = i
			}
		}
	}
	return best
}

func (s *exprScanner) skipSpace() {
	for s.pos < len(s.s) && (s.s[s.pos] == ' ' || s.s[s.pos] == '\t') {
		s.pos++
	}
}

func isBaseDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return int(c-'0') < base
	case c >= 'a' && c <= 'f':
		return base == 16
	case c >= 'A' && c <= 'F':
		return base == 16
	default:
		return false
	}
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '.'
}
