package filter

import (
	"strconv"
	"strings"

	"github.com/supalite/supalite/postgrest/record"
)

// The or() mini-DSL: a comma-separated list of "column.op.value" terms, e.g.
//
//	status.eq.active,status.eq.new
//
// Only eq and neq are supported. That limit is an explicit property of the
// parser, not an accident of string splitting: an unsupported or malformed
// term parses into an invalid node which evaluates to false, so a typo
// silently narrows the result set instead of erroring, mirroring the
// backend client being emulated.

// OrOp is an operator allowed inside an or() term.
type OrOp string

const (
	OrOpEq  OrOp = "eq"
	OrOpNeq OrOp = "neq"
)

// OrTerm is one parsed disjunct. Invalid terms are kept in the AST (with
// Valid=false) so callers and tests can see exactly what was rejected.
type OrTerm struct {
	Column string
	Op     OrOp
	Value  any
	Valid  bool
	Raw    string
}

// OrCondition is the parsed disjunction of all terms.
type OrCondition struct {
	Terms []OrTerm
}

// ParseOr tokenizes the DSL into a typed condition tree. It never fails:
// malformed input produces invalid terms, preserving the degrade-to-false
// contract.
func ParseOr(dsl string) OrCondition {
	var cond OrCondition
	for _, raw := range strings.Split(dsl, ",") {
		cond.Terms = append(cond.Terms, parseTerm(strings.TrimSpace(raw)))
	}
	return cond
}

func parseTerm(raw string) OrTerm {
	term := OrTerm{Raw: raw}
	parts := strings.SplitN(raw, ".", 3)
	if len(parts) != 3 || parts[0] == "" {
		return term
	}
	op := OrOp(parts[1])
	if op != OrOpEq && op != OrOpNeq {
		return term
	}
	term.Column = parts[0]
	term.Op = op
	term.Value = parseLiteral(parts[2])
	term.Valid = true
	return term
}

// parseLiteral types the value token: null, booleans and numbers get their
// Go counterparts, everything else stays a string.
func parseLiteral(tok string) any {
	switch tok {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return tok
}

// Predicate compiles the condition into a single predicate that is the
// logical OR of its terms. An all-invalid (or empty) condition matches
// nothing.
func (c OrCondition) Predicate() Predicate {
	return func(rec record.Record) bool {
		for _, t := range c.Terms {
			if t.matches(rec) {
				return true
			}
		}
		return false
	}
}

func (t OrTerm) matches(rec record.Record) bool {
	if !t.Valid {
		return false
	}
	eq := Equal(rec[t.Column], t.Value)
	if t.Op == OrOpNeq {
		return !eq
	}
	return eq
}
