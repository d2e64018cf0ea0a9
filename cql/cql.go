// Package cql parses a small component query language into depot queries.
//
//	CONTAINS(Location, Size) & CONTAINS(Health)
//
// Only conjunctions are supported: the result of a query is one group of
// slots per required component, so "|" and "!" are parsed and rejected.
package cql

import (
	"strings"

	"github.com/TheBitDrifter/depot"
	"github.com/alecthomas/participle/v2"
	"github.com/rotisserie/eris"
)

type cqlOperator int

const (
	opAnd cqlOperator = iota
	opOr
)

var operatorMap = map[string]cqlOperator{"&": opAnd, "|": opOr}

// Capture tells the parser how to turn an operator token into a cqlOperator.
func (o *cqlOperator) Capture(s []string) error {
	if len(s) == 0 {
		return eris.New("invalid operator")
	}
	operator, ok := operatorMap[s[0]]
	if !ok {
		return eris.New("invalid operator")
	}
	*o = operator
	return nil
}

type cqlComponent struct {
	Name string `@Ident`
}

type cqlNot struct {
	SubExpression *cqlValue `"!" @@`
}

type cqlContains struct {
	Components []*cqlComponent `"CONTAINS" "(" (@@",")* @@ ")"`
}

type cqlValue struct {
	Contains      *cqlContains `@@`
	Not           *cqlNot      `| @@`
	Subexpression *cqlTerm     `| "(" @@ ")"`
}

type cqlFactor struct {
	Base *cqlValue `@@`
}

type cqlOpFactor struct {
	Operator cqlOperator `@("&" | "|")`
	Factor   *cqlFactor  `@@`
}

type cqlTerm struct {
	Left  *cqlFactor     `@@`
	Right []*cqlOpFactor `@@*`
}

func (o cqlOperator) String() string {
	switch o {
	case opAnd:
		return "&"
	case opOr:
		return "|"
	}
	panic("unsupported operator")
}

func (c *cqlContains) String() string {
	names := make([]string, 0, len(c.Components))
	for _, comp := range c.Components {
		names = append(names, comp.Name)
	}
	return "CONTAINS(" + strings.Join(names, ", ") + ")"
}

func (v *cqlValue) String() string {
	switch {
	case v.Contains != nil:
		return v.Contains.String()
	case v.Not != nil:
		return "!" + v.Not.SubExpression.String()
	case v.Subexpression != nil:
		return "(" + v.Subexpression.String() + ")"
	}
	return ""
}

func (f *cqlFactor) String() string {
	return f.Base.String()
}

func (o *cqlOpFactor) String() string {
	return o.Operator.String() + " " + o.Factor.String()
}

func (t *cqlTerm) String() string {
	out := []string{t.Left.String()}
	for _, r := range t.Right {
		out = append(out, r.String())
	}
	return strings.Join(out, " ")
}

var internalCQLParser = participle.MustBuild[cqlTerm]()

// Names parses text and returns the component names it requires, in the order
// they first appear. Repeated names are kept once.
func Names(text string) ([]string, error) {
	term, err := internalCQLParser.ParseString("", text)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse query")
	}
	var names []string
	if err := termNames(term, &names); err != nil {
		return nil, err
	}
	return dedupe(names), nil
}

// Parse resolves the names in text against sto and returns a query requiring
// all of them.
func Parse(text string, sto depot.Storage) (depot.Query, error) {
	names, err := Names(text)
	if err != nil {
		return nil, err
	}
	components := make([]depot.Component, 0, len(names))
	for _, name := range names {
		comp, err := sto.ComponentByName(name)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to resolve %q", name)
		}
		components = append(components, comp)
	}
	q := sto.Query().With(components...)
	if err := q.Err(); err != nil {
		return nil, eris.Wrap(err, "failed to build query")
	}
	return q, nil
}

// Format parses text and prints it back in canonical spacing.
func Format(text string) (string, error) {
	term, err := internalCQLParser.ParseString("", text)
	if err != nil {
		return "", eris.Wrap(err, "failed to parse query")
	}
	return term.String(), nil
}

func termNames(term *cqlTerm, names *[]string) error {
	if term.Left == nil {
		return eris.New("not enough values in expression")
	}
	if err := valueNames(term.Left.Base, names); err != nil {
		return err
	}
	for _, opFactor := range term.Right {
		if opFactor.Operator != opAnd {
			return eris.Errorf("operator %s is not supported, only & may join terms", opFactor.Operator)
		}
		if err := valueNames(opFactor.Factor.Base, names); err != nil {
			return err
		}
	}
	return nil
}

func valueNames(value *cqlValue, names *[]string) error {
	switch {
	case value.Contains != nil:
		if len(value.Contains.Components) == 0 {
			return eris.New("CONTAINS cannot have zero parameters")
		}
		for _, comp := range value.Contains.Components {
			*names = append(*names, comp.Name)
		}
		return nil
	case value.Not != nil:
		return eris.New("negation is not supported")
	case value.Subexpression != nil:
		return termNames(value.Subexpression, names)
	}
	return eris.New("unknown error during conversion from CQL AST to component names")
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
