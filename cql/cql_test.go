package cql

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/TheBitDrifter/depot"
)

type Location struct{ X, Y float32 }

type Size struct{ Value float32 }

type Health struct{ Current, Max int }

func (Health) Name() string { return "hp" }

func TestParser(t *testing.T) {
	term, err := internalCQLParser.ParseString("", "CONTAINS(a, b) & (CONTAINS(c) | !CONTAINS(d))")
	assert.NilError(t, err)
	testTerm := cqlTerm{
		Left: &cqlFactor{Base: &cqlValue{
			Contains: &cqlContains{Components: []*cqlComponent{{Name: "a"}, {Name: "b"}}},
		}},
		Right: []*cqlOpFactor{{
			Operator: opAnd,
			Factor: &cqlFactor{Base: &cqlValue{
				Subexpression: &cqlTerm{
					Left: &cqlFactor{Base: &cqlValue{
						Contains: &cqlContains{Components: []*cqlComponent{{Name: "c"}}},
					}},
					Right: []*cqlOpFactor{{
						Operator: opOr,
						Factor: &cqlFactor{Base: &cqlValue{
							Not: &cqlNot{SubExpression: &cqlValue{
								Contains: &cqlContains{Components: []*cqlComponent{{Name: "d"}}},
							}},
						}},
					}},
				},
			}},
		}},
	}
	assert.DeepEqual(t, *term, testTerm)
	assert.Equal(t, term.String(), "CONTAINS(a, b) & (CONTAINS(c) | !CONTAINS(d))")
}

func TestNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single", "CONTAINS(Location)", []string{"Location"}},
		{"list", "CONTAINS(Location, Size)", []string{"Location", "Size"}},
		{"conjunction", "CONTAINS(Size) & CONTAINS(Location)", []string{"Size", "Location"}},
		{"nested", "(CONTAINS(A) & (CONTAINS(B, C))) & CONTAINS(A)", []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := Names(tt.text)
			assert.NilError(t, err)
			assert.DeepEqual(t, names, tt.want)
		})
	}
}

func TestNamesRejects(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"CONTAINS(A) | CONTAINS(B)", "operator | is not supported"},
		{"!CONTAINS(A)", "negation is not supported"},
		{"CONTAINS()", "failed to parse query"},
		{"EXACT(A)", "failed to parse query"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Names(tt.text)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParse(t *testing.T) {
	sto := depot.Factory.NewStorage()
	location := depot.FactoryNewComponent[Location]()
	size := depot.FactoryNewComponent[Size]()
	health := depot.FactoryNewComponent[Health]()
	assert.NilError(t, sto.Register(location, size, health))

	sto.NewEntity().With(Location{1, 1}, Size{1})
	sto.NewEntity().With(Location{2, 2}, Health{5, 5})
	sto.NewEntity().With(Location{3, 3}, Size{3}, Health{1, 9})

	q, err := Parse("CONTAINS(hp) & CONTAINS(Location)", sto)
	assert.NilError(t, err)
	names := []string{}
	for _, c := range q.Components() {
		names = append(names, c.Name())
	}
	assert.DeepEqual(t, names, []string{"hp", "Location"})

	result, err := q.Run()
	assert.NilError(t, err)
	assert.DeepEqual(t, result.Entities, []depot.Entity{1, 2})
	assert.Equal(t, len(result.Groups), 2)
}

func TestParseUnknownName(t *testing.T) {
	sto := depot.Factory.NewStorage()
	assert.NilError(t, sto.Register(depot.FactoryNewComponent[Location]()))

	_, err := Parse("CONTAINS(Location, Velocity)", sto)
	assert.ErrorContains(t, err, `failed to resolve "Velocity"`)

	var unknown depot.UnknownComponentNameError
	assert.Assert(t, errors.As(err, &unknown))
	assert.Equal(t, unknown.Name, "Velocity")
}

func TestFormat(t *testing.T) {
	out, err := Format("CONTAINS( A,B )&CONTAINS(C)")
	assert.NilError(t, err)
	assert.Equal(t, out, "CONTAINS(A, B) & CONTAINS(C)")
}
