// Package filter selects validation errors with expr-lang predicates, e.g.
//
//	category == "range" && reference startsWith "#/items"
//
// Predicates see the fields of Env.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	schemaerrors "github.com/tombee/schemaerr/pkg/errors"
)

// Env is the environment a predicate is evaluated against.
type Env struct {
	Kind         string   `expr:"kind"`
	Category     string   `expr:"category"`
	Status       int      `expr:"status"`
	Reference    string   `expr:"reference"`
	Message      string   `expr:"message"`
	Value        string   `expr:"value"`
	ValueType    string   `expr:"value_type"`
	ExpectedType string   `expr:"expected_type"`
	Keys         []string `expr:"keys"`
	Pattern      string   `expr:"pattern"`
}

// NewEnv builds the predicate environment for err.
func NewEnv(err schemaerrors.ValidationError) Env {
	d := schemaerrors.Describe(err)
	env := Env{
		Kind:         d.Kind.String(),
		Category:     string(d.Category),
		Status:       d.Kind.HTTPStatus(),
		Reference:    d.Reference,
		Message:      d.Message,
		ValueType:    d.ValueType,
		ExpectedType: d.ExpectedType,
		Keys:         d.Keys,
		Pattern:      d.Pattern,
	}
	if d.Value != nil {
		env.Value = d.Value.String()
	}
	return env
}

// Filter is a compiled predicate. It is safe for concurrent use.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile compiles a boolean predicate over Env. An empty expression
// matches everything.
func Compile(expression string) (*Filter, error) {
	if expression == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(Env{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expression, err)
	}

	return &Filter{source: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.source
}

// Match reports whether err satisfies the predicate.
func (f *Filter) Match(err schemaerrors.ValidationError) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	out, runErr := expr.Run(f.program, NewEnv(err))
	if runErr != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.source, runErr)
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, expected bool", f.source, out)
	}
	return matched, nil
}

// Apply returns the errors in list that satisfy the predicate, in order.
// Evaluation stops at the first runtime error.
func (f *Filter) Apply(list schemaerrors.List) (schemaerrors.List, error) {
	if f.program == nil {
		return list, nil
	}

	var firstErr error
	out := list.Filter(func(err schemaerrors.ValidationError) bool {
		if firstErr != nil {
			return false
		}
		matched, matchErr := f.Match(err)
		if matchErr != nil {
			firstErr = matchErr
			return false
		}
		return matched
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
