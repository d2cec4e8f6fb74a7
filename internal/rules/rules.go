// Package rules evaluates authored CEL expressions against a session
// snapshot. The catalog's win condition is the primary client; the
// expression language keeps victory logic in content, not code.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Registry manages the CEL environment and compiled-program cache.
type Registry struct {
	env   *cel.Env
	progs map[string]cel.Program
}

// NewRegistry initializes the CEL environment with the session snapshot
// variables: the carried inventory, the gold/level/hp counters, the
// current room id, and the ids of defeated enemies.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("inventory", cel.ListType(cel.StringType)),
		cel.Variable("gold", cel.IntType),
		cel.Variable("level", cel.IntType),
		cel.Variable("hp", cel.IntType),
		cel.Variable("current_room", cel.StringType),
		cel.Variable("defeated", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env, progs: make(map[string]cel.Program)}, nil
}

// Eval executes a CEL expression against the provided context. Programs
// are compiled once per expression and reused.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	prog, ok := r.progs[expression]
	if !ok {
		ast, iss := r.env.Compile(expression)
		if iss.Err() != nil {
			return nil, iss.Err()
		}
		compiled, err := r.env.Program(ast)
		if err != nil {
			return nil, err
		}
		r.progs[expression] = compiled
		prog = compiled
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// EvalBool evaluates an expression that must produce a boolean.
func (r *Registry) EvalBool(expression string, context map[string]any) (bool, error) {
	v, err := r.Eval(expression, context)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q produced %T, want bool", expression, v)
	}
	return b, nil
}
