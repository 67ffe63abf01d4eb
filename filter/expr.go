package filter

import (
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"

	"github.com/s0up4200/votesmart/votesmart"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	extra      map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.customFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		customFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	customFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Check cache if enabled
	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Helpers are bound to an empty record so the compiler sees their signatures
	env := buildEnvironment(votesmart.Record{}, c.customFuncs)

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AllowUndefinedVariables(), // record fields vary by kind
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		extra:      c.customFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate runs the filter against a record
func (f *exprFilter) Evaluate(rec votesmart.Record) (bool, error) {
	result, err := expr.Run(f.program, buildEnvironment(rec, f.extra))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Record:     rec.Display(),
			Err:        err,
		}
	}

	// AsBool() guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// buildEnvironment exposes every field of rec by name plus the helper
// functions. Helpers win over fields of the same name.
func buildEnvironment(rec votesmart.Record, custom map[string]any) map[string]any {
	fields := rec.AsMap()
	env := make(map[string]any, len(fields)+24)

	maps.Copy(env, fields)
	env["Kind"] = string(rec.Kind)
	env["Record"] = fields

	addStringHelpers(env)
	addRecordHelpers(env, rec)
	maps.Copy(env, custom)

	return env
}

// addStringHelpers adds case-insensitive string helpers. contains,
// startsWith and endsWith are expr operators and stay case-sensitive.
func addStringHelpers(env map[string]any) {
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefixFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffixFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// addRecordHelpers adds closures over one record
func addRecordHelpers(env map[string]any, rec votesmart.Record) {
	env["field"] = func(name string) any {
		v, _ := rec.Get(name)
		return v
	}
	env["text"] = func(name string) string {
		return rec.Text(name)
	}
	env["number"] = func(name string) float64 {
		v, _ := rec.Get(name)
		return cast.ToFloat64(v)
	}
	env["has"] = func(name string) bool {
		if v, ok := rec.Get(name); ok {
			return v != nil && v != ""
		}
		_, ok := rec.Nested[name]
		return ok
	}
	env["count"] = func(name string) int {
		return len(rec.Nested[name])
	}
	env["display"] = func() string {
		return rec.Display()
	}
}
