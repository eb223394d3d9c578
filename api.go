package jsonpath

import "github.com/pathlang/jsonpath/spec"

// ResultMode selects what Search returns for each match: the matched
// value, or the canonical path string that locates it.
type ResultMode int

const (
	// ValueMode returns matched values (the default).
	ValueMode ResultMode = iota
	// PathMode returns each match's canonical NormalizedPath string
	// instead of its value.
	PathMode
)

// compileConfig accumulates CompileOption settings during Compile.
type compileConfig struct {
	maxDepth int
}

// CompileOption customizes Compile's behavior.
type CompileOption func(*compileConfig)

// WithMaxDepth caps how many levels of descendants a recursive-descent
// (..) segment will visit below each of its starting matches. A
// non-positive depth is treated as unlimited, Compile's default.
// Intended as a guard when evaluating untrusted or very large/deeply
// nested documents.
func WithMaxDepth(depth int) CompileOption {
	return func(c *compileConfig) {
		c.maxDepth = depth
	}
}

// applyOptions applies cfg to every top-level Descent step in expr,
// including Descent steps nested as the Next of another Descent
// (".. .. name"). Descent steps inside filter sub-paths are not changed.
func applyOptions(expr *spec.Expression, cfg *compileConfig) {
	if cfg.maxDepth <= 0 {
		return
	}
	for _, s := range expr.Steps() {
		applyMaxDepth(s, cfg.maxDepth)
	}
}

func applyMaxDepth(s spec.Step, depth int) {
	d, ok := s.(*spec.Descent)
	if !ok {
		return
	}
	d.MaxDepth = depth
	applyMaxDepth(d.Next, depth)
}

// CompileWithOptions is like Compile but accepts CompileOptions, such
// as WithMaxDepth.
func CompileWithOptions(expr string, opts ...CompileOption) (*Path, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	cfg := &compileConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	applyOptions(p.expr, cfg)
	return p, nil
}

// Parse compiles expr and immediately evaluates it against input,
// returning the matched values. A convenience for one-shot queries
// where the compiled Path is not reused.
func Parse(expr string, input any) ([]any, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return p.Select(input), nil
}

// Search runs expr against input and returns results in mode: matched
// values (ValueMode) or canonical path strings (PathMode).
func Search(expr string, input any, mode ResultMode) ([]any, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	ms, err := p.SelectMatches(input)
	if err != nil {
		return nil, err
	}
	if mode == PathMode {
		paths := spec.MatchList(ms).Paths()
		out := make([]any, len(paths))
		for i, s := range paths {
			out[i] = s
		}
		return out, nil
	}
	return spec.MatchList(ms).Values(), nil
}
