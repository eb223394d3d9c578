package spec

// Step is a single compiled navigation operation, applied to the current
// working set of Matches. Root is not itself a Step; it is implicit at
// position 0 and handled by Expression.Evaluate, which seeds the working
// set with a single Match at the document root before applying Steps in
// order.
type Step interface {
	stringWriter
	// Apply consumes ms, the current working set, and produces the next
	// one. root is the document root, needed by Filter steps whose
	// predicates may reference $.
	Apply(ms []Match, root any) ([]Match, error)
}

// applySteps runs steps against a single seed value, returning the
// resulting working set. Used both by Expression.Evaluate (seed is the
// document root) and by SubPath evaluation inside filter predicates
// (seed is the current element or, for a $-rooted sub-path, the
// document root) — the same evaluator code path, per the "restricted
// re-entry" design.
func applySteps(steps []Step, seed any, root any) ([]Match, error) {
	ms := []Match{{Value: seed}}
	for _, s := range steps {
		next, err := s.Apply(ms, root)
		if err != nil {
			return nil, err
		}
		ms = next
	}
	return ms, nil
}
