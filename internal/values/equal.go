package values

// Equal performs ML's polymorphic structural equality: a type-directed
// switch that recurses into sequences element-wise. Reals compare by
// IEEE value, so NaN never equals anything, including itself, and `=`
// on NaN is always false.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Bool:
		return av == b.(Bool)
	case Int:
		return av == b.(Int)
	case Real:
		bv := b.(Real)
		if IsNaN(av) || IsNaN(bv) {
			return false
		}
		return av == bv
	case Char:
		return av == b.(Char)
	case String:
		return av == b.(String)
	case unit:
		return true
	case Seq:
		bv := b.(Seq)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		// Closures and built-ins have no ML equality; reference identity
		// is the closest approximation and is never reached by well-typed
		// programs (function values are not an equality type in ML).
		return a == b
	}
}
