package value

// Equal reports whether v and other are structurally equal under the
// round-trip law of §8: tuples and lists compare elementwise and in
// order; dicts compare as unordered key/value maps; sets and frozensets
// compare as unordered collections (host iteration order is explicitly
// not part of the contract). NaN floats are never equal to themselves,
// matching IEEE-754 rather than the host language's object identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindInvalid, KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindUint:
		return v.u == other.u
	case KindFloat:
		return v.f == other.f
	case KindComplex:
		return v.re == other.re && v.im == other.im
	case KindStr:
		return v.str == other.str
	case KindBytes, KindByteArray:
		return bytesEqual(v.bytes, other.bytes)
	case KindTuple, KindList:
		return seqEqualOrdered(v.seq, other.seq)
	case KindSet, KindFrozenSet:
		return seqEqualUnordered(v.seq, other.seq)
	case KindDict:
		return dictEqual(v.pairs, other.pairs)
	case KindClassRef:
		return v.classRef == other.classRef
	case KindSingleton:
		return v.singleton == other.singleton
	case KindInstance:
		return instanceEqual(v.instance, other.instance)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func seqEqualOrdered(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// seqEqualUnordered implements set-equality via greedy bipartite
// matching: O(n^2), acceptable for the small in-process collections
// this codec targets. Values are not hashable in this model (they may
// contain slices), so a map-based matching is not available.
func seqEqualUnordered(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	used := make([]bool, len(b))

	for _, av := range a {
		matched := false

		for j, bv := range b {
			if used[j] {
				continue
			}

			if av.Equal(bv) {
				used[j] = true
				matched = true

				break
			}
		}

		if !matched {
			return false
		}
	}

	return true
}

func dictEqual(a, b []DictEntry) bool {
	if len(a) != len(b) {
		return false
	}

	used := make([]bool, len(b))

	for _, ae := range a {
		matched := false

		for j, be := range b {
			if used[j] {
				continue
			}

			if ae.Key.Equal(be.Key) && ae.Val.Equal(be.Val) {
				used[j] = true
				matched = true

				break
			}
		}

		if !matched {
			return false
		}
	}

	return true
}

func instanceEqual(a, b *Instance) bool {
	if a == nil || b == nil {
		return a == b
	}

	if !a.Callable.Equal(b.Callable) {
		return false
	}

	if !seqEqualOrdered(a.Args, b.Args) {
		return false
	}

	return optionalEqual(a.State, b.State) &&
		optionalEqual(a.Extend, b.Extend) &&
		optionalEqual(a.Update, b.Update)
}

func optionalEqual(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}
