package notice

// Merge applies merge-patch semantics over generic JSON trees: object
// fields present in patch with a non-null value overwrite the base, null
// and absent fields preserve the base value, arrays and scalars replace
// wholesale. The result shares no structure with either input.
//
// Note the null handling differs from RFC 7386, where null deletes a key;
// here a stored value is never removed by a patch.
func Merge(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, v := range patch {
		if v == nil {
			continue
		}
		pm, pok := v.(map[string]any)
		bm, bok := out[k].(map[string]any)
		if pok && bok {
			out[k] = Merge(bm, pm)
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

// CloneTree deep-copies a decoded JSON object.
func CloneTree(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneTree(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
