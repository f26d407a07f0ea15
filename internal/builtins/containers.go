package builtins

import (
	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// normalizeKey converts an Identifier or Quote(Identifier) key into a
// String key, the Dict key normalization rule §9 requires so that
// `(dict 'name "Alice")` and `(get d "name")` interoperate.
func normalizeKey(v value.Value) value.Value {
	if n, ok := value.IdentifierName(v); ok {
		return value.StringValue{Value: n}
	}
	return v
}

// biDict implements `dict k1 v1 k2 v2 ...`: an even argument count is
// required; keys arriving as Quote(Identifier) are stored as String
// (§4.6, §9).
func biDict(args []value.Value, _ *value.Environment) (value.Value, error) {
	if len(args)%2 != 0 {
		return nil, signal.ArgumentErrorf("dict expects an even number of arguments, got %d", len(args))
	}
	d := value.NewDict()
	for i := 0; i < len(args); i += 2 {
		key := normalizeKey(args[i])
		if err := d.Set(key, args[i+1]); err != nil {
			return nil, signal.ArgumentErrorf("dict: %s", err)
		}
	}
	return d, nil
}

// arrayIndex computes the wrapped index §8 invariant 4 specifies:
// ((i mod len) + len) mod len when |i| <= len, else ArgumentError.
func arrayIndex(n int, i int64) (int, error) {
	if n == 0 {
		return 0, signal.ArgumentErrorf("index into empty array")
	}
	ln := int64(n)
	if i > ln || i < -ln {
		return 0, signal.ArgumentErrorf("index out of bounds: got %d but length is %d", i, n)
	}
	idx := ((i % ln) + ln) % ln
	return int(idx), nil
}

// biGet implements `get obj key`: Array with Int key uses modular
// indexing; Dict accepts any hashable key (Identifier/Quote(Identifier)
// normalized to String); String with Int key returns the byte at the
// wrapped index (§4.6, §9 — the existing source does not exercise this
// path, so the exact behavior here is this implementation's choice).
func biGet(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("get", args, 2); err != nil {
		return nil, err
	}
	switch obj := args[0].(type) {
	case *value.ArrayValue:
		idx, ok := args[1].(value.IntValue)
		if !ok {
			return nil, signal.IndexErrorf("get: Array index must be Int, got %s", args[1].Kind())
		}
		i, err := arrayIndex(len(obj.Elements), idx.Value)
		if err != nil {
			return nil, err
		}
		return obj.Elements[i], nil

	case *value.DictValue:
		key := normalizeKey(args[1])
		v, ok := obj.Get(key)
		if !ok {
			return nil, signal.IndexErrorf("get: key %s not found in dict", value.Format(key, true))
		}
		return v, nil

	case value.StringValue:
		idx, ok := args[1].(value.IntValue)
		if !ok {
			return nil, signal.IndexErrorf("get: String index must be Int, got %s", args[1].Kind())
		}
		i, err := arrayIndex(len(obj.Value), idx.Value)
		if err != nil {
			return nil, err
		}
		return value.IntValue{Value: int64(obj.Value[i])}, nil

	default:
		return nil, signal.ArgumentErrorf("get does not support obj of kind %s", args[0].Kind())
	}
}

// biLen implements `len x`: Array, Dict, String -> Int; Quote -> 1;
// otherwise ArgumentError (§4.6).
func biLen(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("len", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *value.ArrayValue:
		return value.IntValue{Value: int64(len(v.Elements))}, nil
	case *value.DictValue:
		return value.IntValue{Value: int64(v.Len())}, nil
	case value.StringValue:
		return value.IntValue{Value: int64(len(v.Value))}, nil
	case *value.QuoteValue:
		return value.IntValue{Value: 1}, nil
	default:
		return nil, signal.ArgumentErrorf("len does not support operand of kind %s", args[0].Kind())
	}
}

// biSwap implements `swap target path value`: target names a binding;
// path is a Quote(Array) of indexers (Int for Array, Identifier/String
// for Dict); walks the binding to the leaf the path describes and
// replaces it, index/key validation mirroring `get` (§4.6).
func biSwap(args []value.Value, env *value.Environment) (value.Value, error) {
	if err := requireArgs("swap", args, 3); err != nil {
		return nil, err
	}
	targetName, err := name("swap", args[0])
	if err != nil {
		return nil, err
	}
	path, err := asArray("swap", args[1])
	if err != nil {
		return nil, err
	}
	root, ok := env.Get(targetName)
	if !ok {
		return nil, signal.NameErrorf("cannot lookup name: %q", targetName)
	}

	newRoot, err := swapAt(root, path.Elements, args[2])
	if err != nil {
		return nil, err
	}
	env.Insert(targetName, newRoot)
	return value.Null, nil
}

// swapAt recursively rebuilds container, replacing the element the first
// indexer in path selects with the result of swapping the remainder of
// path into it. Replacing a leaf (path of length 1) installs newVal
// directly.
func swapAt(container value.Value, path []value.Value, newVal value.Value) (value.Value, error) {
	if len(path) == 0 {
		return newVal, nil
	}
	head, rest := path[0], path[1:]

	switch c := container.(type) {
	case *value.ArrayValue:
		idx, ok := head.(value.IntValue)
		if !ok {
			return nil, signal.IndexErrorf("swap: Array index must be Int, got %s", head.Kind())
		}
		i, err := arrayIndex(len(c.Elements), idx.Value)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(c.Elements))
		copy(out, c.Elements)
		replaced, err := swapAt(out[i], rest, newVal)
		if err != nil {
			return nil, err
		}
		out[i] = replaced
		return &value.ArrayValue{Elements: out}, nil

	case *value.DictValue:
		key := normalizeKey(head)
		cur, ok := c.Get(key)
		if !ok {
			return nil, signal.IndexErrorf("swap: key %s not found in dict", value.Format(key, true))
		}
		replaced, err := swapAt(cur, rest, newVal)
		if err != nil {
			return nil, err
		}
		out := value.NewDict()
		for _, pair := range c.Pairs() {
			if value.Equal(pair.Key, key) {
				_ = out.Set(pair.Key, replaced)
			} else {
				_ = out.Set(pair.Key, pair.Value)
			}
		}
		return out, nil

	default:
		return nil, signal.ArgumentErrorf("swap does not support container of kind %s", container.Kind())
	}
}
