package tint

// Get reads a single attribute from any colorspace value or wrapped
// color. The value converts to the key's owning colorspace first (a
// no-op when it is already there) and the raw field value is returned.
func Get(v Value, k Key) float64 {
	if c, ok := v.(Color); ok {
		return Get(c.value, k)
	}
	info := keyTable[k]
	return info.get(Convert(v, info.space))
}

// Put replaces a single attribute with x verbatim: no clamping is
// applied, the caller is responsible for the range. The result is
// expressed in the key's owning colorspace, not converted back to the
// input's colorspace; a wrapped input yields a wrapped result with the
// same format tag.
func Put(v Value, k Key, x float64) Value {
	if c, ok := v.(Color); ok {
		return c.rewrap(Put(c.value, k, x))
	}
	info := keyTable[k]
	return info.set(Convert(v, info.space), x)
}

// UpdateFunc transforms an attribute's current value.
type UpdateFunc func(cur float64) float64

// UpdateRangeFunc transforms an attribute's current value given the
// attribute's valid range.
type UpdateRangeFunc func(cur, min, max float64) float64

// Update applies fn to the attribute named by k and stores the result,
// clamped to the key's range (the hue wraps modulo 360 instead of
// saturating). Like Put, the result is expressed in the key's owning
// colorspace and stays wrapped if the input was wrapped.
func Update(v Value, k Key, fn UpdateFunc) Value {
	if c, ok := v.(Color); ok {
		return c.rewrap(Update(c.value, k, fn))
	}
	return updateWith(v, k, func(cur, _, _ float64) float64 {
		return fn(cur)
	})
}

// UpdateRange is Update for transforms that also want the key's
// (min, max) range.
func UpdateRange(v Value, k Key, fn UpdateRangeFunc) Value {
	if c, ok := v.(Color); ok {
		return c.rewrap(UpdateRange(c.value, k, fn))
	}
	return updateWith(v, k, fn)
}

func updateWith(v Value, k Key, fn UpdateRangeFunc) Value {
	info := keyTable[k]
	cur := Convert(v, info.space)
	next := fn(info.get(cur), info.min, info.max)
	return info.set(cur, Clamp(next, k)).cast()
}
