package value

// Get walks the prototype chain starting at o looking for key, returning the
// first descriptor found and the object that owns it. Matches the Standard's
// OrdinaryGet algorithm structurally; getter invocation is the caller's
// responsibility (the evaluator, which alone knows how to call a Function).
func Get(o *Object, key PropertyKey) (desc Descriptor, owner *Object, found bool) {
	cur := o
	for cur != nil {
		if d, ok := cur.OwnProperty(key); ok {
			return d, cur, true
		}
		proto, ok := cur.Prototype.(*Object)
		if !ok {
			if fn, isFn := cur.Prototype.(*Function); isFn {
				cur = &fn.Object
				continue
			}
			break
		}
		cur = proto
	}
	return Descriptor{}, nil, false
}

// HasOwn reports whether key is a direct property of o, without walking the
// prototype chain.
func HasOwn(o *Object, key PropertyKey) bool {
	_, ok := o.OwnProperty(key)
	return ok
}
