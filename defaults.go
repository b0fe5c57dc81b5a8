package gqlfetch

// coalesce picks v unless it is T's zero value. newClient uses it to fill
// the optional capabilities (Logger, Hooks, Codec, Hasher, IDs) a caller
// left unset in Options.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
