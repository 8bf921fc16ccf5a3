// Package options provides shared helpers for functional option
// validation across packages.
package options

// SingleSource ensures exactly one input source is set. set is a variadic
// list of booleans indicating whether each source was supplied. noneErr is
// returned when no source is set, multiErr when more than one is.
func SingleSource(noneErr, multiErr error, set ...bool) error {
	count := 0
	for _, s := range set {
		if s {
			count++
		}
	}
	if count == 0 {
		return noneErr
	}
	if count > 1 {
		return multiErr
	}
	return nil
}
