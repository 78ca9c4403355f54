package console

import "context"

type verboseKey struct{}

// SetVerbose marks the context for verbose console output, typically
// from a command's --verbose flag.
func SetVerbose(parent context.Context, value bool) context.Context {
	return context.WithValue(parent, verboseKey{}, value)
}

// IsVerbose reports whether verbose console output was requested on
// the context.
func IsVerbose(ctx context.Context) bool {
	value, ok := ctx.Value(verboseKey{}).(bool)
	return ok && value
}
