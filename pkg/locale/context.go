package locale

import "context"

type contextKey struct{}

// WithContext stores the resolved locale in the context.
func WithContext(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext retrieves the resolved locale from the context.
// If no locale is set, the default locale is returned.
func FromContext(ctx context.Context) Locale {
	if ctx == nil {
		return Default
	}
	l, ok := ctx.Value(contextKey{}).(Locale)
	if !ok {
		return Default
	}
	return l
}
