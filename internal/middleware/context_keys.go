package middleware

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

// loggerCtxKey is the key used to store the request-scoped logger in the
// request context.
const loggerCtxKey = contextKey("logger")
