package constant

type contextKey string

// RequestIDKey carries the per-request trace id through the context.
const RequestIDKey contextKey = "request_id"
