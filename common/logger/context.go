package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every record logged with a context carrying them.
// The auth middleware sets the principal; services add the entity they work on.
type LogFields struct {
	PrincipalID    *int64
	PrincipalRole  *string // "company" or "user"
	JobID          *int64
	ConversationID *int64
	Component      string // e.g. "hirely.service.conversation"
}

// WithLogFields merges fields into the context. Non-nil and non-empty values
// from fields replace what was already there.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields on ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.PrincipalID != nil {
		result.PrincipalID = next.PrincipalID
	}
	if next.PrincipalRole != nil {
		result.PrincipalRole = next.PrincipalRole
	}
	if next.JobID != nil {
		result.JobID = next.JobID
	}
	if next.ConversationID != nil {
		result.ConversationID = next.ConversationID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful inline: logger.WithLogFields(ctx, logger.LogFields{JobID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
