package handlers

import "context"

type workerIDKey struct{}

// WithWorkerID кладет ID аутентифицированного сотрудника в контекст
func WithWorkerID(ctx context.Context, workerID int64) context.Context {
	return context.WithValue(ctx, workerIDKey{}, workerID)
}

// WorkerIDFromContext достает ID сотрудника, положенный middleware аутентификации
func WorkerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(workerIDKey{}).(int64)
	return id, ok && id > 0
}
