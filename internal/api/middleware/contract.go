package middleware

import "net/http"

// PrincipalResolver определяет сотрудника по запросу
type PrincipalResolver interface {
	Resolve(r *http.Request) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
