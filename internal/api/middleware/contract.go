package middleware

import "time"

// HTTPMetrics учет обработанных HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(route, method string, status int, elapsed time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
