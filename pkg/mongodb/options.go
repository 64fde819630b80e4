package mongodb

import "time"

type Option func(*MongoDB)

func ConnAttempts(attempts int) Option {
	return func(m *MongoDB) {
		m.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(m *MongoDB) {
		m.connTimeout = timeout
	}
}

// ConnectTimeout bounds a single ping.
func ConnectTimeout(timeout time.Duration) Option {
	return func(m *MongoDB) {
		m.connectTimeout = timeout
	}
}
