package cloudinaryclient

import "time"

type Option func(c *CloudinaryClient)

func ConnAttempts(attempts int) Option {
	return func(c *CloudinaryClient) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *CloudinaryClient) {
		c.connTimeout = timeout
	}
}
