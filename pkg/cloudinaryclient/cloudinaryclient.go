package cloudinaryclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

const (
	_defaultConnAttempts = 5
	_defaultConnTimeout  = time.Second
)

type CloudinaryClient struct {
	connAttempts int
	connTimeout  time.Duration

	Client *cloudinary.Cloudinary
}

func New(ctx context.Context, cloudName, apiKey, apiSecret string, opts ...Option) (*CloudinaryClient, error) {
	c := &CloudinaryClient{
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("CloudinaryClient - New - cloudinary.NewFromParams: %w", err)
	}
	cld.Config.URL.Secure = true

	for c.connAttempts > 0 {
		_, err = cld.Admin.Ping(ctx)
		if err == nil {
			break
		}

		log.Printf("Cloudinary is trying to connect, attempts left: %d", c.connAttempts)

		time.Sleep(c.connTimeout)

		c.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("CloudinaryClient - New - connAttempts == 0: %w", err)
	}

	c.Client = cld

	return c, nil
}
