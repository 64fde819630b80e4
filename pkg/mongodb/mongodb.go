package mongodb

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	_defaultConnAttempts   = 10
	_defaultConnTimeout    = time.Second
	_defaultConnectTimeout = 10 * time.Second
)

type MongoDB struct {
	connAttempts   int
	connTimeout    time.Duration
	connectTimeout time.Duration

	Client *mongo.Client
	DB     *mongo.Database
}

func New(ctx context.Context, uri, database string, opts ...Option) (*MongoDB, error) {
	m := &MongoDB{
		connAttempts:   _defaultConnAttempts,
		connTimeout:    _defaultConnTimeout,
		connectTimeout: _defaultConnectTimeout,
	}

	for _, opt := range opts {
		opt(m)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("MongoDB - New - mongo.Connect: %w", err)
	}

	for m.connAttempts > 0 {
		err = m.ping(ctx, client)
		if err == nil {
			break
		}

		log.Printf("MongoDB is trying to connect, attempts left: %d", m.connAttempts)

		time.Sleep(m.connTimeout)

		m.connAttempts--
	}

	if err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("MongoDB - New - connAttempts == 0: %w", err)
	}

	m.Client = client
	m.DB = client.Database(database)

	return m, nil
}

func (m *MongoDB) ping(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, m.connectTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB - client.Ping: %w", err)
	}

	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}

	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("MongoDB - Close - m.Client.Disconnect: %w", err)
	}

	return nil
}
