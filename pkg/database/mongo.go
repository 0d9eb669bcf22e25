package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-backend/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrMissingURI - tidak ada connection string sama sekali
var ErrMissingURI = errors.New("mongodb uri is required (set MONGODB_URI)")

// MongoIface interface untuk abstraction database
type MongoIface interface {
	Collection(name string) *mongo.Collection
	Ping(ctx context.Context) error
}

// Mongo owns the single shared client to the document store.
// Lifecycle: uninitialized -> connected -> disconnected, guarded by a
// plain flag. Expected usage is one Connect at startup and one
// Disconnect at shutdown, not concurrent connect/disconnect.
type Mongo struct {
	config    utils.DatabaseConfig
	log       *zap.Logger
	client    *mongo.Client
	db        *mongo.Database
	connected bool

	// dial is swappable for tests
	dial func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error)
}

func NewMongo(config utils.DatabaseConfig, log *zap.Logger) *Mongo {
	return &Mongo{
		config: config,
		log:    log,
		dial:   mongo.Connect,
	}
}

// Connect opens the shared connection. An empty uri falls back to the
// configured default. Idempotent: a second call while connected returns
// the existing handle without dialing again.
func (m *Mongo) Connect(ctx context.Context, uri string) (*mongo.Database, error) {
	if m.connected {
		return m.db, nil
	}

	if uri == "" {
		uri = m.config.URI
	}
	if uri == "" {
		return nil, ErrMissingURI
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(m.config.MaxPoolSize).
		SetServerSelectionTimeout(time.Duration(m.config.ConnectTimeoutSeconds) * time.Second).
		SetSocketTimeout(time.Duration(m.config.SocketTimeoutSeconds) * time.Second)

	client, err := m.dial(ctx, opts)
	if err != nil {
		// state stays unconnected so a later retry can dial fresh
		m.log.Error("MongoDB connection error", zap.Error(err))
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	m.client = client
	m.db = client.Database(m.config.Name)
	m.connected = true

	m.log.Info("MongoDB connected", zap.String("database", m.config.Name))

	return m.db, nil
}

// Disconnect releases the connection. No-op when not connected.
func (m *Mongo) Disconnect(ctx context.Context) error {
	if !m.connected {
		return nil
	}

	err := m.client.Disconnect(ctx)

	m.client = nil
	m.db = nil
	m.connected = false

	if err != nil {
		m.log.Error("MongoDB disconnect error", zap.Error(err))
		return fmt.Errorf("disconnect mongodb: %w", err)
	}

	m.log.Info("MongoDB disconnected")
	return nil
}

// Collection implements MongoIface
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping implements MongoIface
func (m *Mongo) Ping(ctx context.Context) error {
	if !m.connected {
		return errors.New("mongodb is not connected")
	}
	return m.client.Ping(ctx, nil)
}

// IsConnected reports the lifecycle flag
func (m *Mongo) IsConnected() bool {
	return m.connected
}
