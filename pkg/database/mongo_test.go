package database

import (
	"context"
	"testing"

	"shop-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func testMongo(t *testing.T, uri string) (*Mongo, *int) {
	t.Helper()

	m := NewMongo(utils.DatabaseConfig{
		URI:                   uri,
		Name:                  "testdb",
		MaxPoolSize:           10,
		ConnectTimeoutSeconds: 1,
		SocketTimeoutSeconds:  1,
	}, zap.NewNop())

	// mongo.Connect does not dial eagerly, so counting calls to it
	// observes real connection attempts without needing a server
	dials := 0
	m.dial = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
		dials++
		return mongo.Connect(ctx, opts...)
	}

	return m, &dials
}

func TestConnect_Idempotent(t *testing.T) {
	m, dials := testMongo(t, "mongodb://127.0.0.1:27017")
	ctx := context.Background()

	db1, err := m.Connect(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, db1)
	assert.True(t, m.IsConnected())

	// second call returns the existing handle without dialing again
	db2, err := m.Connect(ctx, "")
	require.NoError(t, err)
	assert.Same(t, db1, db2)
	assert.Equal(t, 1, *dials)
}

func TestConnect_MissingURI(t *testing.T) {
	m, dials := testMongo(t, "")

	_, err := m.Connect(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingURI)
	assert.False(t, m.IsConnected())
	assert.Equal(t, 0, *dials)
}

func TestConnect_ExplicitURIOverridesConfig(t *testing.T) {
	m, dials := testMongo(t, "")

	_, err := m.Connect(context.Background(), "mongodb://127.0.0.1:27017")
	require.NoError(t, err)
	assert.True(t, m.IsConnected())
	assert.Equal(t, 1, *dials)
}

func TestDisconnect_NoOpWhenNotConnected(t *testing.T) {
	m, _ := testMongo(t, "mongodb://127.0.0.1:27017")

	assert.NoError(t, m.Disconnect(context.Background()))
	assert.False(t, m.IsConnected())
}

func TestDisconnect_ResetsStateForFreshConnect(t *testing.T) {
	m, dials := testMongo(t, "mongodb://127.0.0.1:27017")
	ctx := context.Background()

	_, err := m.Connect(ctx, "")
	require.NoError(t, err)
	require.NoError(t, m.Disconnect(ctx))
	assert.False(t, m.IsConnected())

	// a later Connect performs a fresh connection
	_, err = m.Connect(ctx, "")
	require.NoError(t, err)
	assert.True(t, m.IsConnected())
	assert.Equal(t, 2, *dials)
}

func TestPing_NotConnected(t *testing.T) {
	m, _ := testMongo(t, "mongodb://127.0.0.1:27017")

	assert.Error(t, m.Ping(context.Background()))
}
