package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"msc-team.backend/internal/config"
)

func TestNewConnection_Hooks(t *testing.T) {
	origConnect, origPing := connect, ping
	t.Cleanup(func() { connect, ping = origConnect, origPing })

	cfg := config.MongoConfig{URI: "mongodb://127.0.0.1:1", Database: "msc_team"}

	connect = func(context.Context, string) (*mongo.Client, error) {
		return nil, errors.New("dial failed")
	}
	_, _, err := NewConnection(context.Background(), cfg)
	require.ErrorContains(t, err, "failed to connect to mongo")

	connect = origConnect
	ping = func(context.Context, *mongo.Client) error { return errors.New("no primary") }
	_, _, err = NewConnection(context.Background(), cfg)
	require.ErrorContains(t, err, "failed to ping mongo")

	ping = func(context.Context, *mongo.Client) error { return nil }
	client, db, err := NewConnection(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, "msc_team", db.Name())
	require.NoError(t, client.Disconnect(context.Background()))
}
