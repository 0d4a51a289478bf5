package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contentplan/internal/config"
	"contentplan/internal/core"

	libnats "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const bucket = "contentplan"

// NATS implements core.KeyValueStore on a JetStream key-value bucket. It is
// an alternative to File for setups that already run a NATS server; the
// planner itself never requires one.
type NATS struct {
	Logger *slog.Logger
	Config *config.Config

	conn *libnats.Conn
	kv   jetstream.KeyValue
}

func (n *NATS) Init(ctx context.Context) error {
	n.Logger = n.Logger.With("component", "kv.NATS")

	nc, err := libnats.Connect(n.Config.NATSURL)
	if err != nil {
		return err
	}
	n.conn = nc

	js, err := jetstream.New(nc)
	if err != nil {
		return err
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket: bucket,
	})
	if err != nil {
		return err
	}
	n.kv = kv

	return nil
}

func (n *NATS) HealthCheck(context.Context) error {
	_, err := n.conn.RTT()
	return err
}

func (n *NATS) Shutdown(context.Context) error {
	return n.conn.Drain()
}

func (n *NATS) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := n.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", core.ErrKeyNotFound, key)
		}
		return nil, err
	}
	return entry.Value(), nil
}

func (n *NATS) Put(ctx context.Context, key string, value []byte) error {
	if _, err := n.kv.Put(ctx, key, value); err != nil {
		return fmt.Errorf("failed to store key %s: %w", key, err)
	}
	return nil
}

func (n *NATS) Delete(ctx context.Context, key string) error {
	err := n.kv.Delete(ctx, key)
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil
	}
	return err
}
