// Package kafkaconsumer evicts cached gazetteer and POI lookups when
// place-update events arrive.
package kafkaconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/akhil-nair/trip-planner/internal/cache"
	"github.com/akhil-nair/trip-planner/internal/cache/keys"
	"github.com/akhil-nair/trip-planner/internal/invalidation"
	"github.com/akhil-nair/trip-planner/internal/observability"
)

type Consumer struct {
	cfg    Config
	logger *slog.Logger
	store  cache.Interface
}

func New(cfg Config, logger *slog.Logger, store cache.Interface) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{cfg: cfg, logger: logger, store: store}
}

// Start consumes place-update events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	if c.store == nil {
		return errors.New("kafkaconsumer: missing cache store")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Consumer.Group.Session.Timeout = c.cfg.SessionTimeout
	cfg.Consumer.Group.Heartbeat.Interval = c.cfg.Heartbeat
	cfg.Consumer.Group.Rebalance.Timeout = c.cfg.RebalanceTimeout
	if c.cfg.InitialOffsetOldest {
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	cfg.Consumer.Offsets.AutoCommit.Enable = true

	group, err := sarama.NewConsumerGroup(c.cfg.Brokers, c.cfg.GroupID, cfg)
	if err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}
	defer func() { _ = group.Close() }()

	handler := &groupHandler{process: c.ProcessOne}

	c.logger.Info("place-update invalidation consumer starting",
		"brokers", c.cfg.Brokers, "topic", c.cfg.Topic, "group", c.cfg.GroupID)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("invalidation consumer shutting down")
			return nil
		default:
			if err := group.Consume(ctx, []string{c.cfg.Topic}, handler); err != nil {
				c.logger.Error("consumer error", "err", err)
				time.Sleep(2 * time.Second)
			}
		}
	}
}

// ProcessOne decodes and applies a single place-update message.
func (c *Consumer) ProcessOne(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var ev invalidation.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	if err := ev.Validate(); err != nil {
		return fmt.Errorf("invalid event: %w", err)
	}

	delKeys := c.keysForEvent(ev)
	if err := c.store.Del(ctx, delKeys...); err != nil {
		return fmt.Errorf("evict %d keys: %w", len(delKeys), err)
	}

	observability.IncInvalidation(ev.Op)
	c.logger.Debug("cache entries evicted",
		"place", ev.Place, "op", ev.Op, "keys", len(delKeys))
	return nil
}

func (c *Consumer) keysForEvent(ev invalidation.Event) []string {
	delKeys := []string{keys.GeoKey(ev.Place)}
	if ev.Lat != nil && ev.Lon != nil {
		delKeys = append(delKeys, keys.PoiKey(*ev.Lat, *ev.Lon, c.cfg.PoiRadiusM, c.cfg.PoiLimit))
	}
	return delKeys
}
