// Package events publishes compendium change notifications on the
// rpg-toolkit event bus.
package events

//go:generate mockgen -destination=mock/mock_publisher.go -package=eventsmock github.com/KirkDiggler/rpg-compendium/internal/events Publisher

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Topics published by the compendium
const (
	TopicMonsterSaved     = "monster.saved"
	TopicMonsterDeleted   = "monster.deleted"
	TopicMagicItemSaved   = "magic_item.saved"
	TopicMagicItemDeleted = "magic_item.deleted"
)

// AllTopics lists every topic in publication order
var AllTopics = []string{TopicMonsterSaved, TopicMonsterDeleted, TopicMagicItemSaved, TopicMagicItemDeleted}

// Publisher announces changes to compendium records
type Publisher interface {
	// Publish emits topic with the changed record as the event source
	Publish(ctx context.Context, topic string, record core.Entity) error
}

// BusPublisherConfig configures a BusPublisher
type BusPublisherConfig struct {
	Bus events.EventBus
}

// Validate validates the config
func (c *BusPublisherConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("bus")
	}
	return vb.Build()
}

type busPublisher struct {
	bus events.EventBus
}

// NewBusPublisher creates a Publisher backed by an rpg-toolkit bus
func NewBusPublisher(cfg *BusPublisherConfig) (Publisher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bus publisher config")
	}
	return &busPublisher{bus: cfg.Bus}, nil
}

func (p *busPublisher) Publish(ctx context.Context, topic string, record core.Entity) error {
	if topic == "" {
		return errors.InvalidArgument("topic is required")
	}
	if record == nil {
		return errors.InvalidArgument("record is required")
	}
	if err := p.bus.Publish(ctx, events.NewGameEvent(topic, record, nil)); err != nil {
		return errors.Wrapf(err, "failed to publish %s", topic)
	}
	return nil
}

// Nop returns a Publisher that drops every event
func Nop() Publisher { return nopPublisher{} }

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, core.Entity) error { return nil }

// SubscribeLogger logs every compendium event at info level and returns
// the subscription ids
func SubscribeLogger(bus events.EventBus) []string {
	ids := make([]string, 0, len(AllTopics))
	for _, topic := range AllTopics {
		ids = append(ids, bus.SubscribeFunc(topic, 0, func(ctx context.Context, e events.Event) error {
			attrs := []any{"topic", e.Type()}
			if src := e.Source(); src != nil {
				attrs = append(attrs, "record_type", src.GetType(), "record_id", src.GetID())
			}
			slog.InfoContext(ctx, "compendium event", attrs...)
			return nil
		}))
	}
	return ids
}
