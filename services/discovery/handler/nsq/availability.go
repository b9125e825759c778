package nsq

import (
	"context"

	"github.com/rdwiputra/jasaku/internal/pkg/constants"
	"github.com/rdwiputra/jasaku/internal/pkg/logger"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	nsqpkg "github.com/rdwiputra/jasaku/internal/pkg/nsq"
)

// Applier converges local state from a consumed availability event
type Applier interface {
	ApplyAvailabilityEvent(ctx context.Context, event models.AvailabilityEvent) error
}

// AvailabilityHandler applies availability events published by other
// instances so every node converges on the same pool.
type AvailabilityHandler struct {
	applier  Applier
	consumer *nsqpkg.Consumer
}

// NewAvailabilityHandler creates a new availability event handler
func NewAvailabilityHandler(applier Applier) *AvailabilityHandler {
	return &AvailabilityHandler{applier: applier}
}

// Start connects the consumer to the NSQ daemon
func (h *AvailabilityHandler) Start(nsqAddress, channel string) error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicAvailabilityUpdates,
		channel,
		nsqAddress,
		h.handleMessage,
	)
	if err != nil {
		return err
	}

	h.consumer = consumer
	return nil
}

func (h *AvailabilityHandler) handleMessage(message []byte) error {
	var event models.AvailabilityEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.Error("invalid availability event", logger.Err(err))
		// Malformed payloads are dropped, not requeued
		return nil
	}

	logger.Info("applying availability event",
		logger.String("provider_id", event.ProviderID),
		logger.Bool("available", event.Available))

	return h.applier.ApplyAvailabilityEvent(context.Background(), event)
}

// Stop gracefully stops the consumer
func (h *AvailabilityHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
