package kafka

import (
	"context"

	"github.com/andreyxaxa/Social-Submissions/internal/dto"
)

// NopEventProducer is used when event publishing is disabled.
type NopEventProducer struct{}

func NewNopEventProducer() NopEventProducer {
	return NopEventProducer{}
}

func (NopEventProducer) SendEvent(context.Context, dto.SubmissionEvent) error { return nil }

func (NopEventProducer) Close() error { return nil }
