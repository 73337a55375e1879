// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

package eventprocessor

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/tomtom215/menuscore/internal/logging"
	"github.com/tomtom215/menuscore/internal/metrics"
	"github.com/tomtom215/menuscore/internal/models"
)

// Metadata keys set on published messages.
const (
	MetadataRequestID    = "request_id"
	MetadataEventType    = "event_type"
	feedbackEventType    = "feedback.recorded"
	DefaultFeedbackTopic = feedbackEventType
)

// Notifier is told about every stored feedback record.
type Notifier interface {
	PublishFeedback(ctx context.Context, fb *models.Feedback) error
}

// FeedbackPublisher publishes feedback events on a topic.
type FeedbackPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewFeedbackPublisher creates a publisher. An empty topic uses
// DefaultFeedbackTopic.
func NewFeedbackPublisher(publisher message.Publisher, topic string) *FeedbackPublisher {
	if topic == "" {
		topic = DefaultFeedbackTopic
	}
	return &FeedbackPublisher{publisher: publisher, topic: topic}
}

// Topic returns the topic events are published on.
func (p *FeedbackPublisher) Topic() string {
	return p.topic
}

// PublishFeedback publishes fb as a FeedbackEvent with a fresh message UUID.
func (p *FeedbackPublisher) PublishFeedback(ctx context.Context, fb *models.Feedback) error {
	payload, err := MarshalEvent(NewFeedbackEvent(fb))
	if err != nil {
		return err
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	msg.Metadata.Set(MetadataEventType, feedbackEventType)
	if reqID := logging.RequestIDFromContext(ctx); reqID != "" {
		msg.Metadata.Set(MetadataRequestID, reqID)
	}

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("publish feedback %s: %w", fb.ID, err)
	}
	metrics.RecordFeedbackPublished()
	return nil
}

// InlineNotifier applies feedback synchronously instead of publishing it.
type InlineNotifier struct {
	updater *RatingUpdater
}

// NewInlineNotifier creates a notifier that refreshes ratings in the caller.
func NewInlineNotifier(updater *RatingUpdater) *InlineNotifier {
	return &InlineNotifier{updater: updater}
}

// PublishFeedback refreshes the rated item immediately.
func (n *InlineNotifier) PublishFeedback(ctx context.Context, fb *models.Feedback) error {
	return n.updater.Apply(ctx, NewFeedbackEvent(fb))
}
