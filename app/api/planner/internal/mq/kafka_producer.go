package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/RayDR/YelpOut/app/api/planner/internal/svc"
	"github.com/RayDR/YelpOut/app/common/consts/biz"
)

// PublishFeedbackEvent sends a complaint/feedback event to Kafka. Uses the
// shared writer in ServiceContext when available, else creates a short-lived
// writer to publish one message.
func PublishFeedbackEvent(sc *svc.ServiceContext, evt FeedbackEvent) error {
	if len(sc.Config.KafkaConf.Broker) == 0 {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	topic := sc.Config.KafkaConf.FeedbackTopic
	if topic == "" {
		topic = biz.FeedbackTopicKey
	}

	w := sc.KafkaWriter
	var closer func() error
	if w == nil {
		ww := &kafka.Writer{
			Addr:                   kafka.TCP(sc.Config.KafkaConf.Broker...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		w = ww
		closer = ww.Close
	}

	msg := kafka.Message{Key: []byte(evt.SessionID), Value: body}
	if err := w.WriteMessages(context.Background(), msg); err != nil {
		return err
	}
	if closer != nil {
		_ = closer()
	}
	return nil
}
