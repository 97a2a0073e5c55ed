package svc

import (
	"time"

	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/RayDR/YelpOut/app/api/planner/internal/config"
	"github.com/RayDR/YelpOut/app/api/planner/internal/places"
	"github.com/RayDR/YelpOut/app/api/planner/internal/session"
	"github.com/RayDR/YelpOut/app/common/consts/biz"
)

type ServiceContext struct {
	Config config.Config

	Sessions *session.Store
	Yelp     *places.Client

	KafkaWriter *kafka.Writer
	AsynqClient *asynq.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	sc := &ServiceContext{
		Config:   c,
		Sessions: session.NewStore(),
	}

	if c.Yelp.BaseUrl != "" {
		sc.Yelp = places.NewClientWithBaseURL(c.Yelp.APIKey, c.Yelp.BaseUrl)
	} else {
		sc.Yelp = places.NewClient(c.Yelp.APIKey)
	}

	if len(c.KafkaConf.Broker) > 0 {
		topic := c.KafkaConf.FeedbackTopic
		if topic == "" {
			topic = biz.FeedbackTopicKey
		}
		sc.KafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
	}

	if c.AsynqConf.Addr != "" {
		sc.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: c.AsynqConf.Addr})
	}

	return sc
}
