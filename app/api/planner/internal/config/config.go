package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	Yelp YelpConf

	KafkaConf KafkaConf

	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf

	Smtp SmtpConf
}

type YelpConf struct {
	APIKey  string
	BaseUrl string `json:",optional"`
}

type KafkaConf struct {
	Broker        []string `json:",optional"`
	FeedbackTopic string   `json:",optional"`
}

type AsynqRedisConf struct {
	Addr string `json:",optional"`
}

type AsynqServerConf struct {
	Concurrency int            `json:",default=4"`
	Queues      map[string]int `json:",optional"`
}

type SmtpConf struct {
	Host     string `json:",optional"`
	Port     int    `json:",default=587"`
	User     string `json:",optional"`
	Password string `json:",optional"`
	From     string `json:",optional"`
}
