package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	BorrowEventsTopic    = "borrow-events"
	LendingConsumerGroup = "lending"
)

const (
	EventBorrowed = "BORROWED"
	EventReturned = "RETURNED"
)

// BorrowEvent is the wire payload published on every borrow/return.
type BorrowEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	BorrowUid string    `json:"borrowUid"`
	BookUid   string    `json:"bookUid"`
	EventType string    `json:"eventType"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume blocks, re-joining the group on rebalance until ctx is done.
func Consume(ctx context.Context, cg sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topic string, log *zap.Logger) {
	for {
		if err := cg.Consume(ctx, []string{topic}, h); err != nil {
			log.Error("consumer group consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
