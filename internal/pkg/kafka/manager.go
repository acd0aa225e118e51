package kafka

import (
	"Agora/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理通知投递消费者
type ConsumerManager struct {
	deliveryConsumer sarama.ConsumerGroup
	deliveryHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, deliveryHandler sarama.ConsumerGroupHandler) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	deliveryConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Delivery.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		deliveryConsumer: deliveryConsumer,
		deliveryHandler:  deliveryHandler,
	}, nil
}

// Start 阻塞运行直到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.Delivery.Topic
		log.Info("Delivery consumer started", "topic", topic)
		for {
			if err := m.deliveryConsumer.Consume(ctx, []string{topic}, m.deliveryHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.deliveryConsumer.Close(); err != nil {
		log.Error("Failed to close delivery consumer", "err", err)
	}

	return nil
}
