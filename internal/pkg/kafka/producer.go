package kafka

import (
	"Agora/internal/api/config"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Producer 通知投递入队端，实现 service.DeliveryQueue
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg *config.Config) (*Producer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topic:    cfg.Delivery.Topic,
	}, nil
}

// Enqueue 同步等待 broker 确认写入，但不等待投递结果。
// 以帖子 id 作分区键，同一帖子的批次保持有序
func (p *Producer) Enqueue(ctx context.Context, postID uint64, notifications map[uint64]uint64) error {
	msg := &DeliveryMessage{
		PostID:        postID,
		Notifications: notifications,
		EnqueuedAt:    time.Now().Unix(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(postID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "notification batch enqueued",
		"post_id", postID,
		"count", len(notifications),
		"partition", partition,
		"offset", offset)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
