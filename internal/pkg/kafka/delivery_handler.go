package kafka

import (
	"Agora/internal/api/config"
	"Agora/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// DeliveryHandler 消费投递批次：推送 webhook，成功后把通知标记为已投递
type DeliveryHandler struct {
	notificationRepo repository.NotificationRepo
	client           *resty.Client
	webhookURL       string
}

func NewDeliveryHandler(notificationRepo repository.NotificationRepo, cfg config.DeliveryConfig) *DeliveryHandler {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DeliveryHandler{
		notificationRepo: notificationRepo,
		client:           resty.New().SetTimeout(timeout),
		webhookURL:       cfg.WebhookURL,
	}
}

func (s *DeliveryHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("delivery consumer setup")
	return nil
}

func (s *DeliveryHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("delivery consumer cleanup")
	return nil
}

func (s *DeliveryHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("delivery consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("delivery process batch error", "err", err)
		return err
	}
	log.Info("delivery consume claim end")
	return nil
}

func (s *DeliveryHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var delivery DeliveryMessage
	if err := json.Unmarshal(msg.Value, &delivery); err != nil {
		// 坏消息重试也不会成功，记日志后吞掉
		log.ErrorContext(ctx, "unmarshal delivery message error", "offset", msg.Offset, "err", err)
		return nil
	}

	if len(delivery.Notifications) == 0 {
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(&delivery).
		Post(s.webhookURL)
	if err != nil {
		return errors.Wrap(err, "push delivery webhook")
	}
	if resp.IsError() {
		return errors.Errorf("delivery webhook status %d", resp.StatusCode())
	}

	ids := make([]uint64, 0, len(delivery.Notifications))
	for _, notificationID := range delivery.Notifications {
		ids = append(ids, notificationID)
	}
	if err = s.notificationRepo.MarkSent(ctx, ids, time.Now().Unix()); err != nil {
		return errors.Wrap(err, "mark notifications sent")
	}

	log.InfoContext(ctx, "notification batch delivered",
		"post_id", delivery.PostID, "count", len(ids))
	return nil
}
