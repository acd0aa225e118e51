package kafka

import (
	"Agora/internal/api/config"
	"Agora/internal/model"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

type recordingNotificationRepo struct {
	sent    [][]uint64
	sentErr error
}

func (r *recordingNotificationRepo) Create(context.Context, *model.Notification) error {
	return nil
}

func (r *recordingNotificationRepo) ListByUser(context.Context, uint64, int, int) ([]*model.Notification, error) {
	return nil, nil
}

func (r *recordingNotificationRepo) CountUnread(context.Context, uint64) (int64, error) {
	return 0, nil
}

func (r *recordingNotificationRepo) MarkRead(context.Context, uint64, []uint64) error {
	return nil
}

func (r *recordingNotificationRepo) MarkSent(_ context.Context, ids []uint64, _ int64) error {
	if r.sentErr != nil {
		return r.sentErr
	}
	r.sent = append(r.sent, ids)
	return nil
}

func deliveryMsg(t *testing.T, delivery *DeliveryMessage) *sarama.ConsumerMessage {
	t.Helper()
	payload, err := json.Marshal(delivery)
	if err != nil {
		t.Fatal(err)
	}
	return &sarama.ConsumerMessage{Value: payload}
}

func TestDeliveryLogicPushesAndMarksSent(t *testing.T) {
	var received DeliveryMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("bad webhook payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := &recordingNotificationRepo{}
	handler := NewDeliveryHandler(repo, config.DeliveryConfig{WebhookURL: server.URL, TimeoutSec: 2})

	msg := deliveryMsg(t, &DeliveryMessage{
		PostID:        42,
		Notifications: map[uint64]uint64{10: 101, 20: 102},
		EnqueuedAt:    1_700_000_000,
	})
	if err := handler.logic(context.Background(), msg); err != nil {
		t.Fatalf("logic: %v", err)
	}

	if received.PostID != 42 {
		t.Errorf("webhook got post_id %d", received.PostID)
	}
	if len(repo.sent) != 1 {
		t.Fatalf("MarkSent calls = %d, want 1", len(repo.sent))
	}
	ids := append([]uint64(nil), repo.sent[0]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) != 2 || ids[0] != 101 || ids[1] != 102 {
		t.Errorf("sent ids = %v", ids)
	}
}

func TestDeliveryLogicWebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	repo := &recordingNotificationRepo{}
	handler := NewDeliveryHandler(repo, config.DeliveryConfig{WebhookURL: server.URL, TimeoutSec: 2})

	msg := deliveryMsg(t, &DeliveryMessage{PostID: 42, Notifications: map[uint64]uint64{10: 101}})
	if err := handler.logic(context.Background(), msg); err == nil {
		t.Fatal("expected error on webhook failure")
	}
	if len(repo.sent) != 0 {
		t.Error("MarkSent must not run when the push fails")
	}
}

func TestDeliveryLogicSkipsBadAndEmptyMessages(t *testing.T) {
	repo := &recordingNotificationRepo{}
	handler := NewDeliveryHandler(repo, config.DeliveryConfig{WebhookURL: "http://127.0.0.1:1", TimeoutSec: 1})

	// 坏消息不可重试，吞掉
	if err := handler.logic(context.Background(), &sarama.ConsumerMessage{Value: []byte("{broken")}); err != nil {
		t.Fatalf("bad message should be swallowed: %v", err)
	}

	// 空批次不触发任何外呼
	msg := deliveryMsg(t, &DeliveryMessage{PostID: 42})
	if err := handler.logic(context.Background(), msg); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
	if len(repo.sent) != 0 {
		t.Error("no MarkSent expected")
	}
}

var errNetwork = errors.New("network down")

func TestDeliveryLogicMarkSentFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := &recordingNotificationRepo{sentErr: errNetwork}
	handler := NewDeliveryHandler(repo, config.DeliveryConfig{WebhookURL: server.URL, TimeoutSec: 2})

	msg := deliveryMsg(t, &DeliveryMessage{PostID: 42, Notifications: map[uint64]uint64{10: 101}})
	if err := handler.logic(context.Background(), msg); err == nil {
		t.Fatal("mark-sent failure must surface for retry")
	}
}
