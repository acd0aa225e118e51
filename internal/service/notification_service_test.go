package service

import (
	"Agora/internal/pkg/consts"
	"context"
	"testing"
	"time"
)

func newNotificationFixture() (NotificationService, *fakeNotificationRepo, *fakeUserRepo) {
	notificationRepo := newFakeNotificationRepo()
	userRepo := newFakeUserRepo()
	clock := func() time.Time { return time.Unix(1_700_000_000, 0) }
	return NewNotificationService(notificationRepo, userRepo, clock), notificationRepo, userRepo
}

func TestFanOutExcludesAuthor(t *testing.T) {
	svc, notificationRepo, userRepo := newNotificationFixture()
	userRepo.notifyUserIDs = []uint64{5, 10, 15}

	toNotify, err := svc.FanOutOnNewPost(context.Background(), 77, 10)
	if err != nil {
		t.Fatalf("FanOutOnNewPost: %v", err)
	}

	if len(toNotify) != 2 {
		t.Fatalf("toNotify = %v", toNotify)
	}
	if _, ok := toNotify[10]; ok {
		t.Error("author must be excluded")
	}
	for _, notification := range notificationRepo.created {
		if notification.Type != consts.NotificationTypePersonal {
			t.Errorf("type = %q", notification.Type)
		}
		if notification.PostID != 77 {
			t.Errorf("post_id = %d", notification.PostID)
		}
	}
}

func TestFanOutMapsUserToNotificationID(t *testing.T) {
	svc, notificationRepo, userRepo := newNotificationFixture()
	userRepo.notifyUserIDs = []uint64{5, 15}

	toNotify, err := svc.FanOutOnNewPost(context.Background(), 77, 10)
	if err != nil {
		t.Fatalf("FanOutOnNewPost: %v", err)
	}

	for _, notification := range notificationRepo.created {
		if toNotify[notification.UserID] != notification.ID {
			t.Errorf("map[%d] = %d, want %d", notification.UserID, toNotify[notification.UserID], notification.ID)
		}
	}
}

func TestFanOutToleratesPartialFailure(t *testing.T) {
	svc, notificationRepo, userRepo := newNotificationFixture()
	userRepo.notifyUserIDs = []uint64{5, 15, 25}
	notificationRepo.createErr = func(userID uint64) error {
		if userID == 15 {
			return errBoom
		}
		return nil
	}

	toNotify, err := svc.FanOutOnNewPost(context.Background(), 77, 10)
	if err != nil {
		t.Fatalf("partial failure must not fail the fan-out: %v", err)
	}
	if len(toNotify) != 2 {
		t.Fatalf("toNotify = %v", toNotify)
	}
	if _, ok := toNotify[15]; ok {
		t.Error("failed user must not be in the map")
	}
}

func TestNotifyAuthorType(t *testing.T) {
	svc, notificationRepo, _ := newNotificationFixture()

	if err := svc.NotifyAuthor(context.Background(), 77, 10); err != nil {
		t.Fatalf("NotifyAuthor: %v", err)
	}
	if len(notificationRepo.created) != 1 {
		t.Fatalf("created = %d", len(notificationRepo.created))
	}
	notification := notificationRepo.created[0]
	if notification.UserID != 10 || notification.Type != consts.NotificationTypeBroadcast {
		t.Errorf("notification = %+v", notification)
	}
}

func TestMarkReadRequiresIDs(t *testing.T) {
	svc, notificationRepo, _ := newNotificationFixture()

	if err := svc.MarkRead(context.Background(), 10, nil); err != ErrParamInvalid {
		t.Fatalf("err = %v, want ErrParamInvalid", err)
	}
	if len(notificationRepo.marked) != 0 {
		t.Error("repo should not be called")
	}
}

func TestUnreadCount(t *testing.T) {
	svc, _, userRepo := newNotificationFixture()
	userRepo.notifyUserIDs = []uint64{5}

	if _, err := svc.FanOutOnNewPost(context.Background(), 77, 10); err != nil {
		t.Fatalf("FanOutOnNewPost: %v", err)
	}

	count, err := svc.UnreadCount(context.Background(), 5)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
