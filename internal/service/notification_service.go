package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type NotificationService interface {
	// NotifyAuthor 给发帖人写一条自己新帖的广播通知
	NotifyAuthor(ctx context.Context, postID, authorID uint64) error
	// FanOutOnNewPost 给所有开启通知的用户（发帖人除外）各写一条通知，
	// 返回 用户id -> 通知id 的映射供投递入队
	FanOutOnNewPost(ctx context.Context, postID, authorID uint64) (map[uint64]uint64, error)
	ListByUser(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.NotificationDTO, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, userID uint64, ids []uint64) error
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
	userRepo         repository.UserRepo
	clock            Clock
}

func NewNotificationService(notificationRepo repository.NotificationRepo, userRepo repository.UserRepo, clock Clock) NotificationService {
	if clock == nil {
		clock = DefaultClock
	}
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		clock:            clock,
	}
}

func (s *notificationServiceImpl) NotifyAuthor(ctx context.Context, postID, authorID uint64) error {
	notification := &model.Notification{
		UserID:    authorID,
		PostID:    postID,
		Type:      consts.NotificationTypeBroadcast,
		CreatedAt: s.clock().Unix(),
	}
	return s.notificationRepo.Create(ctx, notification)
}

// FanOutOnNewPost 逐个用户落库，单个失败只记日志继续，映射里只收录成功的
func (s *notificationServiceImpl) FanOutOnNewPost(ctx context.Context, postID, authorID uint64) (map[uint64]uint64, error) {
	userIDs, err := s.userRepo.GetNotifyUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock().Unix()
	toNotify := make(map[uint64]uint64)
	for _, userID := range userIDs {
		if userID == authorID {
			continue
		}
		notification := &model.Notification{
			UserID:    userID,
			PostID:    postID,
			Type:      consts.NotificationTypePersonal,
			CreatedAt: now,
		}
		if err = s.notificationRepo.Create(ctx, notification); err != nil {
			log.ErrorContext(ctx, "create fan-out notification failed",
				"post_id", postID, "user_id", userID, "err", err)
			continue
		}
		toNotify[userID] = notification.ID
	}

	return toNotify, nil
}

func (s *notificationServiceImpl) ListByUser(ctx context.Context, userID uint64, page, pageSize int) ([]*dto.NotificationDTO, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NotificationDTO, len(notifications))
	for i, notification := range notifications {
		item := &dto.NotificationDTO{}
		if err = copier.Copy(item, notification); err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID uint64, ids []uint64) error {
	if len(ids) == 0 {
		return ErrParamInvalid
	}
	return s.notificationRepo.MarkRead(ctx, userID, ids)
}
