package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

// ActivityService 动态流只读接口，写入由帖子级联负责
type ActivityService interface {
	Recent(ctx context.Context, limit int) ([]*dto.ActivityDTO, error)
}

type activityServiceImpl struct {
	activityRepo repository.ActivityRepo
}

func NewActivityService(activityRepo repository.ActivityRepo) ActivityService {
	return &activityServiceImpl{activityRepo: activityRepo}
}

func (s *activityServiceImpl) Recent(ctx context.Context, limit int) ([]*dto.ActivityDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	activities, err := s.activityRepo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ActivityDTO, len(activities))
	for i, activity := range activities {
		item := &dto.ActivityDTO{}
		if err = copier.Copy(item, activity); err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
