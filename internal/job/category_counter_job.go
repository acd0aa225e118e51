package job

import (
	"Agora/internal/pkg/logger"
	"Agora/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CategoryCounterJob 分类帖子数对账。计数平时靠建帖时原子自增维护，
// 删帖和人工修数会让它漂移，这里每天按可见帖子重算一次
type CategoryCounterJob struct {
	categoryRepo repository.CategoryRepo
	postRepo     repository.PostRepo
}

func NewCategoryCounterJob(categoryRepo repository.CategoryRepo, postRepo repository.PostRepo) *CategoryCounterJob {
	return &CategoryCounterJob{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
	}
}

func (s *CategoryCounterJob) Run() {
	traceID := "job-category-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list categories error", "err", err)
		return
	}

	fixed := 0
	for _, category := range categories {
		count, err := s.postRepo.CountVisibleByCategory(ctx, category.ID)
		if err != nil {
			log.ErrorContext(ctx, "count posts error", "category_id", category.ID, "err", err)
			continue
		}
		if count == category.NumberPosts {
			continue
		}

		log.WarnContext(ctx, "category counter drift",
			"category_id", category.ID,
			"stored", category.NumberPosts,
			"actual", count)
		if err = s.categoryRepo.SetPostCount(ctx, category.ID, count); err != nil {
			log.ErrorContext(ctx, "reset category counter error", "category_id", category.ID, "err", err)
			continue
		}
		fixed++
	}

	log.InfoContext(ctx, "reconcile category counters success",
		"category_count", len(categories),
		"fixed_count", fixed)
}
