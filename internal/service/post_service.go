package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/repository"
	"context"
	log "log/slog"
	"strings"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID uint64, clientAddr string, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, viewerID uint64, page, pageSize int) (*dto.PostListDTO, error)
	EditPost(ctx context.Context, editorID uint64, moderator bool, postID uint64, postDTO *dto.PostBaseDTO) error
	DeletePost(ctx context.Context, actorID uint64, moderator bool, postID uint64) error
	GetBounty(ctx context.Context, postID uint64) (*dto.BountyDTO, error)
	GetHistory(ctx context.Context, actorID uint64, moderator bool, postID uint64) ([]*dto.PostHistoryDTO, error)
	Subscribe(ctx context.Context, userID, postID uint64) error
	Unsubscribe(ctx context.Context, userID, postID uint64) error
}

type postServiceImpl struct {
	postRepo        repository.PostRepo
	categoryRepo    repository.CategoryRepo
	activityRepo    repository.ActivityRepo
	historyRepo     repository.PostHistoryRepo
	subscriberRepo  repository.SubscriberRepo
	notificationSvc NotificationService
	cache           PostCache
	queue           DeliveryQueue
	clock           Clock
}

func NewPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	activityRepo repository.ActivityRepo,
	historyRepo repository.PostHistoryRepo,
	subscriberRepo repository.SubscriberRepo,
	notificationSvc NotificationService,
	cache PostCache,
	queue DeliveryQueue,
	clock Clock,
) PostService {
	if clock == nil {
		clock = DefaultClock
	}
	return &postServiceImpl{
		postRepo:        postRepo,
		categoryRepo:    categoryRepo,
		activityRepo:    activityRepo,
		historyRepo:     historyRepo,
		subscriberRepo:  subscriberRepo,
		notificationSvc: notificationSvc,
		cache:           cache,
		queue:           queue,
		clock:           clock,
	}
}

// CreatePost 创建帖子。插入失败则整个操作失败，级联一步都不执行；
// 插入成功后各级联步骤相互独立，单步失败只记日志不回滚
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uint64, clientAddr string, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if strings.TrimSpace(postDTO.Title) == "" {
		return nil, ErrTitleRequired
	}

	category, err := s.categoryRepo.GetCategory(ctx, postDTO.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryInvalid
	}

	post := &model.Post{}
	if err = copier.Copy(post, postDTO); err != nil {
		return nil, err
	}
	post.UserID = authorID
	applyCreateDefaults(post)

	now := s.clock().Unix()
	post.CreatedAt = now
	post.ModifiedAt = now

	// 来源浏览记录与帖子同一事务落库，同一会话不会重复计浏览
	view := &model.PostView{IPAddress: clientAddr, CreatedAt: now}
	if err = s.postRepo.CreatePost(ctx, post, view); err != nil {
		return nil, err
	}

	s.afterCreate(ctx, post)
	s.afterSave(ctx, post, authorID)

	post.Category = *category
	return s.toPostDTO(ctx, post, authorID)
}

// applyCreateDefaults 创建前兜底默认值，标题存在而 slug 缺失时派生 slug。
// slug 唯一性由数据库唯一索引兜底，这里不做冲突处理
func applyCreateDefaults(post *model.Post) {
	post.Deleted = false
	post.NumberViews = 0
	post.NumberReplies = 0
	post.Sticked = false
	post.AcceptedAnswer = false
	post.Locked = false
	post.Status = consts.PostStatusActive

	if post.Title != "" && post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}
}

// afterCreate 创建成功后的级联。主键无效说明插入没有生效，全部跳过，
// 不允许出现"只执行了一半副作用"的状态。步骤顺序有意义：
// 动态与作者自身通知必须先于入队存在，投递侧依赖它们
func (s *postServiceImpl) afterCreate(ctx context.Context, post *model.Post) {
	if post.ID == 0 {
		log.WarnContext(ctx, "post id not assigned, skip after-create cascade")
		return
	}

	now := s.clock().Unix()

	activity := &model.Activity{
		UserID:    post.UserID,
		PostID:    post.ID,
		Type:      consts.ActivityTypeNewPost,
		CreatedAt: now,
	}
	if err := s.activityRepo.Record(ctx, activity); err != nil {
		log.ErrorContext(ctx, "record new-post activity failed", "post_id", post.ID, "err", err)
	}

	// 作者会收到一条自己新帖的广播通知，历史行为，保留
	if err := s.notificationSvc.NotifyAuthor(ctx, post.ID, post.UserID); err != nil {
		log.ErrorContext(ctx, "create author notification failed", "post_id", post.ID, "err", err)
	}

	toNotify, err := s.notificationSvc.FanOutOnNewPost(ctx, post.ID, post.UserID)
	if err != nil {
		log.ErrorContext(ctx, "fan out notifications failed", "post_id", post.ID, "err", err)
	}

	if err = s.categoryRepo.IncrementPostCount(ctx, post.CategoryID); err != nil {
		log.ErrorContext(ctx, "increment category post count failed",
			"category_id", post.CategoryID, "err", err)
	}

	// 入队即返回，投递失败不影响已提交的帖子与通知
	if len(toNotify) > 0 {
		if err = s.queue.Enqueue(ctx, post.ID, toNotify); err != nil {
			log.WarnContext(ctx, "enqueue notification delivery failed", "post_id", post.ID, "err", err)
		}
	}
}

// afterSave 每次创建或编辑后执行：清视图缓存，追加内容快照。
// 快照归属当前操作人，版主代编辑时记录的是版主
func (s *postServiceImpl) afterSave(ctx context.Context, post *model.Post, actorID uint64) {
	if err := s.cache.InvalidatePost(ctx, post.ID); err != nil {
		log.WarnContext(ctx, "invalidate post cache failed", "post_id", post.ID, "err", err)
	}

	history := &model.PostHistory{
		PostID:    post.ID,
		UserID:    actorID,
		Content:   post.Content,
		CreatedAt: s.clock().Unix(),
	}
	if err := s.historyRepo.Append(ctx, history); err != nil {
		log.ErrorContext(ctx, "append post history failed", "post_id", post.ID, "err", err)
	}
}

func (s *postServiceImpl) GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toPostDTO(ctx, post, viewerID)
}

func (s *postServiceImpl) ListPosts(ctx context.Context, viewerID uint64, page, pageSize int) (*dto.PostListDTO, error) {
	posts, err := s.postRepo.ListVisible(ctx, pageSize+1, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(posts) > pageSize {
		hasMore = true
		posts = posts[:pageSize]
	}

	list := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := s.toPostDTO(ctx, post, viewerID)
		if err != nil {
			return nil, err
		}
		list[i] = item
	}

	return &dto.PostListDTO{List: list, HasMore: hasMore}, nil
}

// EditPost 编辑帖子。锁帖只有版主能动，编辑时间戳前移并触发快照与缓存失效
func (s *postServiceImpl) EditPost(ctx context.Context, editorID uint64, moderator bool, postID uint64, postDTO *dto.PostBaseDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !moderator && post.UserID != editorID {
		return ForbiddenError
	}
	if post.Locked && !moderator {
		return ErrPostLocked
	}

	post.Title = postDTO.Title
	post.Content = postDTO.Content
	if postDTO.CategoryID != 0 && postDTO.CategoryID != post.CategoryID {
		category, err := s.categoryRepo.GetCategory(ctx, postDTO.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryInvalid
		}
		post.CategoryID = postDTO.CategoryID
	}

	now := s.clock().Unix()
	post.EditedAt = now
	post.ModifiedAt = now

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	s.afterSave(ctx, post, editorID)
	return nil
}

// DeletePost 逻辑删除。不写快照，只清缓存
func (s *postServiceImpl) DeletePost(ctx context.Context, actorID uint64, moderator bool, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !moderator && post.UserID != actorID {
		return ForbiddenError
	}

	if err = s.postRepo.SoftDelete(ctx, postID); err != nil {
		return err
	}

	if err = s.cache.InvalidatePost(ctx, postID); err != nil {
		log.WarnContext(ctx, "invalidate post cache failed", "post_id", postID, "err", err)
	}
	return nil
}

func (s *postServiceImpl) GetBounty(ctx context.Context, postID uint64) (*dto.BountyDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	bounty := ComputeBounty(post, s.clock())
	if bounty == nil {
		return &dto.BountyDTO{Eligible: false}, nil
	}
	return &dto.BountyDTO{Eligible: true, Type: bounty.Type, Value: bounty.Value}, nil
}

// GetHistory 内容快照只对作者本人和版主可见
func (s *postServiceImpl) GetHistory(ctx context.Context, actorID uint64, moderator bool, postID uint64) ([]*dto.PostHistoryDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !moderator && post.UserID != actorID {
		return nil, ForbiddenError
	}

	histories, err := s.historyRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PostHistoryDTO, len(histories))
	for i, history := range histories {
		item := &dto.PostHistoryDTO{}
		if err = copier.Copy(item, history); err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func (s *postServiceImpl) Subscribe(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	subscriber := &model.PostSubscriber{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: s.clock().Unix(),
	}
	return s.subscriberRepo.Subscribe(ctx, subscriber)
}

func (s *postServiceImpl) Unsubscribe(ctx context.Context, userID, postID uint64) error {
	return s.subscriberRepo.Unsubscribe(ctx, postID, userID)
}

// toPostDTO 组装对外视图：人性化时间、浏览量缩写、订阅状态与悬赏
func (s *postServiceImpl) toPostDTO(ctx context.Context, post *model.Post, viewerID uint64) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.CategoryName = post.Category.Name

	now := s.clock()
	out.HumanNumberViews = HumanViewCount(post.NumberViews)
	out.HumanCreatedAt = HumanRelativeTime(post.CreatedAt, now)
	if post.ModifiedAt != post.CreatedAt {
		out.HumanModifiedAt = HumanRelativeTime(post.ModifiedAt, now)
	}
	if post.EditedAt != 0 {
		out.HumanEditedAt = HumanRelativeTime(post.EditedAt, now)
	}

	if bounty := ComputeBounty(post, now); bounty != nil {
		out.Bounty = &dto.BountyDTO{Eligible: true, Type: bounty.Type, Value: bounty.Value}
	}

	if viewerID > 0 {
		subscribed, err := s.subscriberRepo.Exists(ctx, post.ID, viewerID)
		if err != nil {
			log.WarnContext(ctx, "check subscription failed", "post_id", post.ID, "err", err)
		} else {
			out.Subscribed = subscribed
		}
	}

	return out, nil
}
