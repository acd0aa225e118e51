package service

import (
	"Agora/internal/model"
	"context"
	"errors"
)

// 测试替身。只记录调用，行为通过可选的函数字段覆盖

type fakePostRepo struct {
	nextID     uint64
	createErr  error
	posts      map[uint64]*model.Post
	views      []*model.PostView
	updated    []*model.Post
	deletedIDs []uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, posts: map[uint64]*model.Post{}}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post, view *model.PostView) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.nextID > 0 {
		post.ID = f.nextID
		f.nextID++
	}
	view.PostID = post.ID
	f.posts[post.ID] = post
	f.views = append(f.views, view)
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok || post.Deleted {
		return nil, nil
	}
	return post, nil
}

func (f *fakePostRepo) ListVisible(_ context.Context, limit, offset int) ([]*model.Post, error) {
	out := make([]*model.Post, 0)
	for id := uint64(1); id < f.nextID; id++ {
		if post, ok := f.posts[id]; ok && !post.Deleted {
			out = append(out, post)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostRepo) CountVisibleByCategory(_ context.Context, categoryID uint64) (int64, error) {
	var n int64
	for _, post := range f.posts {
		if !post.Deleted && post.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	f.updated = append(f.updated, post)
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) SoftDelete(_ context.Context, id uint64) error {
	if post, ok := f.posts[id]; ok {
		post.Deleted = true
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeCategoryRepo struct {
	categories    map[uint64]*model.Category
	incremented   []uint64
	incrementErr  error
	setPostCounts map[uint64]int64
}

func newFakeCategoryRepo(ids ...uint64) *fakeCategoryRepo {
	f := &fakeCategoryRepo{
		categories:    map[uint64]*model.Category{},
		setPostCounts: map[uint64]int64{},
	}
	for _, id := range ids {
		f.categories[id] = &model.Category{ID: id, Name: "分类"}
	}
	return f
}

func (f *fakeCategoryRepo) GetCategory(_ context.Context, id uint64) (*model.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) ListCategories(_ context.Context) ([]*model.Category, error) {
	out := make([]*model.Category, 0, len(f.categories))
	for _, category := range f.categories {
		out = append(out, category)
	}
	return out, nil
}

func (f *fakeCategoryRepo) IncrementPostCount(_ context.Context, id uint64) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incremented = append(f.incremented, id)
	return nil
}

func (f *fakeCategoryRepo) SetPostCount(_ context.Context, id uint64, count int64) error {
	f.setPostCounts[id] = count
	return nil
}

type fakeActivityRepo struct {
	recorded  []*model.Activity
	recordErr error
}

func (f *fakeActivityRepo) Record(_ context.Context, activity *model.Activity) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, activity)
	return nil
}

func (f *fakeActivityRepo) Recent(_ context.Context, limit int) ([]*model.Activity, error) {
	if limit > len(f.recorded) {
		limit = len(f.recorded)
	}
	return f.recorded[:limit], nil
}

type fakeHistoryRepo struct {
	appended []*model.PostHistory
}

func (f *fakeHistoryRepo) Append(_ context.Context, history *model.PostHistory) error {
	f.appended = append(f.appended, history)
	return nil
}

func (f *fakeHistoryRepo) ListByPost(_ context.Context, postID uint64) ([]*model.PostHistory, error) {
	out := make([]*model.PostHistory, 0)
	for _, history := range f.appended {
		if history.PostID == postID {
			out = append(out, history)
		}
	}
	return out, nil
}

type fakeSubscriberRepo struct {
	subscribed map[[2]uint64]bool
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{subscribed: map[[2]uint64]bool{}}
}

func (f *fakeSubscriberRepo) Exists(_ context.Context, postID, userID uint64) (bool, error) {
	return f.subscribed[[2]uint64{postID, userID}], nil
}

func (f *fakeSubscriberRepo) Subscribe(_ context.Context, subscriber *model.PostSubscriber) error {
	f.subscribed[[2]uint64{subscriber.PostID, subscriber.UserID}] = true
	return nil
}

func (f *fakeSubscriberRepo) Unsubscribe(_ context.Context, postID, userID uint64) error {
	delete(f.subscribed, [2]uint64{postID, userID})
	return nil
}

type fakeNotificationRepo struct {
	nextID    uint64
	created   []*model.Notification
	createErr func(userID uint64) error
	marked    [][]uint64
	sent      [][]uint64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if f.createErr != nil {
		if err := f.createErr(notification.UserID); err != nil {
			return err
		}
	}
	notification.ID = f.nextID
	f.nextID++
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID uint64, limit, offset int) ([]*model.Notification, error) {
	out := make([]*model.Notification, 0)
	for _, notification := range f.created {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID uint64) (int64, error) {
	var n int64
	for _, notification := range f.created {
		if notification.UserID == userID && !notification.IsRead {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, userID uint64, ids []uint64) error {
	f.marked = append(f.marked, ids)
	for _, notification := range f.created {
		for _, id := range ids {
			if notification.ID == id && notification.UserID == userID {
				notification.IsRead = true
			}
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkSent(_ context.Context, ids []uint64, sentAt int64) error {
	f.sent = append(f.sent, ids)
	for _, notification := range f.created {
		for _, id := range ids {
			if notification.ID == id {
				notification.SentAt = sentAt
			}
		}
	}
	return nil
}

type fakeUserRepo struct {
	users         map[uint64]*model.User
	notifyUserIDs []uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint64]*model.User{}}
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(f.users) + 1)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetNotifyUserIDs(_ context.Context) ([]uint64, error) {
	return f.notifyUserIDs, nil
}

// fakeCache 记录失效的帖子 id，可注入错误
type fakeCache struct {
	invalidated []uint64
	err         error
}

func (f *fakeCache) InvalidatePost(_ context.Context, postID uint64) error {
	if f.err != nil {
		return f.err
	}
	f.invalidated = append(f.invalidated, postID)
	return nil
}

// fakeQueue 记录入队的批次
type fakeQueue struct {
	enqueued []map[uint64]uint64
	postIDs  []uint64
	err      error
}

func (f *fakeQueue) Enqueue(_ context.Context, postID uint64, notifications map[uint64]uint64) error {
	if f.err != nil {
		return f.err
	}
	f.postIDs = append(f.postIDs, postID)
	f.enqueued = append(f.enqueued, notifications)
	return nil
}

var errBoom = errors.New("boom")
