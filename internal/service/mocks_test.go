package service

import (
	"context"

	"socialnet/internal/model"
)

// Mock repositories for unit tests. Each method delegates to an overridable
// function field, so individual tests control exactly what the storage layer
// returns without touching a real database. Unset fields fall back to a
// sensible zero behavior.

type mockUserRepository struct {
	createFn           func(ctx context.Context, user *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	existsByEmailFn    func(ctx context.Context, email string) (bool, error)
	searchByNameFn     func(ctx context.Context, name string) ([]model.User, error)
	updateProfileFn    func(ctx context.Context, id int64, username, email, fullName string) (*model.User, error)

	createCalls []*model.User
	searchCalls []string
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	m.createCalls = append(m.createCalls, user)
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) SearchByName(ctx context.Context, name string) ([]model.User, error) {
	m.searchCalls = append(m.searchCalls, name)
	if m.searchByNameFn != nil {
		return m.searchByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id int64, username, email, fullName string) (*model.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, id, username, email, fullName)
	}
	return nil, model.ErrUserNotFound
}

type mockFollowRepository struct {
	createFn       func(ctx context.Context, followerID, followeeID int64) (*model.Follow, error)
	deleteFn       func(ctx context.Context, followerID, followeeID int64) (*model.Follow, error)
	getFollowingFn func(ctx context.Context, userID int64) ([]model.Follow, error)
	getFollowersFn func(ctx context.Context, userID int64) ([]model.Follow, error)
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	if m.createFn != nil {
		return m.createFn(ctx, followerID, followeeID)
	}
	return &model.Follow{FollowerID: followerID, FolloweeID: followeeID}, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, followeeID)
	}
	return nil, nil
}

func (m *mockFollowRepository) GetFollowing(ctx context.Context, userID int64) ([]model.Follow, error) {
	if m.getFollowingFn != nil {
		return m.getFollowingFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFollowRepository) GetFollowers(ctx context.Context, userID int64) ([]model.Follow, error) {
	if m.getFollowersFn != nil {
		return m.getFollowersFn(ctx, userID)
	}
	return nil, nil
}

type mockPostRepository struct {
	createFn       func(ctx context.Context, userID int64, content string) (*model.Post, error)
	getByIDFn      func(ctx context.Context, postID int64) (*model.Post, error)
	getByUserIDFn  func(ctx context.Context, userID int64) ([]model.Post, error)
	getByAuthorsFn func(ctx context.Context, authorIDs []int64) ([]model.Post, error)
	updateFn       func(ctx context.Context, postID, userID int64, content string) (*model.Post, error)
	deleteFn       func(ctx context.Context, postID, userID int64) (*model.Post, error)
	deleteAnyFn    func(ctx context.Context, postID int64) (*model.Post, error)
	searchFn       func(ctx context.Context, content string) ([]model.Post, error)
	existsFn       func(ctx context.Context, postID int64) (bool, error)

	getByAuthorsCalls [][]int64
	deleteCalls       int
	deleteAnyCalls    int
}

func (m *mockPostRepository) Create(ctx context.Context, userID int64, content string) (*model.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, content)
	}
	return &model.Post{UserID: userID, Content: content}, nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Post, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPostRepository) GetByAuthors(ctx context.Context, authorIDs []int64) ([]model.Post, error) {
	m.getByAuthorsCalls = append(m.getByAuthorsCalls, authorIDs)
	if m.getByAuthorsFn != nil {
		return m.getByAuthorsFn(ctx, authorIDs)
	}
	return nil, nil
}

func (m *mockPostRepository) Update(ctx context.Context, postID, userID int64, content string) (*model.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, postID, userID, content)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Delete(ctx context.Context, postID, userID int64) (*model.Post, error) {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, userID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) DeleteAny(ctx context.Context, postID int64) (*model.Post, error) {
	m.deleteAnyCalls++
	if m.deleteAnyFn != nil {
		return m.deleteAnyFn(ctx, postID)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) Search(ctx context.Context, content string) ([]model.Post, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, content)
	}
	return nil, nil
}

func (m *mockPostRepository) Exists(ctx context.Context, postID int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, postID)
	}
	return true, nil
}

type mockCommentRepository struct {
	createFn      func(ctx context.Context, postID, userID int64, content string) (*model.Comment, error)
	getByIDFn     func(ctx context.Context, commentID int64) (*model.Comment, error)
	getByPostIDFn func(ctx context.Context, postID int64) ([]model.Comment, error)
	updateFn      func(ctx context.Context, commentID, userID int64, content string) (*model.Comment, error)
	deleteFn      func(ctx context.Context, commentID, userID int64) (*model.Comment, error)
	deleteAnyFn   func(ctx context.Context, commentID int64) (*model.Comment, error)

	createCalls    int
	deleteCalls    int
	deleteAnyCalls int
}

func (m *mockCommentRepository) Create(ctx context.Context, postID, userID int64, content string) (*model.Comment, error) {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, postID, userID, content)
	}
	return &model.Comment{PostID: postID, UserID: userID, Content: content}, nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID int64) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, commentID)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) GetByPostID(ctx context.Context, postID int64) ([]model.Comment, error) {
	if m.getByPostIDFn != nil {
		return m.getByPostIDFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, commentID, userID int64, content string) (*model.Comment, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, commentID, userID, content)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID, userID int64) (*model.Comment, error) {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, commentID, userID)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentRepository) DeleteAny(ctx context.Context, commentID int64) (*model.Comment, error) {
	m.deleteAnyCalls++
	if m.deleteAnyFn != nil {
		return m.deleteAnyFn(ctx, commentID)
	}
	return nil, model.ErrCommentNotFound
}

type mockLikeRepository struct {
	createFn      func(ctx context.Context, postID, userID int64) (*model.Like, error)
	deleteFn      func(ctx context.Context, postID, userID int64) (*model.Like, error)
	getByPostIDFn func(ctx context.Context, postID int64) ([]model.Like, error)
	getByUserIDFn func(ctx context.Context, userID int64) ([]model.Like, error)
}

func (m *mockLikeRepository) Create(ctx context.Context, postID, userID int64) (*model.Like, error) {
	if m.createFn != nil {
		return m.createFn(ctx, postID, userID)
	}
	return &model.Like{PostID: postID, UserID: userID}, nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, postID, userID int64) (*model.Like, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, postID, userID)
	}
	return nil, nil
}

func (m *mockLikeRepository) GetByPostID(ctx context.Context, postID int64) ([]model.Like, error) {
	if m.getByPostIDFn != nil {
		return m.getByPostIDFn(ctx, postID)
	}
	return nil, nil
}

func (m *mockLikeRepository) GetByUserID(ctx context.Context, userID int64) ([]model.Like, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

// fakeFollowRepository is a map-backed edge set used by the graph round-trip
// tests. Unlike the fn-field mocks it carries real state, so insert/delete
// sequencing and derived counts can be checked end to end.
type fakeFollowRepository struct {
	nextID int64
	edges  map[[2]int64]model.Follow
}

func newFakeFollowRepository() *fakeFollowRepository {
	return &fakeFollowRepository{edges: make(map[[2]int64]model.Follow)}
}

func (f *fakeFollowRepository) Create(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	key := [2]int64{followerID, followeeID}
	if _, ok := f.edges[key]; ok {
		return nil, model.ErrAlreadyFollowing
	}
	f.nextID++
	follow := model.Follow{ID: f.nextID, FollowerID: followerID, FolloweeID: followeeID}
	f.edges[key] = follow
	return &follow, nil
}

func (f *fakeFollowRepository) Delete(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	key := [2]int64{followerID, followeeID}
	follow, ok := f.edges[key]
	if !ok {
		return nil, nil
	}
	delete(f.edges, key)
	return &follow, nil
}

func (f *fakeFollowRepository) GetFollowing(ctx context.Context, userID int64) ([]model.Follow, error) {
	var out []model.Follow
	for _, e := range f.edges {
		if e.FollowerID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeFollowRepository) GetFollowers(ctx context.Context, userID int64) ([]model.Follow, error) {
	var out []model.Follow
	for _, e := range f.edges {
		if e.FolloweeID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
