package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"postable/models"
)

type fakePostRepo struct {
	posts      map[string]*models.Post
	total      int64
	lastOffset int
	lastLimit  int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*models.Post{}}
}

func (f *fakePostRepo) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetByID(id string) (*models.Post, error) {
	if p, ok := f.posts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePostRepo) GetList(offset, limit int) ([]models.Post, int64, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	return []models.Post{}, f.total, nil
}

func (f *fakePostRepo) Update(id string, fields map[string]interface{}) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if title, ok := fields["title"]; ok {
		p.Title = title.(string)
	}
	if content, ok := fields["content"]; ok {
		p.Content = content.(string)
	}
	return p, nil
}

func (f *fakePostRepo) Delete(id string) error {
	if _, ok := f.posts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.posts, id)
	return nil
}

func TestCanMutatePost(t *testing.T) {
	owner := "owner-id"
	other := "other-id"

	assert.True(t, CanMutatePost(owner, owner, models.RoleUser))
	assert.False(t, CanMutatePost(owner, other, models.RoleUser))
	assert.True(t, CanMutatePost(owner, other, models.RoleAdmin))
	assert.True(t, CanMutatePost(owner, owner, models.RoleAdmin))
}

func TestGetPostsClampsLimit(t *testing.T) {
	repo := newFakePostRepo()
	repo.total = 250
	svc := NewPostService(repo)

	resp, err := svc.GetPosts(models.PostListParams{Page: 1, Limit: 150})
	assert.NoError(t, err)
	assert.Equal(t, 100, repo.lastLimit)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, int64(250), resp.TotalPosts)
}

func TestGetPostsClampsPage(t *testing.T) {
	repo := newFakePostRepo()
	repo.total = 5
	svc := NewPostService(repo)

	for _, page := range []int{0, -3} {
		resp, err := svc.GetPosts(models.PostListParams{Page: page, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, 0, repo.lastOffset)
		assert.Equal(t, 1, resp.CurrentPage)
	}
}

func TestGetPostsDefaults(t *testing.T) {
	repo := newFakePostRepo()
	repo.total = 25
	svc := NewPostService(repo)

	resp, err := svc.GetPosts(models.PostListParams{})
	assert.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestGetPostsOffsetForPage(t *testing.T) {
	repo := newFakePostRepo()
	repo.total = 25
	svc := NewPostService(repo)

	resp, err := svc.GetPosts(models.PostListParams{Page: 3, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 20, repo.lastOffset)
	assert.Equal(t, 3, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestUpdatePostNoFields(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	_, err := svc.UpdatePost("some-id", models.UpdatePostRequest{})
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.KindValidation, appErr.Kind)
}

func TestUpdatePostNotFound(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	title := "new title"
	_, err := svc.UpdatePost("missing-id", models.UpdatePostRequest{Title: &title})
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.CodePostNotFound, appErr.Code)
}

func TestUpdatePostPartial(t *testing.T) {
	repo := newFakePostRepo()
	post := &models.Post{Title: "old", Content: "original content"}
	repo.Create(post)
	svc := NewPostService(repo)

	title := "new title"
	updated, err := svc.UpdatePost(post.ID, models.UpdatePostRequest{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "original content", updated.Content)
}

func TestDeletePostNotFound(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	err := svc.DeletePost("missing-id")
	appErr, ok := models.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, models.CodePostNotFound, appErr.Code)
}

func TestCreatePostSetsOwner(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	post, err := svc.CreatePost(models.CreatePostRequest{Title: "hello", Content: "long enough body"}, "author-id")
	assert.NoError(t, err)
	assert.Equal(t, "author-id", post.UserID)
	assert.NotEmpty(t, post.ID)
}
