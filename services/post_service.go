package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"postable/models"
	"postable/repositories"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type PostService interface {
	CreatePost(req models.CreatePostRequest, userID string) (*models.Post, error)
	GetPost(id string) (*models.Post, error)
	GetPosts(params models.PostListParams) (*models.PostListResponse, error)
	UpdatePost(id string, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id string) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CanMutatePost is the ownership-or-admin rule: a post may be changed
// by its creator or by any admin. Pure decision over already-fetched
// data; ownership comes from the local post store, never a second
// network hop.
func CanMutatePost(ownerID, callerID string, role models.UserRole) bool {
	return ownerID == callerID || role == models.RoleAdmin
}

func (s *postService) CreatePost(req models.CreatePostRequest, userID string) (*models.Post, error) {
	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, models.DataStoreError("failed to create post", err)
	}

	return post, nil
}

func (s *postService) GetPost(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError(models.CodePostNotFound, "post not found")
		}
		return nil, models.DataStoreError("failed to load post", err)
	}
	return post, nil
}

func (s *postService) GetPosts(params models.PostListParams) (*models.PostListResponse, error) {
	page, limit := normalizePagination(params.Page, params.Limit)
	offset := (page - 1) * limit

	posts, total, err := s.postRepo.GetList(offset, limit)
	if err != nil {
		return nil, models.DataStoreError("failed to list posts", err)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	return &models.PostListResponse{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		TotalPosts:  total,
	}, nil
}

func (s *postService) UpdatePost(id string, req models.UpdatePostRequest) (*models.Post, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if len(fields) == 0 {
		return nil, models.ValidationError("no fields to update")
	}

	post, err := s.postRepo.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError(models.CodePostNotFound, "post not found")
		}
		return nil, models.DataStoreError("failed to update post", err)
	}

	return post, nil
}

func (s *postService) DeletePost(id string) error {
	if err := s.postRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFoundError(models.CodePostNotFound, "post not found")
		}
		return models.DataStoreError("failed to delete post", err)
	}
	return nil
}

// normalizePagination clamps page to >=1 and limit to [1,100], with
// defaults for missing values.
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
