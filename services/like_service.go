package services

import (
	"github.com/google/uuid"

	"postable/models"
	"postable/repositories"
)

type LikeService interface {
	AddLike(postID, userID string) (*models.Like, error)
	RemoveLike(postID, userID string) error
}

type likeService struct {
	likeRepo repositories.LikeRepository
}

func NewLikeService(likeRepo repositories.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (s *likeService) AddLike(postID, userID string) (*models.Like, error) {
	if err := validateLikeIDs(postID, userID); err != nil {
		return nil, err
	}

	like := &models.Like{PostID: postID, UserID: userID}
	if err := s.likeRepo.Create(like); err != nil {
		return nil, err
	}

	return like, nil
}

func (s *likeService) RemoveLike(postID, userID string) error {
	if err := validateLikeIDs(postID, userID); err != nil {
		return err
	}

	return s.likeRepo.Delete(postID, userID)
}

// validateLikeIDs rejects syntactically invalid IDs before any store
// work happens.
func validateLikeIDs(postID, userID string) error {
	if postID == "" || userID == "" {
		return models.ValidationError("postId and userId are required")
	}
	if _, err := uuid.Parse(postID); err != nil {
		return models.ValidationError("postId must be a valid UUID")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return models.ValidationError("userId must be a valid UUID")
	}
	return nil
}
