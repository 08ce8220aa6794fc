package services

import (
	"database/sql"
	"errors"

	"jewelcms/internal/models"
	"jewelcms/internal/repositories"
	"jewelcms/internal/utils"
)

var ErrWishlistNotFound = errors.New("wishlist not found")

type WishlistService struct {
	Repo *repositories.WishlistRepository
}

func NewWishlistService(repo *repositories.WishlistRepository) *WishlistService {
	return &WishlistService{Repo: repo}
}

func (s *WishlistService) List() ([]models.Wishlist, error) {
	wishlists, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	if wishlists == nil {
		wishlists = []models.Wishlist{}
	}
	return wishlists, nil
}

func (s *WishlistService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// RegenerateShareToken invalidates the old share link and returns the
// new token.
func (s *WishlistService) RegenerateShareToken(id string) (string, error) {
	token, err := utils.NewShareToken(16)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateShareToken(id, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrWishlistNotFound
		}
		return "", err
	}
	return token, nil
}
