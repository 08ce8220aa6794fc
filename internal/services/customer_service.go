package services

import (
	"errors"
	"time"

	"jewelcms/internal/models"
	"jewelcms/internal/repositories"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) List() ([]*models.Customer, error) {
	return s.Repo.List()
}

func (s *CustomerService) Get(id string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

func (s *CustomerService) SetActive(id string, isActive bool) (*models.Customer, error) {
	if err := s.Repo.UpdateActive(id, isActive); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *CustomerService) Stats() (*models.CustomerStats, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return s.Repo.Stats(monthStart)
}
