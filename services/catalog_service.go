package services

import (
	"tire-shop/models"
	"tire-shop/repositories"
)

type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) ListProducts(f models.Filter) ([]models.Product, error) {
	return s.catalogRepo.Filter(f)
}

func (s *CatalogService) Brands() ([]string, error) {
	return s.catalogRepo.Brands()
}

func (s *CatalogService) GetProductByID(id int) (*models.Product, error) {
	return s.catalogRepo.ByID(id)
}
