package services

import (
	"strings"

	"boutic/constants"
	"boutic/models"
	"boutic/storage"
)

// ProductService expose le catalogue produits en lecture seule.
type ProductService struct {
	store *storage.Store
}

func NewProductService(store *storage.Store) *ProductService {
	return &ProductService{store: store}
}

// GetAll charge le catalogue complet.
func (s *ProductService) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := s.store.Read(constants.CollectionProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID cherche un produit par identifiant exact, espaces épurés.
func (s *ProductService) FindByID(products []models.Product, id string) (models.Product, bool) {
	want := strings.TrimSpace(id)
	for _, p := range products {
		if strings.TrimSpace(p.ID) == want {
			return p, true
		}
	}
	return models.Product{}, false
}
