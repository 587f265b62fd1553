package services

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"boutic/constants"
	"boutic/dto"
	"boutic/errors"
	"boutic/models"
	"boutic/services/logger"
	"boutic/services/notification"
	"boutic/storage"
)

// FlashSaleService porte tout le cycle de vie des ventes flash : CRUD,
// transitions d'activation, purge des ventes expirées et projection
// bannière. L'état "réellement actif" n'est jamais stocké, il est
// recalculé à chaque lecture contre l'horloge murale.
type FlashSaleService struct {
	store    *storage.Store
	catalog  *ProductService
	logger   logger.Logger
	notifier notification.Service
}

// FlashSaleServiceOptions regroupe les dépendances du service.
type FlashSaleServiceOptions struct {
	Store    *storage.Store
	Catalog  *ProductService
	Logger   logger.Logger
	Notifier notification.Service
}

// NewFlashSaleService crée une nouvelle instance de FlashSaleService.
func NewFlashSaleService(opts FlashSaleServiceOptions) *FlashSaleService {
	svc := &FlashSaleService{
		store:    opts.Store,
		catalog:  opts.Catalog,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
	if svc.catalog == nil {
		svc.catalog = NewProductService(opts.Store)
	}
	if svc.logger == nil {
		svc.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return svc
}

// GetAll renvoie toutes les ventes flash dans l'ordre de stockage.
func (s *FlashSaleService) GetAll() ([]models.FlashSale, error) {
	var sales []models.FlashSale
	if err := s.store.Read(constants.CollectionFlashSales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// GetByID renvoie la vente correspondante, ou found=false.
func (s *FlashSaleService) GetByID(id string) (models.FlashSale, bool, error) {
	sales, err := s.GetAll()
	if err != nil {
		return models.FlashSale{}, false, err
	}
	for _, sale := range sales {
		if sale.ID == id {
			return sale, true, nil
		}
	}
	return models.FlashSale{}, false, nil
}

// Create persiste une nouvelle vente flash. L'identifiant est dérivé de
// l'horloge, la vente naît toujours inactive.
func (s *FlashSaleService) Create(req dto.CreateFlashSaleRequest) (models.FlashSale, error) {
	sales, err := s.GetAll()
	if err != nil {
		return models.FlashSale{}, err
	}

	now := time.Now()
	order := 1
	if req.Order != nil {
		order = *req.Order
	}

	sale := models.FlashSale{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Title:           req.Title,
		Description:     req.Description,
		Discount:        *req.Discount,
		StartDate:       *req.StartDate,
		EndDate:         *req.EndDate,
		ProductIDs:      normalizeProductIDs(req.ProductIDs),
		IsActive:        false,
		Order:           order,
		BackgroundColor: req.BackgroundColor,
		Icon:            req.Icon,
		Emoji:           req.Emoji,
		CreatedAt:       now,
	}

	sales = append(sales, sale)
	if err := s.store.Write(constants.CollectionFlashSales, sales); err != nil {
		return models.FlashSale{}, err
	}

	s.logger.Info("Vente flash %s créée (%d produits)", sale.ID, len(sale.ProductIDs))
	return sale, nil
}

// Update fusionne les champs fournis sur la vente existante : un champ
// présent remplace entièrement l'ancien.
func (s *FlashSaleService) Update(id string, req dto.UpdateFlashSaleRequest) (models.FlashSale, error) {
	sales, err := s.GetAll()
	if err != nil {
		return models.FlashSale{}, err
	}

	for i := range sales {
		if sales[i].ID != id {
			continue
		}

		if req.Title != nil {
			sales[i].Title = *req.Title
		}
		if req.Description != nil {
			sales[i].Description = *req.Description
		}
		if req.Discount != nil {
			sales[i].Discount = *req.Discount
		}
		if req.StartDate != nil {
			sales[i].StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			sales[i].EndDate = *req.EndDate
		}
		if req.ProductIDs != nil {
			sales[i].ProductIDs = normalizeProductIDs(*req.ProductIDs)
		}
		if req.Order != nil {
			sales[i].Order = *req.Order
		}
		if req.BackgroundColor != nil {
			sales[i].BackgroundColor = *req.BackgroundColor
		}
		if req.Icon != nil {
			sales[i].Icon = *req.Icon
		}
		if req.Emoji != nil {
			sales[i].Emoji = *req.Emoji
		}

		if err := s.store.Write(constants.CollectionFlashSales, sales); err != nil {
			return models.FlashSale{}, err
		}
		return sales[i], nil
	}

	return models.FlashSale{}, errors.ErrFlashSaleNotFound
}

// Delete supprime définitivement la vente. La suppression n'est pas un
// simple drapeau : la bannière est régénérée dans la foulée.
func (s *FlashSaleService) Delete(id string) (bool, error) {
	sales, err := s.GetAll()
	if err != nil {
		return false, err
	}

	kept := make([]models.FlashSale, 0, len(sales))
	removed := false
	for _, sale := range sales {
		if sale.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sale)
	}

	if !removed {
		return false, nil
	}

	if err := s.store.Write(constants.CollectionFlashSales, kept); err != nil {
		return false, err
	}

	s.logger.Info("Vente flash %s supprimée", id)
	s.GenerateBanniereFlashSale()
	return true, nil
}

// Activate lève le drapeau isActive sans vérifier la fenêtre de dates.
func (s *FlashSaleService) Activate(id string) (models.FlashSale, error) {
	return s.setActive(id, true)
}

// Deactivate abaisse le drapeau isActive.
func (s *FlashSaleService) Deactivate(id string) (models.FlashSale, error) {
	return s.setActive(id, false)
}

func (s *FlashSaleService) setActive(id string, active bool) (models.FlashSale, error) {
	sales, err := s.GetAll()
	if err != nil {
		return models.FlashSale{}, err
	}

	for i := range sales {
		if sales[i].ID != id {
			continue
		}
		sales[i].IsActive = active
		if err := s.store.Write(constants.CollectionFlashSales, sales); err != nil {
			return models.FlashSale{}, err
		}
		s.logger.Info("Vente flash %s: isActive=%t", id, active)
		s.GenerateBanniereFlashSale()
		return sales[i], nil
	}

	return models.FlashSale{}, errors.ErrFlashSaleNotFound
}

// CleanExpiredFlashSales supprime (et non désactive) toute vente dont
// endDate est strictement passée, quel que soit isActive. Suppression
// définitive, aucune archive. Renvoie true si au moins une vente est
// partie.
func (s *FlashSaleService) CleanExpiredFlashSales() (bool, error) {
	sales, err := s.GetAll()
	if err != nil {
		return false, err
	}

	now := time.Now()
	kept := make([]models.FlashSale, 0, len(sales))
	removed := 0
	for _, sale := range sales {
		if sale.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, sale)
	}

	if removed == 0 {
		return false, nil
	}

	if err := s.store.Write(constants.CollectionFlashSales, kept); err != nil {
		return false, err
	}

	s.logger.Info("Purge: %d vente(s) flash expirée(s) supprimée(s)", removed)
	s.GenerateBanniereFlashSale()
	return true, nil
}

// GetActiveFlashSale purge d'abord les ventes expirées puis renvoie la
// première vente réellement active dans l'ordre de stockage.
func (s *FlashSaleService) GetActiveFlashSale() (models.FlashSale, bool, error) {
	if _, err := s.CleanExpiredFlashSales(); err != nil {
		return models.FlashSale{}, false, err
	}

	sales, err := s.GetAll()
	if err != nil {
		return models.FlashSale{}, false, err
	}

	now := time.Now()
	for _, sale := range sales {
		if sale.EffectivelyActive(now) {
			return sale, true, nil
		}
	}
	return models.FlashSale{}, false, nil
}

// GetActiveFlashSales renvoie toutes les ventes réellement actives,
// triées par order croissant (999 quand absent), égalités dans l'ordre
// d'insertion.
func (s *FlashSaleService) GetActiveFlashSales() ([]models.FlashSale, error) {
	sales, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active := make([]models.FlashSale, 0, len(sales))
	for _, sale := range sales {
		if sale.EffectivelyActive(now) {
			active = append(active, sale)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].SortOrder() < active[j].SortOrder()
	})
	return active, nil
}

// GetSaleProducts renvoie les fiches catalogue référencées par la vente.
// Les références pendantes sont ignorées sans erreur.
func (s *FlashSaleService) GetSaleProducts(id string) ([]models.Product, error) {
	sale, found, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.ErrFlashSaleNotFound
	}

	catalog, err := s.catalog.GetAll()
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(sale.ProductIDs))
	for _, pid := range sale.ProductIDs {
		if product, ok := s.catalog.FindByID(catalog, pid); ok {
			products = append(products, product)
		}
	}
	return products, nil
}

// GenerateBanniereFlashSale recalcule la collection bannière complète et
// remplace le fichier persisté. En cas d'erreur de lecture une collection
// vide est persistée plutôt que de conserver l'ancienne (choix assumé :
// la bannière reflète toujours l'état courant, jamais un état périmé).
func (s *FlashSaleService) GenerateBanniereFlashSale() []models.BannerProduct {
	banner := s.buildBanner()
	if err := s.store.Write(constants.CollectionBanniere, banner); err != nil {
		s.logger.Error("Écriture de la bannière impossible: %v", err)
	}
	s.broadcastUpdate()
	return banner
}

func (s *FlashSaleService) buildBanner() []models.BannerProduct {
	banner := []models.BannerProduct{}

	active, err := s.GetActiveFlashSales()
	if err != nil {
		s.logger.Error("Lecture des ventes actives impossible, bannière vidée: %v", err)
		return banner
	}
	if len(active) == 0 {
		return banner
	}

	catalog, err := s.catalog.GetAll()
	if err != nil {
		s.logger.Error("Lecture du catalogue impossible, bannière vidée: %v", err)
		return banner
	}

	for _, sale := range active {
		for _, pid := range sale.ProductIDs {
			product, ok := s.catalog.FindByID(catalog, pid)
			if !ok {
				s.logger.Info("Bannière: produit %q introuvable pour la vente %s, ignoré", strings.TrimSpace(pid), sale.ID)
				continue
			}

			banner = append(banner, models.BannerProduct{
				Product:                  product,
				FlashSaleID:              sale.ID,
				FlashSaleDiscount:        sale.Discount,
				FlashSaleStartDate:       sale.StartDate,
				FlashSaleEndDate:         sale.EndDate,
				FlashSaleTitle:           sale.Title,
				FlashSaleDescription:     sale.Description,
				FlashSaleBackgroundColor: sale.BackgroundColor,
				FlashSaleIcon:            sale.Icon,
				FlashSaleEmoji:           sale.Emoji,
				FlashSaleOrder:           sale.Order,
				OriginalFlashPrice:       product.Price,
				FlashSalePrice:           FlashSalePrice(product.Price, sale.Discount),
			})
		}
	}
	return banner
}

// GetBanniereProducts régénère systématiquement la bannière : chaque
// lecture storefront paie la jointure complète, en échange d'une
// fraîcheur garantie.
func (s *FlashSaleService) GetBanniereProducts() []models.BannerProduct {
	return s.GenerateBanniereFlashSale()
}

func (s *FlashSaleService) broadcastUpdate() {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendMessage(notification.FlashSaleUpdated()); err != nil {
		s.logger.Debug("Diffusion websocket impossible: %v", err)
	}
}

// FlashSalePrice calcule le prix remisé arrondi à 2 décimales.
func FlashSalePrice(price float64, discount int) float64 {
	return math.Round(price*(1-float64(discount)/100)*100) / 100
}

func normalizeProductIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strings.TrimSpace(id))
	}
	return out
}
