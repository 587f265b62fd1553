package controllers

import (
	"errors"

	"boutic/dto"
	apperrors "boutic/errors"
	"boutic/response"
	"boutic/services"
	"boutic/validator"

	"github.com/gin-gonic/gin"
)

// FlashSaleController expose le moteur de ventes flash en REST.
type FlashSaleController struct {
	service *services.FlashSaleService
}

func NewFlashSaleController(service *services.FlashSaleService) *FlashSaleController {
	return &FlashSaleController{service: service}
}

// GetFlashSales renvoie toutes les ventes flash, quel que soit leur état.
// Réservé aux admins.
func (ctl *FlashSaleController) GetFlashSales(c *gin.Context) {
	sales, err := ctl.service.GetAll()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.SuccessWithTotal(c, sales, len(sales))
}

// GetActiveFlashSale renvoie la première vente réellement active.
func (ctl *FlashSaleController) GetActiveFlashSale(c *gin.Context) {
	sale, found, err := ctl.service.GetActiveFlashSale()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Aucune vente flash active")
		return
	}
	response.Success(c, sale)
}

// GetActiveFlashSales renvoie toutes les ventes réellement actives, triées.
func (ctl *FlashSaleController) GetActiveFlashSales(c *gin.Context) {
	sales, err := ctl.service.GetActiveFlashSales()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if len(sales) == 0 {
		response.NotFound(c, "Aucune vente flash active")
		return
	}
	response.SuccessWithTotal(c, sales, len(sales))
}

// GetBanniereProducts renvoie la bannière, recalculée à chaque appel.
func (ctl *FlashSaleController) GetBanniereProducts(c *gin.Context) {
	banner := ctl.service.GetBanniereProducts()
	response.SuccessWithTotal(c, banner, len(banner))
}

// GetFlashSaleDetail renvoie une vente par identifiant.
func (ctl *FlashSaleController) GetFlashSaleDetail(c *gin.Context) {
	sale, found, err := ctl.service.GetByID(c.Param("id"))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Vente flash introuvable")
		return
	}
	response.Success(c, sale)
}

// GetFlashSaleProducts renvoie les fiches catalogue référencées par la vente.
func (ctl *FlashSaleController) GetFlashSaleProducts(c *gin.Context) {
	products, err := ctl.service.GetSaleProducts(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrFlashSaleNotFound) {
			response.NotFound(c, "Vente flash introuvable")
			return
		}
		response.ServerError(c, err)
		return
	}
	response.SuccessWithTotal(c, products, len(products))
}

// CreateFlashSale crée une vente flash, inactive par défaut.
func (ctl *FlashSaleController) CreateFlashSale(c *gin.Context) {
	var request dto.CreateFlashSaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Données invalides")
		return
	}

	if err := validator.ValidateCreateFlashSale(&request); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, err.Error())
		return
	}

	sale, err := ctl.service.Create(request)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, sale)
}

// UpdateFlashSale applique une mise à jour partielle.
func (ctl *FlashSaleController) UpdateFlashSale(c *gin.Context) {
	var request dto.UpdateFlashSaleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Données invalides")
		return
	}

	if err := validator.ValidateUpdateFlashSale(&request); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, err.Error())
		return
	}

	sale, err := ctl.service.Update(c.Param("id"), request)
	if err != nil {
		if errors.Is(err, apperrors.ErrFlashSaleNotFound) {
			response.NotFound(c, "Vente flash introuvable")
			return
		}
		response.ServerError(c, err)
		return
	}
	response.Success(c, sale)
}

// DeleteFlashSale supprime définitivement une vente.
func (ctl *FlashSaleController) DeleteFlashSale(c *gin.Context) {
	removed, err := ctl.service.Delete(c.Param("id"))
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if !removed {
		response.NotFound(c, "Vente flash introuvable")
		return
	}
	response.Success(c, nil)
}

// ActivateFlashSale lève le drapeau isActive.
func (ctl *FlashSaleController) ActivateFlashSale(c *gin.Context) {
	ctl.setActive(c, true)
}

// DeactivateFlashSale abaisse le drapeau isActive.
func (ctl *FlashSaleController) DeactivateFlashSale(c *gin.Context) {
	ctl.setActive(c, false)
}

func (ctl *FlashSaleController) setActive(c *gin.Context, active bool) {
	var (
		err  error
		sale interface{}
	)
	if active {
		sale, err = ctl.service.Activate(c.Param("id"))
	} else {
		sale, err = ctl.service.Deactivate(c.Param("id"))
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrFlashSaleNotFound) {
			response.NotFound(c, "Vente flash introuvable")
			return
		}
		response.ServerError(c, err)
		return
	}
	response.Success(c, sale)
}
