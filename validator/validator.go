package validator

import (
	"boutic/dto"
	"boutic/errors"
)

// ValidateCreateFlashSale valide les champs d'une création de vente flash.
// L'ordre startDate < endDate n'est volontairement pas vérifié : il est
// de la responsabilité de l'appelant.
func ValidateCreateFlashSale(req *dto.CreateFlashSaleRequest) error {
	if req.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Le titre est obligatoire", nil)
	}

	if req.Discount == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "La remise est obligatoire", nil)
	}

	if *req.Discount < 0 || *req.Discount > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidDiscount, "La remise doit être comprise entre 0 et 100", nil)
	}

	if req.StartDate == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "La date de début est obligatoire", nil)
	}

	if req.EndDate == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "La date de fin est obligatoire", nil)
	}

	return nil
}

// ValidateUpdateFlashSale valide les champs fournis d'une mise à jour.
func ValidateUpdateFlashSale(req *dto.UpdateFlashSaleRequest) error {
	if req.Discount != nil && (*req.Discount < 0 || *req.Discount > 100) {
		return errors.NewAppError(errors.ErrCodeInvalidDiscount, "La remise doit être comprise entre 0 et 100", nil)
	}
	return nil
}
