package models

import "time"

// BannerProduct est une fiche produit dénormalisée pour la bannière du
// storefront : produit du catalogue + champs de la vente flash qui le
// référence. La collection entière est régénérée à chaque fois, jamais
// retouchée à la main.
type BannerProduct struct {
	Product

	FlashSaleID              string    `json:"flashSaleId"`
	FlashSaleDiscount        int       `json:"flashSaleDiscount"`
	FlashSaleStartDate       time.Time `json:"flashSaleStartDate"`
	FlashSaleEndDate         time.Time `json:"flashSaleEndDate"`
	FlashSaleTitle           string    `json:"flashSaleTitle"`
	FlashSaleDescription     string    `json:"flashSaleDescription"`
	FlashSaleBackgroundColor string    `json:"flashSaleBackgroundColor"`
	FlashSaleIcon            string    `json:"flashSaleIcon"`
	FlashSaleEmoji           string    `json:"flashSaleEmoji"`
	FlashSaleOrder           int       `json:"flashSaleOrder"`
	OriginalFlashPrice       float64   `json:"originalFlashPrice"`
	FlashSalePrice           float64   `json:"flashSalePrice"`
}
