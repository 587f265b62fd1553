package models

import "time"

// FlashSale représente une campagne de vente flash : une remise en
// pourcentage appliquée à un ensemble de produits sur une fenêtre de temps.
type FlashSale struct {
	ID              string    `json:"id"`              // Identifiant opaque, attribué à la création
	Title           string    `json:"title"`           // Titre affiché
	Description     string    `json:"description"`     // Description affichée
	Discount        int       `json:"discount"`        // Remise en pourcentage (0 à 100)
	StartDate       time.Time `json:"startDate"`       // Début de la fenêtre de validité
	EndDate         time.Time `json:"endDate"`         // Fin de la fenêtre de validité
	ProductIDs      []string  `json:"productIds"`      // Produits concernés (sans dédoublonnage)
	IsActive        bool      `json:"isActive"`        // Drapeau d'activation, indépendant de la fenêtre
	Order           int       `json:"order"`           // Clé d'ordre d'affichage (0 = non renseigné)
	BackgroundColor string    `json:"backgroundColor"` // Métadonnées d'affichage, opaques pour le moteur
	Icon            string    `json:"icon"`
	Emoji           string    `json:"emoji"`
	CreatedAt       time.Time `json:"createdAt"` // Date de création, immuable
}

// DefaultSortOrder est la clé de tri utilisée quand order n'est pas renseigné.
const DefaultSortOrder = 999

// EffectivelyActive indique si la vente est réellement active : drapeau
// levé ET instant courant dans [startDate, endDate).
func (f *FlashSale) EffectivelyActive(now time.Time) bool {
	if !f.IsActive {
		return false
	}
	return !now.Before(f.StartDate) && now.Before(f.EndDate)
}

// Expired indique si la fenêtre de validité est strictement passée.
func (f *FlashSale) Expired(now time.Time) bool {
	return f.EndDate.Before(now)
}

// SortOrder renvoie la clé de tri effective (999 quand order vaut 0).
func (f *FlashSale) SortOrder() int {
	if f.Order == 0 {
		return DefaultSortOrder
	}
	return f.Order
}
