package models

import "time"

// Product est une fiche produit du catalogue. Le catalogue est une
// dépendance en lecture seule : ce backend ne le modifie jamais.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images,omitempty"`
	Category    string    `json:"category,omitempty"`
	Stock       int       `json:"stock,omitempty"`
	IsSold      bool      `json:"isSold,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
