package constants

// Rôles utilisateur
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// Collections persistées (un fichier JSON par collection)
const (
	CollectionFlashSales = "flash-sales"
	CollectionProducts   = "products"
	CollectionBanniere   = "banniereflashsale"
)
