package jobs

import (
	"log"
	"time"

	"boutic/models"

	"github.com/robfig/cron/v3"
)

// FlashSaleSweeper définit l'interface du balayage périodique des ventes
// flash : purge des ventes expirées puis reconstruction de la bannière.
type FlashSaleSweeper interface {
	CleanExpiredFlashSales() (bool, error)
	GenerateBanniereFlashSale() []models.BannerProduct
}

var flashSaleSweeper FlashSaleSweeper

// SetFlashSaleSweeper installe l'implémentation du FlashSaleSweeper.
func SetFlashSaleSweeper(sweeper FlashSaleSweeper) {
	flashSaleSweeper = sweeper
}

// InitCronJobs enregistre les tâches planifiées et démarre le cron.
func InitCronJobs(c *cron.Cron) error {
	// Balayage horaire : purge puis régénération inconditionnelle de la
	// bannière, même sans suppression, pour corriger toute dérive.
	_, err := c.AddFunc("@every 1h", RunFlashSaleSweep)
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// RunFlashSaleSweep exécute un tick de balayage.
func RunFlashSaleSweep() {
	if flashSaleSweeper == nil {
		log.Println("Balayage ventes flash: sweeper non configuré")
		return
	}

	now := time.Now()
	log.Printf("Balayage des ventes flash lancé à %v", now)

	removed, err := flashSaleSweeper.CleanExpiredFlashSales()
	if err != nil {
		log.Printf("Erreur pendant la purge des ventes flash: %v", err)
	} else if removed {
		log.Println("Des ventes flash expirées ont été supprimées")
	}

	flashSaleSweeper.GenerateBanniereFlashSale()
}
