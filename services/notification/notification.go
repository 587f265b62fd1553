package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/olahol/melody"
)

// Service pousse des événements temps réel vers les clients storefront.
type Service interface {
	SendMessage(message string) error
}

// MelodyService implémente Service au-dessus d'une instance melody.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("instance melody absente")
	}
	return s.m.Broadcast([]byte(message))
}

// Event est le format des événements diffusés sur le websocket.
type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// FlashSaleUpdated construit l'événement diffusé après chaque
// régénération de la bannière.
func FlashSaleUpdated() string {
	b, _ := json.Marshal(Event{Type: "flash-sale:updated", At: time.Now()})
	return string(b)
}
