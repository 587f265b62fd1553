package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store gère la persistance des collections JSON à plat.
// Chaque collection vit dans un fichier <dir>/<nom>.json, relu et
// réécrit en entier à chaque opération.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore crée un Store enraciné dans le répertoire de données donné.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("impossible de créer le répertoire de données %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir renvoie le répertoire de données du Store.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Read lit une collection dans target. Un fichier absent est initialisé
// avec un tableau JSON vide; target reste alors à sa valeur zéro.
func (s *Store) Read(name string, target interface{}) error {
	s.mu.RLock()
	data, err := os.ReadFile(s.path(name))
	s.mu.RUnlock()

	if os.IsNotExist(err) {
		return s.init(name)
	}
	if err != nil {
		return fmt.Errorf("lecture de %s: %w", name, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse de %s: %w", name, err)
	}
	return nil
}

// Write remplace une collection entière. Écriture dans un fichier
// temporaire puis renommage, pour ne jamais laisser un fichier tronqué.
func (s *Store) Write(name string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("sérialisation de %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(name, data)
}

func (s *Store) init(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-vérifie sous verrou, un autre appelant a pu initialiser entre temps.
	if _, err := os.Stat(s.path(name)); err == nil {
		return nil
	}
	return s.writeLocked(name, []byte("[]"))
}

func (s *Store) writeLocked(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("fichier temporaire pour %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("écriture de %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("fermeture de %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renommage de %s: %w", name, err)
	}
	return nil
}
