package config

import (
	"log"

	"boutic/storage"
)

// Store est le magasin de fichiers JSON à plat partagé par l'application.
var Store *storage.Store

// ConnectStore ouvre le répertoire de données (env DATA_DIR, défaut "data").
func ConnectStore() error {
	dir := GetEnvDefault("DATA_DIR", "data")

	var err error
	Store, err = storage.NewStore(dir)
	if err != nil {
		return err
	}

	log.Printf("Magasin de données ouvert dans %s", dir)
	return nil
}
