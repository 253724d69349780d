package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"shopeasy_back_end/internal/accounts"
	"shopeasy_back_end/internal/catalog"
	"shopeasy_back_end/internal/config"
	"shopeasy_back_end/internal/database"
	"shopeasy_back_end/internal/handlers"
	"shopeasy_back_end/internal/routes"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	// Unique fetch du catalogue, avant d'accepter la moindre requête. Un
	// échec n'empêche pas le serveur de démarrer : les endpoints catalogue
	// répondent 503 jusqu'au prochain redémarrage.
	store := catalog.NewStore()
	url := os.Getenv("CATALOG_URL")
	if url == "" {
		url = catalog.DefaultURL
	}
	if err := store.LoadFromAPI(url); err != nil {
		log.Printf("⚠️ Démarrage en mode dégradé : %v", err)
	} else {
		log.Printf("✅ Catalogue chargé (%d produits)", len(store.Products()))
	}

	h := handlers.New(store, accounts.NewRepo(database.Redis), database.Redis)

	r := gin.Default()
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur ShopEasy lancé sur le port", port)
	r.Run(":" + port)
}
