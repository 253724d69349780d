package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// --- Variables Globales ---
var (
	Redis       *redis.Client
	RedisClient *redis.Client // Alias pour compatibilité
)

// ConnectDatabases initialise Redis, seul stockage durable du projet :
// les comptes utilisateurs vivent dans un unique slot clé-valeur et les
// paniers dans une clé JSON par utilisateur.
func ConnectDatabases() {
	ctx := context.Background()

	connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	RedisClient = Redis // Alias pour compatibilité

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}
