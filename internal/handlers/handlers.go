package handlers

import (
	"github.com/redis/go-redis/v9"

	"shopeasy_back_end/internal/accounts"
	"shopeasy_back_end/internal/catalog"
)

// Handler regroupe les dépendances injectées depuis main : le catalogue en
// mémoire, le dépôt de comptes et le client Redis des paniers. Pas d'état
// ambiant, tout passe par cette struct.
type Handler struct {
	Catalog  *catalog.Store
	Accounts *accounts.Repo
	Redis    *redis.Client
}

func New(store *catalog.Store, repo *accounts.Repo, rdb *redis.Client) *Handler {
	return &Handler{
		Catalog:  store,
		Accounts: repo,
		Redis:    rdb,
	}
}
