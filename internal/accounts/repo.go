package accounts

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"shopeasy_back_end/internal/models"
)

// UsersKey est l'unique slot durable : la collection complète des comptes,
// sérialisée en JSON, relue et réécrite intégralement à chaque mutation.
const UsersKey = "users"

type Repo struct {
	rdb *redis.Client
}

func NewRepo(rdb *redis.Client) *Repo {
	return &Repo{rdb: rdb}
}

// Load relit la collection entière. Slot absent = aucun compte encore créé.
func (r *Repo) Load(ctx context.Context) ([]models.User, error) {
	data, err := r.rdb.Get(ctx, UsersKey).Result()
	if errors.Is(err, redis.Nil) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal([]byte(data), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Save réécrit la collection entière, sans TTL. Deux sessions qui écrivent
// en même temps s'écrasent silencieusement : c'est assumé pour ce
// démonstrateur, le dernier écrivain gagne.
func (r *Repo) Save(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, UsersKey, data, 0).Err()
}
