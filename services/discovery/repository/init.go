package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rdwiputra/jasaku/internal/pkg/database"
	"github.com/rdwiputra/jasaku/internal/pkg/nsq"
)

// ProviderRepo serves provider data from the local database and maintains
// the availability pool. It implements both the backend and availability
// ports.
type ProviderRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	producer    *nsq.Producer
}

// NewProviderRepo creates a new provider repository. producer may be nil
// when no message bus is wired; availability changes then stay local.
func NewProviderRepo(db *sqlx.DB, redisClient *database.RedisClient, producer *nsq.Producer) *ProviderRepo {
	return &ProviderRepo{
		db:          db,
		redisClient: redisClient,
		producer:    producer,
	}
}
