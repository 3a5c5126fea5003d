// File: database/repository/order/interface.go
package orderRepo

import (
	"context"

	"coursestore/config"
	"coursestore/database"
	"coursestore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
