package observations

import (
	"context"
	"mediflow-service/internal/app/contracts"
	"mediflow-service/internal/app/models"
	"mediflow-service/internal/pkg/constvars"
	"mediflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ObservationMongoRepository struct {
	Collection *mongo.Collection
}

func NewObservationMongoRepository(db *mongo.Client, dbName string) contracts.ObservationRepository {
	return &ObservationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionObservations),
	}
}

func (repo *ObservationMongoRepository) Insert(ctx context.Context, observation *models.Observation) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, observation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindAllByPatientID matches on the stored hex string, not an ObjectID;
// patient_id is a soft reference with no cross-collection constraint.
func (repo *ObservationMongoRepository) FindAllByPatientID(ctx context.Context, patientID string, limit int64) ([]models.Observation, error) {
	var observations []models.Observation
	cursor, err := repo.Collection.Find(ctx, bson.M{"patient_id": patientID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &observations)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return observations, nil
}
