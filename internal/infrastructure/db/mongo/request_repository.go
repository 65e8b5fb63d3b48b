package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

const collectionRequests = "requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

func buildRequestFilter(f ports.ListRequestsFilter) bson.M {
	q := bson.M{}
	if f.OwnerEmail != "" {
		q["petOwnerEmail"] = f.OwnerEmail
	}
	if f.Status != "" {
		q["reqStatus"] = f.Status
	}
	return q
}

func (r *RequestRepository) List(ctx context.Context, f ports.ListRequestsFilter) ([]domain.AdoptionRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, buildRequestFilter(f), opts)
	if err != nil {
		return nil, err
	}

	requests := make([]domain.AdoptionRequest, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListByPetID(ctx context.Context, petID string) ([]domain.AdoptionRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"petId": petID}, opts)
	if err != nil {
		return nil, err
	}

	requests := make([]domain.AdoptionRequest, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) Exists(ctx context.Context, petID, requesterEmail string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"petId": petID, "adoptedReqByEmail": requesterEmail})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert relies on the unique (petId, adoptedReqByEmail) index as the
// authoritative duplicate signal: the service's pre-check can race under
// concurrent submissions, the index cannot.
func (r *RequestRepository) Insert(ctx context.Context, req *domain.AdoptionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, req)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrRequestExists
		}
		return "", err
	}
	return insertedHex(res), nil
}

func (r *RequestRepository) SetStatus(ctx context.Context, id string, status string) (*ports.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"reqStatus": status}})
	if err != nil {
		return nil, err
	}
	return &ports.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// EnsureIndexes creates the unique compound index enforcing one request per
// (pet, requester) pair.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "petId", Value: 1}, {Key: "adoptedReqByEmail", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "petOwnerEmail", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
