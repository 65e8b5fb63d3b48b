package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

const collectionPets = "pets"

type PetRepository struct {
	col *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{col: db.Collection(collectionPets)}
}

// buildPetFilter translates the recognized query parameters into a Mongo
// filter. Absent parameters must not appear as keys: an empty filter returns
// the full (or adopted=false restricted) set, never zero results.
func buildPetFilter(f ports.ListPetsFilter) bson.M {
	q := bson.M{}
	if f.OnlyUnadopted {
		q["adopted"] = false
	}
	if f.Email != "" {
		q["email"] = f.Email
	}
	if f.Search != "" {
		q["name"] = bson.M{"$regex": f.Search, "$options": "i"}
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	return q
}

// List returns pets matching filter, newest first, plus the unpaginated total
// for the same filter.
func (r *PetRepository) List(ctx context.Context, f ports.ListPetsFilter) ([]domain.Pet, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildPetFilter(f)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetSkip(int64((f.Page - 1) * f.Limit)).SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	pets := make([]domain.Pet, 0)
	if err := cur.All(ctx, &pets); err != nil {
		return nil, 0, err
	}
	return pets, total, nil
}

// FindByPetID retrieves a listing by its public domain id, not the ObjectID.
func (r *PetRepository) FindByPetID(ctx context.Context, petID string) (*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var pet domain.Pet
	err := r.col.FindOne(ctx, bson.M{"petId": petID}).Decode(&pet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepository) Insert(ctx context.Context, pet *domain.Pet) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, pet)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (r *PetRepository) UpdateByPetID(ctx context.Context, petID string, fields map[string]any) (*ports.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"petId": petID}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return &ports.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *PetRepository) SetAdopted(ctx context.Context, id string, adopted bool) (*ports.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"adopted": adopted}})
	if err != nil {
		return nil, err
	}
	return &ports.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes a listing by id. When ownerEmail is non-empty, the filter
// additionally requires the stored owner email to match, so non-owners delete
// nothing and cannot tell a miss from a denial.
func (r *PetRepository) Delete(ctx context.Context, id string, ownerEmail string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if ownerEmail != "" {
		filter["email"] = ownerEmail
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the pets collection indexes.
func (r *PetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "petId", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "adopted", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
