package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
	"github.com/pawfinder/adoption-platform/internal/core/ports"
)

const collectionDonationPayments = "donationPayments"

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionDonationPayments)}
}

func buildPaymentFilter(f ports.ListPaymentsFilter) bson.M {
	q := bson.M{}
	if f.Email != "" {
		q["email"] = f.Email
	}
	if f.DonationID != "" {
		q["donId"] = f.DonationID
	}
	return q
}

func (r *PaymentRepository) List(ctx context.Context, f ports.ListPaymentsFilter) ([]domain.DonationPayment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, buildPaymentFilter(f), opts)
	if err != nil {
		return nil, err
	}

	payments := make([]domain.DonationPayment, 0)
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.DonationPayment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

// DeleteOwned deletes the payment only when the stored payer email matches.
// The combined {_id, email} filter keeps "missing" and "not yours"
// indistinguishable at the store level.
func (r *PaymentRepository) DeleteOwned(ctx context.Context, id string, email string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "email": email})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
