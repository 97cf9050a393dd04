package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/models"
)

var ErrNotFound = errors.New("company not found")

type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection("companies")}
}

func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "tax_id", Value: 1}},
		Options: options.Index().SetName("idx_tax_id"),
	}
	_, err := r.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}
	// Recreate if it already exists with different options
	if ce, ok := err.(mongo.CommandError); ok && ce.Code == 85 { // IndexOptionsConflict
		if _, dropErr := r.coll.Indexes().DropOne(ctx, "idx_tax_id"); dropErr != nil {
			return fmt.Errorf("drop index idx_tax_id: %w", dropErr)
		}
		_, createErr := r.coll.Indexes().CreateOne(ctx, model)
		return createErr
	}
	return err
}

// Upsert inserts or fully replaces the document keyed by the record's id. There is
// no field-level merge: a re-ingested row supersedes the stored record wholesale.
// CreatedAt of an existing document is preserved so insertion order survives.
func (r *CompanyRepository) Upsert(ctx context.Context, c models.CompanyRecord) error {
	now := time.Now()
	c.UpdatedAt = now
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if prev, err := r.GetByID(ctx, c.ID); err == nil {
		c.CreatedAt = prev.CreatedAt
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	return err
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*models.CompanyRecord, error) {
	var c models.CompanyRecord
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetAll returns records in insertion order so snapshot ordering is stable from
// run to run. limit <= 0 means no limit.
func (r *CompanyRepository) GetAll(ctx context.Context, limit, skip int64) ([]models.CompanyRecord, error) {
	opts := options.Find().
		SetSkip(skip).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	list := []models.CompanyRecord{}
	for cur.Next(ctx) {
		var c models.CompanyRecord
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, cur.Err()
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
