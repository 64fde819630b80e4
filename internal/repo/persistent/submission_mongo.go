package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andreyxaxa/Social-Submissions/internal/entity"
	"github.com/andreyxaxa/Social-Submissions/pkg/mongodb"
	"github.com/andreyxaxa/Social-Submissions/pkg/types/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// Fields
	createdAtField = "createdAt"
)

// submissionDoc keeps the field names of the existing "submissions" collection.
type submissionDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	SocialPlatform string             `bson:"socialPlatform"`
	SocialHandle   string             `bson:"socialHandle"`
	Images         []string           `bson:"images"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

func toDoc(s *entity.Submission) submissionDoc {
	return submissionDoc{
		Name:           s.Name,
		SocialPlatform: string(s.SocialPlatform),
		SocialHandle:   s.SocialHandle,
		Images:         s.Images,
		CreatedAt:      s.CreatedAt,
	}
}

func (d submissionDoc) toEntity() *entity.Submission {
	images := d.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Submission{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		SocialPlatform: entity.Platform(d.SocialPlatform),
		SocialHandle:   d.SocialHandle,
		Images:         images,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

type SubmissionMongoRepo struct {
	col *mongo.Collection
}

func NewSubmissionMongoRepo(m *mongodb.MongoDB, collection string) *SubmissionMongoRepo {
	return &SubmissionMongoRepo{col: m.DB.Collection(collection)}
}

// EnsureIndexes creates the index backing the newest-first listing.
func (r *SubmissionMongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: createdAtField, Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("SubmissionMongoRepo - EnsureIndexes - r.col.Indexes().CreateOne: %w", err)
	}

	return nil
}

func (r *SubmissionMongoRepo) Create(ctx context.Context, s *entity.Submission) error {
	res, err := r.col.InsertOne(ctx, toDoc(s))
	if err != nil {
		return fmt.Errorf("SubmissionMongoRepo - Create - r.col.InsertOne: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("SubmissionMongoRepo - Create: unexpected inserted id type %T", res.InsertedID)
	}
	s.ID = id.Hex()

	return nil
}

func (r *SubmissionMongoRepo) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("SubmissionMongoRepo - GetByID - primitive.ObjectIDFromHex: %w", errs.ErrRecordNotFound)
	}

	var doc submissionDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("SubmissionMongoRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("SubmissionMongoRepo - GetByID - r.col.FindOne: %w", err)
	}

	return doc.toEntity(), nil
}

func (r *SubmissionMongoRepo) List(ctx context.Context) ([]*entity.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: createdAtField, Value: -1}})

	cur, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("SubmissionMongoRepo - List - r.col.Find: %w", err)
	}
	defer cur.Close(ctx)

	var docs []submissionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("SubmissionMongoRepo - List - cur.All: %w", err)
	}

	out := make([]*entity.Submission, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}

	return out, nil
}

func (r *SubmissionMongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("SubmissionMongoRepo - Delete - primitive.ObjectIDFromHex: %w", errs.ErrRecordNotFound)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("SubmissionMongoRepo - Delete - r.col.DeleteOne: %w", err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("SubmissionMongoRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}
