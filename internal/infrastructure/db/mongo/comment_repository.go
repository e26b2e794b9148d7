package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clientportal/project-portal/internal/core/domain"
)

const commentsCollection = "comments"

type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type commentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ProjectID  string             `bson:"project_id"`
	AuthorID   string             `bson:"author_id"`
	AuthorRole string             `bson:"author_role"`
	Message    string             `bson:"message"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := commentDoc{
		ProjectID:  comment.ProjectID,
		AuthorID:   comment.AuthorID,
		AuthorRole: string(comment.AuthorRole),
		Message:    comment.Message,
		CreatedAt:  comment.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// ListByProject returns comments newest first.
func (r *CommentRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(
		ctx,
		bson.M{"project_id": projectID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	comments := []*domain.Comment{}
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, &domain.Comment{
			ID:         doc.ID.Hex(),
			ProjectID:  doc.ProjectID,
			AuthorID:   doc.AuthorID,
			AuthorRole: domain.Role(doc.AuthorRole),
			Message:    doc.Message,
			CreatedAt:  doc.CreatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
