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

const milestonesCollection = "milestones"

type MilestoneRepository struct {
	coll *mongo.Collection
}

func NewMilestoneRepository(db *mongo.Database) *MilestoneRepository {
	return &MilestoneRepository{coll: db.Collection(milestonesCollection)}
}

type milestoneDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProjectID string             `bson:"project_id"`
	Title     string             `bson:"title"`
	Status    string             `bson:"status"`
	DueDate   *time.Time         `bson:"due_date,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *MilestoneRepository) Create(ctx context.Context, milestone *domain.Milestone) (*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := milestoneDoc{
		ProjectID: milestone.ProjectID,
		Title:     milestone.Title,
		Status:    milestone.Status,
		DueDate:   milestone.DueDate,
		CreatedAt: milestone.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert milestone: %w", err)
	}

	created := *milestone
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// ListByProject returns milestones oldest first.
func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(
		ctx,
		bson.M{"project_id": projectID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer cur.Close(ctx)

	milestones := []*domain.Milestone{}
	for cur.Next(ctx) {
		var doc milestoneDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode milestone: %w", err)
		}
		milestones = append(milestones, &domain.Milestone{
			ID:        doc.ID.Hex(),
			ProjectID: doc.ProjectID,
			Title:     doc.Title,
			Status:    doc.Status,
			DueDate:   doc.DueDate,
			CreatedAt: doc.CreatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return milestones, nil
}

func (r *MilestoneRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
