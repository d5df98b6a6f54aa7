package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elevare/platform-api/internal/core/domain"
)

const coursesCollection = "courses"

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(coursesCollection)}
}

type courseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Icon        string             `bson:"icon"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Duration    string             `bson:"duration"`
	Level       string             `bson:"level"`
	EnrollURL   string             `bson:"enroll_url"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func fromCourseDoc(doc courseDoc) domain.Course {
	return domain.Course{
		ID:          doc.ID.Hex(),
		Icon:        doc.Icon,
		Title:       doc.Title,
		Description: doc.Description,
		Duration:    doc.Duration,
		Level:       domain.CourseLevel(doc.Level),
		EnrollURL:   doc.EnrollURL,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	return r.find(ctx, bson.M{})
}

func (r *CourseRepository) ListByLevel(ctx context.Context, level domain.CourseLevel) ([]domain.Course, error) {
	return r.find(ctx, bson.M{"level": string(level)})
}

func (r *CourseRepository) find(ctx context.Context, filter bson.M) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	courses := []domain.Course{}
	for cur.Next(ctx) {
		var doc courseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, fromCourseDoc(doc))
	}
	return courses, cur.Err()
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc courseDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	course := fromCourseDoc(doc)
	return &course, nil
}
