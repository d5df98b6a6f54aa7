package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elevare/platform-api/internal/core/domain"
)

const internshipsCollection = "internships"

type InternshipRepository struct {
	coll *mongo.Collection
}

func NewInternshipRepository(db *mongo.Database) *InternshipRepository {
	return &InternshipRepository{coll: db.Collection(internshipsCollection)}
}

type internshipDoc struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Title               string             `bson:"title"`
	Company             string             `bson:"company"`
	Location            string             `bson:"location"`
	Icon                string             `bson:"icon"`
	Description         string             `bson:"description"`
	Tags                []string           `bson:"tags"`
	Category            string             `bson:"category"`
	Duration            string             `bson:"duration"`
	Stipend             string             `bson:"stipend"`
	Type                string             `bson:"type"`
	Requirements        []string           `bson:"requirements"`
	Responsibilities    []string           `bson:"responsibilities"`
	IsActive            bool               `bson:"is_active"`
	PostedDate          time.Time          `bson:"posted_date"`
	ApplicationDeadline *time.Time         `bson:"application_deadline,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func toInternshipDoc(in *domain.Internship) internshipDoc {
	return internshipDoc{
		Title:               in.Title,
		Company:             in.Company,
		Location:            in.Location,
		Icon:                in.Icon,
		Description:         in.Description,
		Tags:                in.Tags,
		Category:            string(in.Category),
		Duration:            in.Duration,
		Stipend:             in.Stipend,
		Type:                string(in.Type),
		Requirements:        in.Requirements,
		Responsibilities:    in.Responsibilities,
		IsActive:            in.IsActive,
		PostedDate:          in.PostedDate,
		ApplicationDeadline: in.ApplicationDeadline,
		CreatedAt:           in.CreatedAt,
		UpdatedAt:           in.UpdatedAt,
	}
}

func fromInternshipDoc(doc internshipDoc) domain.Internship {
	return domain.Internship{
		ID:                  doc.ID.Hex(),
		Title:               doc.Title,
		Company:             doc.Company,
		Location:            doc.Location,
		Icon:                doc.Icon,
		Description:         doc.Description,
		Tags:                doc.Tags,
		Category:            domain.InternshipCategory(doc.Category),
		Duration:            doc.Duration,
		Stipend:             doc.Stipend,
		Type:                domain.WorkType(doc.Type),
		Requirements:        doc.Requirements,
		Responsibilities:    doc.Responsibilities,
		IsActive:            doc.IsActive,
		PostedDate:          doc.PostedDate,
		ApplicationDeadline: doc.ApplicationDeadline,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
}

// ListActive returns active listings, newest posting first.
func (r *InternshipRepository) ListActive(ctx context.Context) ([]domain.Internship, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "posted_date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}
	defer cur.Close(ctx)

	listings := []domain.Internship{}
	for cur.Next(ctx) {
		var doc internshipDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode internship: %w", err)
		}
		listings = append(listings, fromInternshipDoc(doc))
	}
	return listings, cur.Err()
}

func (r *InternshipRepository) FindByID(ctx context.Context, id string) (*domain.Internship, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInternshipNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc internshipDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("find internship: %w", err)
	}
	listing := fromInternshipDoc(doc)
	return &listing, nil
}

func (r *InternshipRepository) Create(ctx context.Context, in *domain.Internship) (*domain.Internship, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, toInternshipDoc(in))
	if err != nil {
		return nil, fmt.Errorf("insert internship: %w", err)
	}

	created := *in
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *InternshipRepository) Update(ctx context.Context, id string, in *domain.Internship) (*domain.Internship, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInternshipNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	in.UpdatedAt = time.Now().UTC()
	doc := toInternshipDoc(in)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update internship: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrInternshipNotFound
	}

	updated := fromInternshipDoc(doc)
	return &updated, nil
}

func (r *InternshipRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInternshipNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete internship: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInternshipNotFound
	}
	return nil
}
