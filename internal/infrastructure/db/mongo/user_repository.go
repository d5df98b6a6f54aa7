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

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// userDoc remaps the aggregate id to an ObjectID; everything else is stored
// through the domain types' bson tags.
type userDoc struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty"`
	Name               string               `bson:"name"`
	Email              string               `bson:"email"`
	PasswordHash       string               `bson:"password_hash"`
	UserType           string               `bson:"user_type"`
	Year               string               `bson:"year"`
	Location           string               `bson:"location"`
	Phone              string               `bson:"phone"`
	Role               string               `bson:"role"`
	CreatedAt          time.Time            `bson:"created_at"`
	UpdatedAt          time.Time            `bson:"updated_at"`
	EnrolledCourses    []domain.Enrollment  `bson:"enrolled_courses"`
	AppliedInternships []domain.Application `bson:"applied_internships"`
	MentorshipSessions []domain.Session     `bson:"mentorship_sessions"`
}

func toUserDoc(u *domain.User) (userDoc, error) {
	doc := userDoc{
		Name:               u.Name,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		UserType:           string(u.UserType),
		Year:               u.Year,
		Location:           u.Location,
		Phone:              u.Phone,
		Role:               u.Role,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
		EnrolledCourses:    u.EnrolledCourses,
		AppliedInternships: u.AppliedInternships,
		MentorshipSessions: u.MentorshipSessions,
	}
	if u.ID != "" {
		oid, err := primitive.ObjectIDFromHex(u.ID)
		if err != nil {
			return userDoc{}, fmt.Errorf("invalid user id %q: %w", u.ID, err)
		}
		doc.ID = oid
	}
	return doc, nil
}

func fromUserDoc(doc userDoc) *domain.User {
	return &domain.User{
		ID:                 doc.ID.Hex(),
		Name:               doc.Name,
		Email:              doc.Email,
		PasswordHash:       doc.PasswordHash,
		UserType:           domain.UserType(doc.UserType),
		Year:               doc.Year,
		Location:           doc.Location,
		Phone:              doc.Phone,
		Role:               doc.Role,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
		EnrolledCourses:    doc.EnrolledCourses,
		AppliedInternships: doc.AppliedInternships,
		MentorshipSessions: doc.MentorshipSessions,
	}
}

// Create inserts a new user document. A duplicate key on the unique email
// index maps to domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toUserDoc(user)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromUserDoc(doc), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return fromUserDoc(doc), nil
}

// Save replaces the whole document. The replace is atomic at the document
// level; concurrent saves of the same user resolve last-write-wins.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toUserDoc(user)
	if err != nil {
		return err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index backing the
// one-account-per-email invariant.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
