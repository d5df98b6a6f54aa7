package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elevare/platform-api/internal/core/domain"
)

const articlesCollection = "blog_articles"

type ArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{coll: db.Collection(articlesCollection)}
}

type articleDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Icon      string             `bson:"icon"`
	Category  string             `bson:"category"`
	Title     string             `bson:"title"`
	Excerpt   string             `bson:"excerpt"`
	Author    string             `bson:"author"`
	Date      string             `bson:"date"`
	URL       string             `bson:"url"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func fromArticleDoc(doc articleDoc) domain.Article {
	return domain.Article{
		ID:        doc.ID.Hex(),
		Icon:      doc.Icon,
		Category:  doc.Category,
		Title:     doc.Title,
		Excerpt:   doc.Excerpt,
		Author:    doc.Author,
		Date:      doc.Date,
		URL:       doc.URL,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// List returns all articles, newest first.
func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *ArticleRepository) ListByCategory(ctx context.Context, category string) ([]domain.Article, error) {
	return r.find(ctx, bson.M{"category": category}, options.Find())
}

// Search matches the query case-insensitively against title, excerpt and
// category, mirroring the blog search box.
func (r *ArticleRepository) Search(ctx context.Context, query string) ([]domain.Article, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"excerpt": pattern},
		bson.M{"category": pattern},
	}}
	return r.find(ctx, filter, options.Find())
}

func (r *ArticleRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cur.Close(ctx)

	articles := []domain.Article{}
	for cur.Next(ctx) {
		var doc articleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		articles = append(articles, fromArticleDoc(doc))
	}
	return articles, cur.Err()
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc articleDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	article := fromArticleDoc(doc)
	return &article, nil
}
