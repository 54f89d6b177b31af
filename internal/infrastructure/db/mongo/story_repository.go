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

	"github.com/memento-app/memento-api/internal/core/domain"
	"github.com/memento-app/memento-api/internal/core/ports"
)

const storiesCollection = "stories"

type StoryRepository struct {
	coll *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{coll: db.Collection(storiesCollection)}
}

type storyDoc struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Title     string               `bson:"title"`
	Content   string               `bson:"content"`
	Author    primitive.ObjectID   `bson:"author"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func (d storyDoc) toDomain() *domain.Story {
	likes := make([]string, len(d.Likes))
	for i, id := range d.Likes {
		likes[i] = id.Hex()
	}
	return &domain.Story{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		AuthorID:  d.Author.Hex(),
		Likes:     likes,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *StoryRepository) Create(ctx context.Context, story *domain.Story) (*domain.Story, error) {
	author, err := primitive.ObjectIDFromHex(story.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := storyDoc{
		Title:     story.Title,
		Content:   story.Content,
		Author:    author,
		Likes:     []primitive.ObjectID{},
		CreatedAt: story.CreatedAt,
		UpdatedAt: story.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert story: %w", err)
	}

	created := *story
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.Likes = []string{}
	return &created, nil
}

func (r *StoryRepository) FindByID(ctx context.Context, id string) (*domain.Story, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStoryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc storyDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("find story: %w", err)
	}
	return doc.toDomain(), nil
}

// FindAll returns every story newest-first by creation time.
func (r *StoryRepository) FindAll(ctx context.Context) ([]*domain.Story, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer cur.Close(ctx)

	var stories []*domain.Story
	for cur.Next(ctx) {
		var doc storyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode story: %w", err)
		}
		stories = append(stories, doc.toDomain())
	}
	return stories, cur.Err()
}

// Update sets only the supplied fields and returns the updated document.
func (r *StoryRepository) Update(ctx context.Context, id string, upd ports.StoryUpdate) (*domain.Story, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStoryNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc storyDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("update story: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *StoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStoryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete story: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}

// ToggleLike flips userID's membership in the likes array with a single
// aggregation-pipeline update, so the membership test and the mutation are
// one atomic document write. Concurrent toggles on the same story serialize
// at the store instead of racing a read-modify-write.
func (r *StoryRepository) ToggleLike(ctx context.Context, storyID, userID string) (*domain.Story, error) {
	oid, err := primitive.ObjectIDFromHex(storyID)
	if err != nil {
		return nil, domain.ErrStoryNotFound
	}
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	likes := bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{uid, likes}},
				bson.M{"$setDifference": bson.A{likes, bson.A{uid}}},
				bson.M{"$concatArrays": bson.A{likes, bson.A{uid}}},
			}},
			"updated_at": "$$NOW",
		}}},
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc storyDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, pipeline, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStoryNotFound
		}
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the indexes serving the author filter and the
// newest-first listing.
func (r *StoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
