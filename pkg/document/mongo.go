package document

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/nodeedit/pkg/config"
	"github.com/matzehuels/nodeedit/pkg/errors"
)

// mongoDocument is the stored shape of a document.
type mongoDocument struct {
	ID        string    `bson:"_id"`
	Contents  string    `bson:"contents"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps the document text in a MongoDB collection, keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	id     string
}

// NewMongoStore connects to MongoDB and returns a store for the document
// name.
func NewMongoStore(ctx context.Context, cfg config.MongoConfig, name string) (*MongoStore, error) {
	if err := errors.ValidateKey(name); err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping mongo")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		id:     name,
	}, nil
}

// Contents loads the document text.
func (s *MongoStore) Contents(ctx context.Context) (string, error) {
	start := time.Now()
	var doc mongoDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": s.id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		err = errors.New(errors.ErrCodeStore, "document %s not found", s.id)
	}
	return doc.Contents, observe(ctx, config.BackendMongo, false, len(doc.Contents), start, err)
}

// SetContents upserts the document text.
func (s *MongoStore) SetContents(ctx context.Context, text string) error {
	start := time.Now()
	update := bson.M{"$set": bson.M{
		"contents":   text,
		"updated_at": time.Now().UTC(),
	}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": s.id}, update, options.Update().SetUpsert(true))
	return observe(ctx, config.BackendMongo, true, len(text), start, err)
}

// Name returns the document ID.
func (s *MongoStore) Name() string { return s.id }

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
