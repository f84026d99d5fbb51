package authz

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// GrantCounter captures the subset of *mongo.Collection used by MongoGrants.
type GrantCounter interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

// MongoPinger captures the subset of *mongo.Client used to check that the
// grants store is reachable.
type MongoPinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// MongoGrants permits an action when the grants collection holds a document
// {subject, action, resource} for it. Subject and resource ids come from
// Identifier; a resource without one matches grants stored with resource "*".
type MongoGrants struct {
	grants GrantCounter
}

// NewMongoGrants returns an authorizer backed by the given collection.
func NewMongoGrants(grants GrantCounter) *MongoGrants {
	return &MongoGrants{grants: grants}
}

// Authorize implements hateoas.Authorizer.
func (m *MongoGrants) Authorize(ctx context.Context, principal any, action string, resource any) (bool, error) {
	if m == nil || m.grants == nil {
		return false, errors.New("mongo grants: collection is nil")
	}
	subject, ok := principal.(Identifier)
	if !ok {
		return false, nil
	}

	resources := bson.A{"*"}
	if id, ok := resource.(Identifier); ok {
		resources = append(resources, id.Identifier())
	}

	filter := bson.D{
		{Key: "subject", Value: subject.Identifier()},
		{Key: "action", Value: action},
		{Key: "resource", Value: bson.D{{Key: "$in", Value: resources}}},
	}
	n, err := m.grants.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("mongo grants: count %q for %q: %w", action, subject.Identifier(), err)
	}
	return n > 0, nil
}

// Ping reports whether the grants store is reachable. A nil readPref means
// readpref.Primary.
func Ping(ctx context.Context, client MongoPinger, readPref *readpref.ReadPref) error {
	if client == nil {
		return errors.New("mongo grants: client is nil")
	}
	if readPref == nil {
		readPref = readpref.Primary()
	}
	if err := client.Ping(ctx, readPref); err != nil {
		return fmt.Errorf("mongo grants: ping failed: %w", err)
	}
	return nil
}
