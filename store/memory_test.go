package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/rajdwivedi/aeonaxy-server/store"
)

type record struct {
	ID        bson.ObjectID   `bson:"_id,omitempty"`
	Name      string          `bson:"name"`
	Tags      []bson.ObjectID `bson:"tags"`
	Count     int             `bson:"count"`
	CreatedAt time.Time       `bson:"createdAt"`
}

func TestMemoryStore_InsertAndFindOne(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	id, err := s.InsertOne(ctx, "records", record{Name: "first", Tags: []bson.ObjectID{}})
	require.NoError(t, err)
	assert.False(t, id.IsZero(), "InsertOne should assign an id")

	var got record
	require.NoError(t, s.FindOne(ctx, "records", bson.M{"_id": id}, &got))
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, id, got.ID)

	err = s.FindOne(ctx, "records", bson.M{"name": "missing"}, &got)
	assert.Equal(t, store.ErrNoDocuments, err)
}

func TestMemoryStore_Find(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	a, err := s.InsertOne(ctx, "records", record{Name: "a"})
	require.NoError(t, err)
	b, err := s.InsertOne(ctx, "records", record{Name: "b"})
	require.NoError(t, err)
	_, err = s.InsertOne(ctx, "records", record{Name: "c"})
	require.NoError(t, err)

	var got []record
	require.NoError(t, s.Find(ctx, "records", bson.M{"_id": bson.M{"$in": []bson.ObjectID{a, b}}}, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name)

	require.NoError(t, s.Find(ctx, "records", bson.M{}, &got))
	assert.Len(t, got, 3)
}

func TestMemoryStore_UpdateOne(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	id, err := s.InsertOne(ctx, "records", record{Name: "x", Tags: []bson.ObjectID{}})
	require.NoError(t, err)
	tag := bson.NewObjectID()

	t.Run("Push", func(t *testing.T) {
		modified, err := s.UpdateOne(ctx, "records", bson.M{"_id": id},
			bson.M{"$push": bson.M{"tags": tag}, "$inc": bson.M{"count": 1}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), modified)

		var got record
		require.NoError(t, s.FindOne(ctx, "records", bson.M{"_id": id}, &got))
		assert.Equal(t, []bson.ObjectID{tag}, got.Tags)
		assert.Equal(t, 1, got.Count)
	})

	t.Run("AddToSetDuplicate", func(t *testing.T) {
		modified, err := s.UpdateOne(ctx, "records", bson.M{"_id": id},
			bson.M{"$addToSet": bson.M{"tags": tag}})
		require.NoError(t, err)
		assert.Equal(t, int64(0), modified, "duplicate add-to-set should modify nothing")
	})

	t.Run("Pull", func(t *testing.T) {
		modified, err := s.UpdateOne(ctx, "records", bson.M{"_id": id},
			bson.M{"$pull": bson.M{"tags": tag}, "$inc": bson.M{"count": -1}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), modified)

		var got record
		require.NoError(t, s.FindOne(ctx, "records", bson.M{"_id": id}, &got))
		assert.Empty(t, got.Tags)
		assert.Equal(t, 0, got.Count)
	})

	t.Run("NoMatch", func(t *testing.T) {
		modified, err := s.UpdateOne(ctx, "records", bson.M{"_id": bson.NewObjectID()},
			bson.M{"$set": bson.M{"name": "y"}})
		require.NoError(t, err)
		assert.Equal(t, int64(0), modified)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	old := record{Name: "old", CreatedAt: time.Now().Add(-48 * time.Hour)}
	fresh := record{Name: "fresh", CreatedAt: time.Now()}
	_, err := s.InsertOne(ctx, "records", old)
	require.NoError(t, err)
	_, err = s.InsertOne(ctx, "records", fresh)
	require.NoError(t, err)

	t.Run("DeleteManyByAge", func(t *testing.T) {
		deleted, err := s.DeleteMany(ctx, "records",
			bson.M{"createdAt": bson.M{"$lt": time.Now().Add(-24 * time.Hour)}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
		assert.Equal(t, 1, s.Count("records"))
	})

	t.Run("DeleteOneMissing", func(t *testing.T) {
		deleted, err := s.DeleteOne(ctx, "records", bson.M{"name": "old"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}

func TestParseID(t *testing.T) {
	id := bson.NewObjectID()

	parsed, err := store.ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = store.ParseID("not-a-valid-id")
	var invalid *store.InvalidIDError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "not-a-valid-id", invalid.ID)
}

func TestParseIDs(t *testing.T) {
	a, b := bson.NewObjectID(), bson.NewObjectID()

	ids, err := store.ParseIDs([]string{a.Hex(), b.Hex()})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{a, b}, ids)

	_, err = store.ParseIDs([]string{a.Hex(), "bogus"})
	var invalid *store.InvalidIDError
	assert.ErrorAs(t, err, &invalid)
}
