package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is an in-memory Store used by the repository tests. It supports
// the filter shapes (field equality, $in, $lt) and update operators ($set,
// $push, $addToSet, $pull, $inc) the repositories rely on.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

// Count reports the number of documents in a collection.
func (s *MemoryStore) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return decodeInto(doc, out)
		}
	}
	return ErrNoDocuments
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter bson.M, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slice := reflect.ValueOf(out).Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, 0))
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		elem := reflect.New(slice.Type().Elem())
		if err := decodeInto(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc any) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := bson.Marshal(doc)
	if err != nil {
		return bson.ObjectID{}, err
	}
	stored := bson.M{}
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return bson.ObjectID{}, err
	}

	id, ok := stored["_id"].(bson.ObjectID)
	if !ok || id.IsZero() {
		id = bson.NewObjectID()
		stored["_id"] = id
	}
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *MemoryStore) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			changed, err := applyUpdate(doc, update)
			if err != nil {
				return 0, err
			}
			if changed {
				return 1, nil
			}
			return 0, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []bson.M
	var deleted int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return deleted, nil
}

func decodeInto(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matches(doc, filter bson.M) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if cond, isCond := want.(bson.M); isCond {
			if !matchesCondition(got, cond) {
				return false
			}
			continue
		}
		if !ok || !equalValues(got, want) {
			return false
		}
	}
	return true
}

func matchesCondition(got any, cond bson.M) bool {
	for op, arg := range cond {
		switch op {
		case "$in":
			if !containsValue(arg, got) {
				return false
			}
		case "$lt":
			gt, ok1 := asTime(got)
			at, ok2 := asTime(arg)
			if !ok1 || !ok2 || !gt.Before(at) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func containsValue(list, v any) bool {
	rv := reflect.ValueOf(list)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if equalValues(rv.Index(i).Interface(), v) {
			return true
		}
	}
	return false
}

// equalValues compares a stored value against a filter value, tolerating the
// type normalization the bson round trip applies (int widths, DateTime).
func equalValues(a, b any) bool {
	if ai, ok1 := asObjectID(a); ok1 {
		bi, ok2 := asObjectID(b)
		return ok2 && ai == bi
	}
	if an, ok1 := asInt64(a); ok1 {
		bn, ok2 := asInt64(b)
		return ok2 && an == bn
	}
	if at, ok1 := asTime(a); ok1 {
		bt, ok2 := asTime(b)
		return ok2 && at.Equal(bt)
	}
	return reflect.DeepEqual(a, b)
}

func asObjectID(v any) (bson.ObjectID, bool) {
	id, ok := v.(bson.ObjectID)
	return id, ok
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case bson.DateTime:
		return t.Time(), true
	}
	return time.Time{}, false
}

func applyUpdate(doc, update bson.M) (bool, error) {
	changed := false
	for op, arg := range update {
		fields, ok := arg.(bson.M)
		if !ok {
			return changed, fmt.Errorf("memory store: malformed %s argument", op)
		}
		for field, v := range fields {
			switch op {
			case "$set":
				if !equalValues(doc[field], v) {
					doc[field] = normalize(v)
					changed = true
				}
			case "$push":
				doc[field] = appendValue(doc[field], v)
				changed = true
			case "$addToSet":
				if !containsValue(toArray(doc[field]), v) {
					doc[field] = appendValue(doc[field], v)
					changed = true
				}
			case "$pull":
				arr := toArray(doc[field])
				var kept bson.A
				for _, item := range arr {
					if equalValues(item, v) {
						changed = true
						continue
					}
					kept = append(kept, item)
				}
				if kept == nil {
					kept = bson.A{}
				}
				doc[field] = kept
			case "$inc":
				cur, _ := asInt64(doc[field])
				delta, ok := asInt64(v)
				if !ok {
					return changed, fmt.Errorf("memory store: non-numeric $inc on %s", field)
				}
				if delta != 0 {
					doc[field] = cur + delta
					changed = true
				}
			default:
				return changed, fmt.Errorf("memory store: unsupported operator %s", op)
			}
		}
	}
	return changed, nil
}

func appendValue(cur, v any) bson.A {
	arr := toArray(cur)
	return append(arr, v)
}

func toArray(v any) bson.A {
	if v == nil {
		return bson.A{}
	}
	if a, ok := v.(bson.A); ok {
		return a
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return bson.A{}
	}
	out := make(bson.A, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}

// normalize round-trips a value through bson so stored documents keep the
// same representation whether they came from InsertOne or an update.
func normalize(v any) any {
	wrapper := bson.M{"v": v}
	raw, err := bson.Marshal(wrapper)
	if err != nil {
		return v
	}
	decoded := bson.M{}
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		return v
	}
	return decoded["v"]
}
