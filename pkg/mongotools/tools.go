package mongotools

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/intersched/pkg/errors"
)

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(map[string]any, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": bson.M(s)}
}

func Inc(field string, delta int64) bson.M {
	return bson.M{"$inc": bson.M{field: delta}}
}

func All() bson.M {
	return bson.M{}
}

func ID(id any) bson.M {
	return bson.M{"_id": id}
}

func Path(fields ...string) string {
	return strings.Join(fields, ".")
}

// Decode drains the cursor. The result is never nil.
func Decode[T any](ctx context.Context, c *mongo.Cursor) ([]T, error) {
	defer c.Close(ctx)

	items := make([]T, 0)
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}
		items = append(items, item)
	}

	return items, c.Err()
}

// FindOne returns nil if nothing matched.
func FindOne[T any](r *mongo.SingleResult) (*T, error) {
	var item T
	err := r.Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
