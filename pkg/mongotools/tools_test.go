package mongotools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSetAll(t *testing.T) {
	got := SetAll(bson.M{"name": "a"}, bson.M{"title": "b"})
	require.Equal(t, bson.M{"$set": bson.M{"name": "a", "title": "b"}}, got)
}

func TestHelpers(t *testing.T) {
	require.Equal(t, bson.M{"_id": int64(3)}, ID(int64(3)))
	require.Equal(t, bson.M{"$inc": bson.M{"seq": int64(1)}}, Inc("seq", 1))
	require.Equal(t, "a.b.c", Path("a", "b", "c"))
	require.Empty(t, All())
}
