package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tour-booking-api/pkg/apiquery"
)

func TestWithTour(t *testing.T) {
	tourID := primitive.NewObjectID()

	t.Run("Narrows To Tour", func(t *testing.T) {
		q := apiquery.Build(nil, apiquery.RawQuery{"rating[gte]": {"4"}})
		got := withTour(q, tourID)
		assert.Equal(t, tourID, got.Filter["tour"])
		assert.Equal(t, bson.M{"$gte": int64(4)}, got.Filter["rating"])
		assert.NotContains(t, q.Filter, "tour")
	})

	t.Run("Client Tour Filter Is ANDed", func(t *testing.T) {
		q := apiquery.Query{Filter: bson.M{"tour": "x"}}
		got := withTour(q, tourID)
		assert.Equal(t, bson.M{"$and": bson.A{bson.M{"tour": "x"}, bson.M{"tour": tourID}}}, got.Filter)
	})

	t.Run("Keeps Author With User", func(t *testing.T) {
		q := apiquery.Build(nil, apiquery.RawQuery{"fields": {"review,user"}})
		got := withTour(q, primitive.NilObjectID)
		assert.Equal(t, bson.E{Key: "author", Value: 1}, got.Projection[len(got.Projection)-1])
		assert.Len(t, q.Projection, 2)
	})
}

func TestAuthorStages(t *testing.T) {
	stages := authorStages()
	require.Len(t, stages, 2)
	lookup := stages[0][0].Value.(bson.M)
	assert.Equal(t, "users", lookup["from"])
	assert.Equal(t, "author", lookup["as"])

	p := byID(primitive.NewObjectID())
	assert.Equal(t, "$match", p[0][0].Key)
	assert.Equal(t, "$project", p[len(p)-1][0].Key)
}
