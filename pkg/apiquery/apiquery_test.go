package apiquery_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tour-booking-api/pkg/apiquery"
)

func build(raw apiquery.RawQuery) apiquery.Query {
	return apiquery.New(nil, raw, apiquery.DefaultExcludedFields()).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Query()
}

func numberedDocs(n int) []bson.M {
	docs := make([]bson.M, 0, n)
	for i := 1; i <= n; i++ {
		docs = append(docs, bson.M{"_id": i, "n": i, "name": fmt.Sprintf("tour-%02d", i)})
	}
	return docs
}

func TestSort(t *testing.T) {
	t.Run("Default Is Newest First", func(t *testing.T) {
		q := build(apiquery.RawQuery{"price": {"5"}})
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, q.Sort)
	})

	t.Run("Multi Key", func(t *testing.T) {
		q := build(apiquery.RawQuery{"sort": {"-price,name"}})
		assert.Equal(t, bson.D{{Key: "price", Value: -1}, {Key: "name", Value: 1}}, q.Sort)
	})

	t.Run("Three Keys And Blanks", func(t *testing.T) {
		q := build(apiquery.RawQuery{"sort": {" -ratingsAverage, ,price,+duration"}})
		assert.Equal(t, bson.D{
			{Key: "ratingsAverage", Value: -1},
			{Key: "price", Value: 1},
			{Key: "duration", Value: 1},
		}, q.Sort)
	})

	t.Run("Unusable Falls Back", func(t *testing.T) {
		q := build(apiquery.RawQuery{"sort": {",$where,-"}})
		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, q.Sort)
	})

	t.Run("Orders Documents", func(t *testing.T) {
		docs := []bson.M{
			{"_id": 1, "price": 300, "name": "b"},
			{"_id": 2, "price": 500, "name": "a"},
			{"_id": 3, "price": 300, "name": "a"},
		}
		out, _, err := run(build(apiquery.RawQuery{"sort": {"-price,name"}}), docs)
		require.NoError(t, err)
		ids := []any{out[0]["_id"], out[1]["_id"], out[2]["_id"]}
		assert.Equal(t, []any{2, 3, 1}, ids)
	})
}

func TestFilter(t *testing.T) {
	t.Run("Bracket Operator", func(t *testing.T) {
		q := build(apiquery.RawQuery{"price[gte]": {"100"}})
		assert.Equal(t, bson.M{"price": bson.M{"$gte": int64(100)}}, q.Filter)

		docs := []bson.M{{"_id": 1, "price": 99}, {"_id": 2, "price": 100}, {"_id": 3, "price": 250.5}}
		out, _, err := run(q, docs)
		require.NoError(t, err)
		require.Len(t, out, 2)
		for _, d := range out {
			assert.NotEqual(t, 99, d["price"])
		}
	})

	t.Run("Dot Operator And Range", func(t *testing.T) {
		q := build(apiquery.RawQuery{"duration.gt": {"4"}, "duration[lte]": {"9"}})
		assert.Equal(t, bson.M{"duration": bson.M{"$gt": int64(4), "$lte": int64(9)}}, q.Filter)
	})

	t.Run("Nested Field Path Kept", func(t *testing.T) {
		q := build(apiquery.RawQuery{"startLocation.description": {"Miami"}})
		assert.Equal(t, bson.M{"startLocation.description": "Miami"}, q.Filter)
	})

	t.Run("Values Are Not Rewritten", func(t *testing.T) {
		q := build(apiquery.RawQuery{"name": {"the gte lt tour"}, "summary[ne]": {"gt"}})
		assert.Equal(t, bson.M{
			"name":    "the gte lt tour",
			"summary": bson.M{"$ne": "gt"},
		}, q.Filter)
	})

	t.Run("In And Repeated Keys", func(t *testing.T) {
		q := build(apiquery.RawQuery{
			"difficulty[in]": {"easy,medium"},
			"duration":       {"5", "9"},
		})
		assert.Equal(t, bson.M{
			"difficulty": bson.M{"$in": bson.A{"easy", "medium"}},
			"duration":   bson.M{"$in": bson.A{int64(5), int64(9)}},
		}, q.Filter)
	})

	t.Run("Coercion", func(t *testing.T) {
		q := build(apiquery.RawQuery{"secretTour": {"false"}, "ratingsAverage[gt]": {"4.5"}, "slug": {"inf"}})
		assert.Equal(t, bson.M{
			"secretTour":     false,
			"ratingsAverage": bson.M{"$gt": 4.5},
			"slug":           "inf",
		}, q.Filter)
	})

	t.Run("Injection Keys Dropped", func(t *testing.T) {
		q := build(apiquery.RawQuery{"$where": {"1"}, "price[where]": {"1"}, "a.$gt": {"1"}, "[gte]": {"1"}})
		assert.Empty(t, q.Filter)
	})

	t.Run("Only Excluded Keys Match All", func(t *testing.T) {
		q := build(apiquery.RawQuery{"page": {"1"}, "sort": {"name"}, "limit": {"3"}, "fields": {"name"}})
		assert.Empty(t, q.Filter)

		out, total, err := run(q, numberedDocs(3))
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, out, 3)
	})

	t.Run("Base Filter Narrowed", func(t *testing.T) {
		base := bson.M{"secretTour": bson.M{"$ne": true}}
		q := apiquery.New(base, apiquery.RawQuery{"price[lt]": {"500"}}, apiquery.DefaultExcludedFields()).Filter().Query()
		assert.Equal(t, bson.M{
			"secretTour": bson.M{"$ne": true},
			"price":      bson.M{"$lt": int64(500)},
		}, q.Filter)
		// base must stay untouched
		assert.Len(t, base, 1)
	})

	t.Run("Base Filter Clash Uses And", func(t *testing.T) {
		base := bson.M{"tour": "t1"}
		q := apiquery.New(base, apiquery.RawQuery{"tour": {"t2"}}, nil).Filter().Query()
		assert.Equal(t, bson.M{"$and": bson.A{bson.M{"tour": "t1"}, bson.M{"tour": "t2"}}}, q.Filter)
	})

	t.Run("Custom Excluded Set", func(t *testing.T) {
		q := apiquery.New(nil, apiquery.RawQuery{"page": {"2"}, "q": {"x"}}, []string{"q"}).Filter().Query()
		assert.Equal(t, bson.M{"page": int64(2)}, q.Filter)
	})

	t.Run("Equality Kept Beside Operator", func(t *testing.T) {
		q := build(apiquery.RawQuery{"price": {"500"}, "price[gte]": {"100"}})
		assert.Equal(t, bson.M{"price": bson.M{"$eq": int64(500), "$gte": int64(100)}}, q.Filter)

		docs := []bson.M{{"_id": 1, "price": 500}, {"_id": 2, "price": 300}}
		out, _, err := run(q, docs)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0]["_id"])
	})

	t.Run("Repeated Values Beside Operator", func(t *testing.T) {
		q := build(apiquery.RawQuery{"duration": {"5", "9"}, "duration[lt]": {"7"}})
		assert.Equal(t, bson.M{"duration": bson.M{"$in": bson.A{int64(5), int64(9)}, "$lt": int64(7)}}, q.Filter)
	})
}

func TestFilterCasts(t *testing.T) {
	casts := apiquery.Casts{
		"_id":        apiquery.ObjectID,
		"tour":       apiquery.ObjectID,
		"startDates": apiquery.Date,
		"createdAt":  apiquery.Date,
	}
	const hex = "5c88fa8cf4afda39709c2955"
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)

	t.Run("ObjectID Equality", func(t *testing.T) {
		q := apiquery.Build(nil, apiquery.RawQuery{"tour": {hex}}, apiquery.WithCasts(casts))
		assert.Equal(t, bson.M{"tour": id}, q.Filter)
	})

	t.Run("ObjectID In List", func(t *testing.T) {
		q := apiquery.Build(nil, apiquery.RawQuery{"_id[in]": {hex + ",x"}}, apiquery.WithCasts(casts))
		assert.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{id, "x"}}}, q.Filter)
	})

	t.Run("Date Range", func(t *testing.T) {
		q := apiquery.Build(nil, apiquery.RawQuery{
			"startDates[gte]": {"2021-06-01"},
			"createdAt[lt]":   {"2021-06-01T10:30:00+02:00"},
		}, apiquery.WithCasts(casts))
		assert.Equal(t, bson.M{
			"startDates": bson.M{"$gte": time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)},
			"createdAt":  bson.M{"$lt": time.Date(2021, 6, 1, 8, 30, 0, 0, time.UTC)},
		}, q.Filter)
	})

	t.Run("Unparsable Falls Back", func(t *testing.T) {
		q := apiquery.Build(nil, apiquery.RawQuery{"tour": {"12"}, "startDates": {"soon"}}, apiquery.WithCasts(casts))
		assert.Equal(t, bson.M{"tour": int64(12), "startDates": "soon"}, q.Filter)
	})

	t.Run("Uncast Fields Unchanged", func(t *testing.T) {
		q := apiquery.Build(nil, apiquery.RawQuery{"name": {hex}}, apiquery.WithCasts(casts))
		assert.Equal(t, bson.M{"name": hex}, q.Filter)
	})
}

func TestLimitFields(t *testing.T) {
	t.Run("Default Hides Version", func(t *testing.T) {
		q := build(apiquery.RawQuery{})
		assert.Equal(t, bson.D{{Key: "__v", Value: 0}}, q.Projection)
	})

	t.Run("Include List", func(t *testing.T) {
		q := build(apiquery.RawQuery{"fields": {"name,price"}})
		assert.Equal(t, bson.D{{Key: "name", Value: 1}, {Key: "price", Value: 1}}, q.Projection)

		docs := []bson.M{{"_id": 1, "name": "a", "price": 10, "duration": 5, "summary": "s"}}
		out, _, err := run(q, docs)
		require.NoError(t, err)
		assert.Equal(t, bson.M{"_id": 1, "name": "a", "price": 10}, out[0])
	})

	t.Run("Exclude List Ignores Mixed Keys", func(t *testing.T) {
		q := build(apiquery.RawQuery{"fields": {"-summary,name,-description"}})
		assert.Equal(t, bson.D{{Key: "summary", Value: 0}, {Key: "description", Value: 0}}, q.Projection)
	})
}

func TestSelects(t *testing.T) {
	include := build(apiquery.RawQuery{"fields": {"name,startLocation.address"}})
	assert.True(t, include.Inclusive())
	assert.True(t, include.Selects("_id"))
	assert.True(t, include.Selects("name"))
	assert.True(t, include.Selects("startLocation"))
	assert.False(t, include.Selects("price"))

	exclude := build(apiquery.RawQuery{})
	assert.False(t, exclude.Inclusive())
	assert.True(t, exclude.Selects("price"))
	assert.False(t, exclude.Selects("__v"))
}

func TestPaginate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q := build(apiquery.RawQuery{})
		assert.Equal(t, int64(0), q.Skip)
		assert.Equal(t, int64(apiquery.DefaultLimit), q.Limit)
		assert.False(t, q.PageRequested)
	})

	t.Run("Malformed Values Default", func(t *testing.T) {
		q := build(apiquery.RawQuery{"page": {"abc"}, "limit": {"-4"}})
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, int64(0), q.Skip)
		assert.Equal(t, int64(100), q.Limit)
	})

	t.Run("Last Page Partially Filled", func(t *testing.T) {
		q := build(apiquery.RawQuery{"page": {"3"}, "limit": {"10"}, "sort": {"n"}})
		assert.Equal(t, int64(20), q.Skip)
		assert.Equal(t, int64(10), q.Limit)

		out, _, err := run(q, numberedDocs(25))
		require.NoError(t, err)
		require.Len(t, out, 5)
		assert.Equal(t, 21, out[0]["n"])
		assert.Equal(t, 25, out[4]["n"])
	})

	t.Run("Explicit Page Out Of Range", func(t *testing.T) {
		q := build(apiquery.RawQuery{"page": {"5"}, "limit": {"10"}})
		assert.Equal(t, int64(40), q.Skip)

		_, _, err := run(q, numberedDocs(25))
		assert.ErrorIs(t, err, apiquery.ErrPageNotFound)
		assert.EqualError(t, err, "this page does not exist")
	})

	t.Run("Implicit Window Out Of Range Is Empty", func(t *testing.T) {
		q := build(apiquery.RawQuery{"limit": {"10"}})
		q.Skip = 40

		out, _, err := run(q, numberedDocs(25))
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Overflow Clamped", func(t *testing.T) {
		q := build(apiquery.RawQuery{"page": {"9223372036854775807"}, "limit": {"1000"}})
		assert.ErrorIs(t, q.CheckPage(25), apiquery.ErrPageNotFound)
	})
}

func TestStagesLastWriteWins(t *testing.T) {
	b := apiquery.New(nil, apiquery.RawQuery{"sort": {"name"}, "price": {"10"}}, apiquery.DefaultExcludedFields())
	first := b.Filter().Sort().Query()
	second := b.Filter().Sort().Query()
	assert.Equal(t, first.Filter, second.Filter)
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, second.Sort)
}

func TestQueryOptions(t *testing.T) {
	q := build(apiquery.RawQuery{"page": {"2"}, "limit": {"5"}, "fields": {"name"}})

	opts := q.FindOptions()
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(5), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, opts.Projection)

	lookup := bson.D{{Key: "$lookup", Value: bson.M{"from": "users"}}}
	pipeline := q.Pipeline(lookup)
	require.Len(t, pipeline, 6)
	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, "$sort", pipeline[1][0].Key)
	assert.Equal(t, "$skip", pipeline[2][0].Key)
	assert.Equal(t, "$limit", pipeline[3][0].Key)
	assert.Equal(t, "$lookup", pipeline[4][0].Key)
	assert.Equal(t, "$project", pipeline[5][0].Key)
}

func TestRawQueryWith(t *testing.T) {
	raw := apiquery.RawQuery{"limit": {"50"}, "price[lt]": {"900"}}
	aliased := raw.With(map[string]string{"limit": "5", "sort": "-ratingsAverage,price"})

	assert.Equal(t, "5", aliased.Get("limit"))
	assert.Equal(t, "900", aliased.Get("price[lt]"))
	assert.Equal(t, "50", raw.Get("limit"))
}

func TestFilterAllowed(t *testing.T) {
	body := map[string]any{"name": "Jo", "email": "jo@example.com", "role": "admin"}
	assert.Equal(t, map[string]any{"name": "Jo", "email": "jo@example.com"}, apiquery.FilterAllowed(body, "name", "email"))
	assert.Empty(t, apiquery.FilterAllowed(body))
}

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 7},
		{"3", 3},
		{" 12 ", 12},
		{"0", 7},
		{"-2", 7},
		{"2.5", 7},
		{"x", 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, apiquery.ParseIntDefault(tt.in, 7), "input %q", tt.in)
	}
}
