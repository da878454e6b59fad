// Package apiquery turns a parsed query string into a MongoDB list query.
//
// A Builder applies four stages in a fixed order (filter, sort, field
// selection, pagination). Each stage overwrites its own part of the Query, so
// re-applying a stage is last-write-wins. The builder never fails: malformed
// control parameters fall back to their defaults. The only error it defines,
// ErrPageNotFound, is raised by Query.CheckPage once the caller knows how many
// documents match.
package apiquery

import (
	"errors"
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reserved control keys.
const (
	ParamPage   = "page"
	ParamSort   = "sort"
	ParamLimit  = "limit"
	ParamFields = "fields"
)

// Defaults applied when a control key is absent or malformed.
const (
	DefaultPage   = 1
	DefaultLimit  = 100
	DefaultSort   = "-createdAt"
	DefaultFields = "-__v"
)

// ErrPageNotFound is returned by Query.CheckPage when an explicitly requested
// page starts past the last matching document.
var ErrPageNotFound = errors.New("this page does not exist")

// DefaultExcludedFields returns the control keys that are never treated as filters.
func DefaultExcludedFields() []string {
	return []string{ParamPage, ParamSort, ParamLimit, ParamFields}
}

// RawQuery is a parsed query string. It has the same shape as url.Values.
type RawQuery map[string][]string

// Get returns the last non-empty value for key.
func (r RawQuery) Get(key string) string {
	values := r[key]
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != "" {
			return values[i]
		}
	}
	return ""
}

// Has reports whether key was supplied with a non-empty value.
func (r RawQuery) Has(key string) bool {
	return r.Get(key) != ""
}

// With returns a copy of r where each key of overrides replaces the original values.
func (r RawQuery) With(overrides map[string]string) RawQuery {
	out := make(RawQuery, len(r)+len(overrides))
	for k, v := range r {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range overrides {
		out[k] = []string{v}
	}
	return out
}

// Query is the fully configured, not yet executed list query.
type Query struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.D
	Skip       int64
	Limit      int64
	Page       int

	// PageRequested is set when the caller supplied page explicitly; only then
	// is the window checked against the matching document count.
	PageRequested bool
}

// CheckPage fails with ErrPageNotFound when the page was explicitly requested
// and its first document lies at or beyond total.
func (q Query) CheckPage(total int64) error {
	if !q.PageRequested {
		return nil
	}
	if q.Skip >= total {
		return ErrPageNotFound
	}
	return nil
}

// Inclusive reports whether the projection is an include list.
func (q Query) Inclusive() bool {
	return len(q.Projection) > 0 && q.Projection[0].Value == 1
}

// Selects reports whether a top-level field survives the projection. "_id"
// survives every include list.
func (q Query) Selects(field string) bool {
	inclusive := q.Inclusive()
	if inclusive && field == "_id" {
		return true
	}
	for _, e := range q.Projection {
		if e.Key == field || (inclusive && strings.HasPrefix(e.Key, field+".")) {
			return inclusive
		}
	}
	return !inclusive
}

// FindOptions maps the query onto collection Find options.
func (q Query) FindOptions() *options.FindOptions {
	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if len(q.Projection) > 0 {
		opts.SetProjection(q.Projection)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}

// Pipeline renders the query as an aggregation pipeline. Extra stages (lookups)
// run after the window and before the projection.
func (q Query) Pipeline(extra ...bson.D) mongo.Pipeline {
	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}
	pipeline := mongo.Pipeline{{{Key: "$match", Value: filter}}}
	if len(q.Sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: q.Sort}})
	}
	if q.Skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: q.Skip}})
	}
	if q.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: q.Limit}})
	}
	pipeline = append(pipeline, extra...)
	if len(q.Projection) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: q.Projection}})
	}
	return pipeline
}

// Builder accumulates a Query from a RawQuery. One Builder serves one request.
type Builder struct {
	raw      RawQuery
	base     bson.M
	excluded map[string]struct{}
	casts    Casts
	query    Query
}

// New creates a Builder narrowing base with the filters found in raw.
// Keys listed in excluded are never treated as filters.
func New(base bson.M, raw RawQuery, excluded []string, opts ...Option) *Builder {
	b := &Builder{
		raw:      raw,
		base:     base,
		excluded: make(map[string]struct{}, len(excluded)),
	}
	for _, k := range excluded {
		b.excluded[k] = struct{}{}
	}
	for _, opt := range opts {
		opt(b)
	}
	b.query.Filter = merge(base, nil)
	return b
}

// Build runs every stage in order with the default excluded fields.
func Build(base bson.M, raw RawQuery, opts ...Option) Query {
	return New(base, raw, DefaultExcludedFields(), opts...).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Query()
}

// Query returns the configured query.
func (b *Builder) Query() Query {
	return b.query
}

// Paginate applies the skip/limit window: skip = (page-1) * limit.
func (b *Builder) Paginate() *Builder {
	page := ParseIntDefault(b.raw.Get(ParamPage), DefaultPage)
	limit := ParseIntDefault(b.raw.Get(ParamLimit), DefaultLimit)

	skip := int64(math.MaxInt64)
	if int64(page-1) <= math.MaxInt64/int64(limit) {
		skip = int64(page-1) * int64(limit)
	}

	b.query.Page = page
	b.query.Skip = skip
	b.query.Limit = int64(limit)
	b.query.PageRequested = b.raw.Has(ParamPage)
	return b
}
