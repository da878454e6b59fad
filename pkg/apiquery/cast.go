package apiquery

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Caster converts a raw filter value to the type stored in a field. A false
// result leaves the value to the default coercion.
type Caster func(string) (any, bool)

// Casts maps a field path, as written in the query key, to its Caster.
type Casts map[string]Caster

// Option configures a Builder.
type Option func(*Builder)

// WithCasts types the filter values of the listed fields.
func WithCasts(casts Casts) Option {
	return func(b *Builder) {
		b.casts = casts
	}
}

// dateLayouts are tried in order by Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ObjectID casts a 24 character hex string to a primitive.ObjectID.
func ObjectID(s string) (any, bool) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return nil, false
	}
	return id, true
}

// Date casts an RFC 3339 timestamp or a bare date to a UTC time.Time.
func Date(s string) (any, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return nil, false
}

func (b *Builder) cast(field, s string) any {
	if c, ok := b.casts[field]; ok {
		if v, ok := c(s); ok {
			return v
		}
	}
	return coerce(s)
}
