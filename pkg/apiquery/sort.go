package apiquery

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Sort orders by the comma separated sort keys; a leading "-" sorts
// descending. Without a usable key the order is DefaultSort.
func (b *Builder) Sort() *Builder {
	order := parseSort(b.raw.Get(ParamSort))
	if len(order) == 0 {
		order = parseSort(DefaultSort)
	}
	b.query.Sort = order
	return b
}

// LimitFields projects the comma separated fields. A list is either an
// include list or, when any key starts with "-", an exclude list of those
// keys. Without a usable key the projection is DefaultFields.
func (b *Builder) LimitFields() *Builder {
	projection := parseProjection(b.raw.Get(ParamFields))
	if len(projection) == 0 {
		projection = parseProjection(DefaultFields)
	}
	b.query.Projection = projection
	return b
}

func parseSort(s string) bson.D {
	keys := splitList(s)
	order := make(bson.D, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		dir := 1
		switch {
		case strings.HasPrefix(k, "-"):
			dir, k = -1, k[1:]
		case strings.HasPrefix(k, "+"):
			k = k[1:]
		}
		if !validField(k) {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		order = append(order, bson.E{Key: k, Value: dir})
	}
	return order
}

func parseProjection(s string) bson.D {
	keys := splitList(s)
	exclude := false
	for _, k := range keys {
		if strings.HasPrefix(k, "-") {
			exclude = true
			break
		}
	}

	projection := make(bson.D, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		hidden := strings.HasPrefix(k, "-")
		if exclude != hidden {
			continue
		}
		k = strings.TrimPrefix(k, "-")
		if !validField(k) {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if exclude {
			projection = append(projection, bson.E{Key: k, Value: 0})
		} else {
			projection = append(projection, bson.E{Key: k, Value: 1})
		}
	}
	return projection
}

func validField(k string) bool {
	return k != "" && !strings.HasPrefix(k, "$") && !strings.ContainsAny(k, "[]")
}
