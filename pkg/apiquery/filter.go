package apiquery

import (
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// operators maps the comparison names accepted in query keys
// (price[gte]=5 or price.gte=5) to their MongoDB form.
var operators = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
	"ne":  "$ne",
	"in":  "$in",
}

// Filter narrows the base filter with every non-excluded key of the raw query.
// Operator keys are rewritten structurally; values are never inspected for
// operator names.
func (b *Builder) Filter() *Builder {
	keys := make([]string, 0, len(b.raw))
	for k := range b.raw {
		if _, ok := b.excluded[k]; !ok {
			keys = append(keys, k)
		}
	}
	// Sorted so "price" is seen before "price[gte]" and the result is stable.
	sort.Strings(keys)

	predicate := bson.M{}
	for _, key := range keys {
		values := nonEmpty(b.raw[key])
		if len(values) == 0 {
			continue
		}
		field, op, ok := parseKey(key)
		if !ok {
			continue
		}

		if op == "" {
			predicate[field] = b.equality(field, values)
			continue
		}

		predicate[field] = b.condition(predicate[field], field, op, values)
	}

	b.query.Filter = merge(b.base, predicate)
	return b
}

// parseKey splits "price[gte]" or "price.gte" into field and operator.
// A dotted key whose last segment is not an operator is a nested field path.
// Keys naming a $-field or an unknown bracket operator are rejected.
func parseKey(key string) (field, op string, ok bool) {
	field = key
	if i := strings.IndexByte(key, '['); i >= 0 {
		if i == 0 || !strings.HasSuffix(key, "]") {
			return "", "", false
		}
		field, op = key[:i], key[i+1:len(key)-1]
		if _, known := operators[op]; !known {
			return "", "", false
		}
	} else if i := strings.LastIndexByte(key, '.'); i > 0 {
		if _, known := operators[key[i+1:]]; known {
			field, op = key[:i], key[i+1:]
		}
	}

	if field == "" || strings.ContainsAny(field, "[]") {
		return "", "", false
	}
	for _, seg := range strings.Split(field, ".") {
		if seg == "" || strings.HasPrefix(seg, "$") {
			return "", "", false
		}
	}
	return field, op, true
}

// equality builds the value for a plain key; repeated keys match any of the values.
func (b *Builder) equality(field string, values []string) any {
	if len(values) == 1 {
		return b.cast(field, values[0])
	}
	return bson.M{"$in": b.castAll(field, values)}
}

// condition adds an operator to the predicate already held for field. An
// earlier plain value is kept as $eq so both constraints apply.
func (b *Builder) condition(prev any, field, op string, values []string) bson.M {
	cond := bson.M{}
	switch p := prev.(type) {
	case nil:
	case bson.M:
		if isOperatorDoc(p) {
			cond = p
		} else {
			cond["$eq"] = p
		}
	default:
		cond["$eq"] = p
	}
	cond[operators[op]] = b.operand(field, op, values)
	return cond
}

// isOperatorDoc reports whether m is a condition document ({"$in": ...}).
func isOperatorDoc(m bson.M) bool {
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}
	return len(m) > 0
}

// operand builds the value for an operator key. "in" takes a comma list (or
// repeated keys); the other operators use the last value.
func (b *Builder) operand(field, op string, values []string) any {
	if op == "in" {
		var items []string
		for _, v := range values {
			items = append(items, splitList(v)...)
		}
		return b.castAll(field, items)
	}
	return b.cast(field, values[len(values)-1])
}

func (b *Builder) castAll(field string, values []string) bson.A {
	out := make(bson.A, 0, len(values))
	for _, v := range values {
		out = append(out, b.cast(field, v))
	}
	return out
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// merge returns the conjunction of base and predicate. Disjoint keys are
// merged into one document; overlapping keys fall back to $and.
func merge(base, predicate bson.M) bson.M {
	out := bson.M{}
	if len(predicate) == 0 {
		for k, v := range base {
			out[k] = v
		}
		return out
	}
	if len(base) == 0 {
		return predicate
	}
	for k := range predicate {
		if _, clash := base[k]; clash {
			return bson.M{"$and": bson.A{base, predicate}}
		}
	}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range predicate {
		out[k] = v
	}
	return out
}
