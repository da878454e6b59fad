package apiquery_test

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"tour-booking-api/pkg/apiquery"
)

// run executes q against docs the way the collection would for the subset of
// operators the builder emits, returning the window and the total count.
func run(q apiquery.Query, docs []bson.M) ([]bson.M, int64, error) {
	var matched []bson.M
	for _, d := range docs {
		if matches(d, q.Filter) {
			matched = append(matched, d)
		}
	}
	total := int64(len(matched))
	if err := q.CheckPage(total); err != nil {
		return nil, total, err
	}

	sort.SliceStable(matched, func(i, j int) bool {
		for _, e := range q.Sort {
			c := compare(matched[i][e.Key], matched[j][e.Key])
			if c == 0 {
				continue
			}
			if e.Value.(int) < 0 {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	start := q.Skip
	if start > total {
		start = total
	}
	end := total
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}

	out := make([]bson.M, 0, end-start)
	for _, d := range matched[start:end] {
		out = append(out, project(d, q.Projection))
	}
	return out, total, nil
}

func matches(doc bson.M, filter bson.M) bool {
	for k, cond := range filter {
		if k == "$and" {
			for _, sub := range cond.(bson.A) {
				if !matches(doc, sub.(bson.M)) {
					return false
				}
			}
			continue
		}
		v := doc[k]
		ops, isOps := cond.(bson.M)
		if !isOps {
			if compare(v, cond) != 0 {
				return false
			}
			continue
		}
		for op, want := range ops {
			c := compare(v, want)
			ok := false
			switch op {
			case "$eq":
				ok = c == 0
			case "$gte":
				ok = c >= 0
			case "$gt":
				ok = c > 0
			case "$lte":
				ok = c <= 0
			case "$lt":
				ok = c < 0
			case "$ne":
				ok = c != 0
			case "$in":
				for _, item := range want.(bson.A) {
					if compare(v, item) == 0 {
						ok = true
					}
				}
			}
			if !ok {
				return false
			}
		}
	}
	return true
}

func compare(a, b any) int {
	fa, okA := number(a)
	fb, okB := number(b)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func project(doc bson.M, projection bson.D) bson.M {
	if len(projection) == 0 {
		return doc
	}
	out := bson.M{}
	if projection[0].Value.(int) == 0 {
		for k, v := range doc {
			out[k] = v
		}
		for _, e := range projection {
			delete(out, e.Key)
		}
		return out
	}
	out["_id"] = doc["_id"]
	for _, e := range projection {
		if v, ok := doc[e.Key]; ok {
			out[e.Key] = v
		}
	}
	return out
}
