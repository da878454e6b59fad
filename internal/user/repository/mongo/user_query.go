package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	repo "tour-booking-api/internal/user/repository"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/mongodb"
)

// secretFields are only loaded on request.
var secretFields = []string{"password", "passwordResetToken", "passwordResetExpires"}

var isActive = bson.M{"$ne": false}

// active narrows filter to active users. A filter on active is ANDed.
func active(filter bson.M) bson.M {
	out := make(bson.M, len(filter)+1)
	for k, v := range filter {
		out[k] = v
	}
	if _, clash := out["active"]; clash {
		return bson.M{"$and": bson.A{out, bson.M{"active": isActive}}}
	}
	out["active"] = isActive
	return out
}

// hideSecrets drops the secret fields from a list projection.
func hideSecrets(q apiquery.Query) apiquery.Query {
	if q.Inclusive() {
		kept := make(bson.D, 0, len(q.Projection))
		for _, e := range q.Projection {
			if !isSecret(e.Key) {
				kept = append(kept, e)
			}
		}
		if len(kept) > 0 {
			q.Projection = kept
			return q
		}
		q.Projection = nil
	}

	projection := make(bson.D, 0, len(q.Projection)+len(secretFields))
	for _, e := range q.Projection {
		if !isSecret(e.Key) {
			projection = append(projection, e)
		}
	}
	for _, f := range secretFields {
		projection = append(projection, bson.E{Key: f, Value: 0})
	}
	q.Projection = projection
	return q
}

func isSecret(field string) bool {
	for _, f := range secretFields {
		if f == field {
			return true
		}
	}
	return false
}

// secretsProjection hides the secret fields from single reads.
func secretsProjection() bson.D {
	return hideSecrets(apiquery.Query{Projection: bson.D{{Key: "__v", Value: 0}}}).Projection
}

// buildGetOneFilter ANDs every non-empty option. ok is false for a malformed id.
func (r *implRepository) buildGetOneFilter(opt repo.GetOneUserOptions) (bson.M, bool) {
	filter := bson.M{}
	if opt.ID != "" {
		id, ok := mongodb.ObjectID(opt.ID)
		if !ok {
			return nil, false
		}
		filter["_id"] = id
	}
	if opt.Email != "" {
		filter["email"] = opt.Email
	}
	if opt.ResetToken != "" {
		filter["passwordResetToken"] = opt.ResetToken
		filter["passwordResetExpires"] = bson.M{"$gt": opt.ResetAfter}
	}
	return active(filter), true
}

// buildUpdate renders the $set and $unset documents of a partial update.
func (r *implRepository) buildUpdate(opt repo.UpdateUserOptions) bson.M {
	set := bson.M{}
	setIf(set, "name", opt.Name)
	setIf(set, "email", opt.Email)
	setIf(set, "photo", opt.Photo)
	setIf(set, "password", opt.Password)
	setIf(set, "passwordChangedAt", opt.PasswordChangedAt)
	setIf(set, "passwordResetToken", opt.PasswordResetToken)
	setIf(set, "passwordResetExpires", opt.PasswordResetExpires)
	setIf(set, "active", opt.Active)
	if opt.Role != nil {
		set["role"] = string(*opt.Role)
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if opt.ClearReset {
		update["$unset"] = bson.M{"passwordResetToken": "", "passwordResetExpires": ""}
	}
	return update
}

func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}
