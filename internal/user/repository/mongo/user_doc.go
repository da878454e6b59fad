package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tour-booking-api/internal/model"
	"tour-booking-api/internal/user"
)

type userDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Name                 string             `bson:"name"`
	Email                string             `bson:"email"`
	Photo                string             `bson:"photo"`
	Role                 string             `bson:"role"`
	Password             string             `bson:"password,omitempty"`
	PasswordChangedAt    *time.Time         `bson:"passwordChangedAt,omitempty"`
	PasswordResetToken   string             `bson:"passwordResetToken,omitempty"`
	PasswordResetExpires *time.Time         `bson:"passwordResetExpires,omitempty"`
	Active               *bool              `bson:"active,omitempty"`
}

func (d userDoc) toUser() user.User {
	u := user.User{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		Email:              d.Email,
		Photo:              d.Photo,
		Role:               model.Role(d.Role),
		Password:           d.Password,
		PasswordResetToken: d.PasswordResetToken,
		Active:             d.Active == nil || *d.Active,
	}
	if d.PasswordChangedAt != nil {
		u.PasswordChangedAt = *d.PasswordChangedAt
	}
	if d.PasswordResetExpires != nil {
		u.PasswordResetExpires = *d.PasswordResetExpires
	}
	return u
}

func toUsers(docs []userDoc) []user.User {
	out := make([]user.User, len(docs))
	for i, d := range docs {
		out[i] = d.toUser()
	}
	return out
}
