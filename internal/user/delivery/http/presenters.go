package http

import (
	"tour-booking-api/internal/model"
	"tour-booking-api/internal/user"
	"tour-booking-api/pkg/apiquery"
	"tour-booking-api/pkg/response"
)

// --- Request DTOs ---

type signUpReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (r signUpReq) toInput() user.SignUpInput {
	return user.SignUpInput(r)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput(r)
}

type forgotPasswordReq struct {
	Email string `json:"email" binding:"required"`
}

type resetPasswordReq struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (r resetPasswordReq) toInput(token string) user.ResetPasswordInput {
	return user.ResetPasswordInput{
		Token:           token,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

type updatePasswordReq struct {
	PasswordCurrent string `json:"passwordCurrent" binding:"required"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (r updatePasswordReq) toInput() user.UpdatePasswordInput {
	return user.UpdatePasswordInput(r)
}

type createReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Role            string `json:"role"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
		Role:            model.Role(r.Role),
	}
}

type updateReq struct {
	ID    string  `json:"-"` // populated from URI param
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
	Photo *string `json:"photo"`
}

func (r updateReq) toInput() user.UpdateInput {
	in := user.UpdateInput{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Photo: r.Photo,
	}
	if r.Role != nil {
		role := model.Role(*r.Role)
		in.Role = &role
	}
	return in
}

// --- Response DTOs ---

type userResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Photo: u.Photo,
		Role:  string(u.Role),
	}
}

type detailResp struct {
	User userResp `json:"user"`
}

func (h *handler) newDetailResp(u user.User) detailResp {
	return detailResp{User: newUserResp(u)}
}

func projectUser(u user.User, q apiquery.Query) (any, error) {
	resp := newUserResp(u)
	if len(q.Projection) == 0 {
		return resp, nil
	}
	return response.Pick(resp, func(key string) bool {
		if key == "id" {
			key = "_id"
		}
		return q.Selects(key)
	})
}

func (h *handler) newListResp(out user.ListOutput) ([]any, error) {
	items := make([]any, len(out.Users))
	for i, u := range out.Users {
		item, err := projectUser(u, out.Query)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}
