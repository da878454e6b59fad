package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-booking-api/internal/middleware"
	"tour-booking-api/internal/user"
	"tour-booking-api/pkg/response"
)

// sendToken answers an authentication with the token in the body and the jwt cookie.
func (h *handler) sendToken(c *gin.Context, code int, out user.AuthOutput) {
	h.setTokenCookie(c, out.Token, h.cfg.CookieTTL)
	response.WithToken(c, code, out.Token, h.newDetailResp(out.User))
}

// SignUp godoc
// @Summary     Sign up
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Account"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid input data"
// @Router      /api/v1/users/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req signUpReq
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.SignUp", err)
		return
	}

	h.sendToken(c, http.StatusCreated, output)
}

// Login godoc
// @Summary     Log in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Please provide email and password"
// @Failure     401 {object} response.Resp "Incorrect email or password"
// @Router      /api/v1/users/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Login", err)
		return
	}

	h.sendToken(c, http.StatusOK, output)
}

// Logout godoc
// @Summary     Log out
// @Description Overwrites the jwt cookie with a short lived dummy value.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/users/logout [GET]
func (h *handler) Logout(c *gin.Context) {
	h.setTokenCookie(c, loggedOutValue, logoutTTL)
	c.JSON(http.StatusOK, response.Resp{Status: response.StatusSuccess})
}

// ForgotPassword godoc
// @Summary     Request a password reset
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body forgotPasswordReq true "Email"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "There is no user with that email address"
// @Failure     500 {object} response.Resp "There was an error sending the email"
// @Router      /api/v1/users/forgotPassword [POST]
func (h *handler) ForgotPassword(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processForgotPasswordReq(c)
	if err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	if err := h.uc.ForgotPassword(ctx, input); err != nil {
		h.reportError(c, "uc.ForgotPassword", err)
		return
	}

	c.JSON(http.StatusOK, response.Resp{Status: response.StatusSuccess, Message: "Token sent to email!"})
}

// ResetPassword godoc
// @Summary     Reset password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       token path string           true "Reset token"
// @Param       body  body resetPasswordReq true "New password"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Token is invalid or has expired"
// @Router      /api/v1/users/resetPassword/{token} [PATCH]
func (h *handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req resetPasswordReq
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.ResetPassword(ctx, req.toInput(c.Param("token")))
	if err != nil {
		h.reportError(c, "uc.ResetPassword", err)
		return
	}

	h.sendToken(c, http.StatusOK, output)
}

// UpdatePassword godoc
// @Summary     Change my password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body updatePasswordReq true "Current and new password"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Your current password is wrong"
// @Router      /api/v1/users/updateMyPassword [PATCH]
func (h *handler) UpdatePassword(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req updatePasswordReq
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.UpdatePassword(ctx, sc, req.toInput())
	if err != nil {
		h.reportError(c, "uc.UpdatePassword", err)
		return
	}

	h.sendToken(c, http.StatusOK, output)
}

// Me godoc
// @Summary     Current user
// @Tags        Users
// @Produce     json
// @Security    Bearer
// @Success     200 {object} response.Resp
// @Router      /api/v1/users/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	output, err := h.uc.Detail(ctx, sc.UserID)
	if err != nil {
		h.reportError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output.User))
}

// UpdateMe godoc
// @Summary     Update my name, email or photo
// @Tags        Users
// @Accept      json,multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       photo formData file false "Profile photo"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "This route is not for password updates"
// @Router      /api/v1/users/updateMe [PATCH]
func (h *handler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	input, closer, err := h.processUpdateMeReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), h.cfg.Verbose)
		return
	}
	if closer != nil {
		defer closer.Close()
	}

	output, err := h.uc.UpdateMe(ctx, sc, input)
	if err != nil {
		h.reportError(c, "uc.UpdateMe", err)
		return
	}

	response.OK(c, h.newDetailResp(output.User))
}

// DeleteMe godoc
// @Summary     Deactivate my account
// @Tags        Users
// @Security    Bearer
// @Success     204
// @Router      /api/v1/users/deleteMe [DELETE]
func (h *handler) DeleteMe(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	if err := h.uc.DeactivateMe(ctx, sc); err != nil {
		h.reportError(c, "uc.DeactivateMe", err)
		return
	}

	response.NoContent(c)
}

// List godoc
// @Summary     List users
// @Tags        Users
// @Produce     json
// @Security    Bearer
// @Success     200 {object} response.Resp
// @Router      /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, h.processListReq(c))
	if err != nil {
		h.reportError(c, "uc.List", err)
		return
	}

	items, err := h.newListResp(output)
	if err != nil {
		h.l.Errorf(ctx, "newListResp: %v", err)
		response.InternalError(c, err, h.cfg.Verbose)
		return
	}
	response.List(c, "users", len(items), items)
}

// Create godoc
// @Summary     Create user
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       body body createReq true "User"
// @Success     201 {object} response.Resp
// @Router      /api/v1/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Create", err)
		return
	}

	response.Created(c, h.newDetailResp(output.User))
}

// Detail godoc
// @Summary     Get user
// @Tags        Users
// @Produce     json
// @Security    Bearer
// @Param       id path string true "User ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "No user found with that ID"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.reportError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output.User))
}

// Update godoc
// @Summary     Update user
// @Description Administrative update. Passwords are not changed here.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path string    true "User ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} response.Resp
// @Router      /api/v1/users/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, h.cfg.Verbose)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.reportError(c, "uc.Update", err)
		return
	}

	response.OK(c, h.newDetailResp(output.User))
}

// Delete godoc
// @Summary     Delete user
// @Tags        Users
// @Security    Bearer
// @Param       id path string true "User ID"
// @Success     204
// @Router      /api/v1/users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.reportError(c, "uc.Delete", err)
		return
	}

	response.NoContent(c)
}
