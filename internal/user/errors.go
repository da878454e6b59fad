package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidID        = errors.New("invalid user id")
	ErrDuplicateEmail   = errors.New("email already in use")
	ErrInvalidName      = errors.New("please tell us your name")
	ErrInvalidEmail     = errors.New("please provide a valid email")
	ErrInvalidRole      = errors.New("invalid role")
	ErrPasswordTooShort = errors.New("password must have at least 8 characters")
	ErrPasswordMismatch = errors.New("passwords are not the same")
	ErrMissingLogin     = errors.New("please provide email and password")
	ErrIncorrectLogin   = errors.New("incorrect email or password")
	ErrWrongPassword    = errors.New("your current password is wrong")
	ErrPasswordRoute    = errors.New("this route is not for password updates")
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrNotImage         = errors.New("not an image! please upload only images")

	// Authentication
	ErrNotLoggedIn     = errors.New("you are not logged in")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrUserGone        = errors.New("the user belonging to this token does no longer exist")
	ErrPasswordChanged = errors.New("user recently changed password")

	// Password reset
	ErrNoUserWithEmail = errors.New("there is no user with that email address")
	ErrResetToken      = errors.New("token is invalid or has expired")
	ErrSendEmail       = errors.New("there was an error sending the email")
)
