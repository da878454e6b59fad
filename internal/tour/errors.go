package tour

import "errors"

var (
	ErrTourNotFound       = errors.New("tour not found")
	ErrInvalidID          = errors.New("invalid tour id")
	ErrDuplicateName      = errors.New("tour name already exists")
	ErrPriceDiscount      = errors.New("discount price should be below regular price")
	ErrInvalidDifficulty  = errors.New("difficulty is either: easy, medium, difficult")
	ErrInvalidCoordinates = errors.New("please provide latitude and longitude in the format lat,lng and unit mi or km")
	ErrInvalidDistance    = errors.New("distance must be a positive number")
	ErrInvalidYear        = errors.New("invalid year")
	ErrNoImages           = errors.New("no images uploaded")
	ErrNotImage           = errors.New("not an image! please upload only images")
)
