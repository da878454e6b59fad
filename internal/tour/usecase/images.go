package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tour-booking-api/internal/tour"
	repo "tour-booking-api/internal/tour/repository"
	"tour-booking-api/pkg/photo"
)

// ImageSize is the stored size of tour cover and gallery images.
var ImageSize = photo.Size{Width: 2000, Height: 1333}

// UploadImages resizes the uploaded cover and gallery images and points the
// tour at the stored files.
func (uc *implUseCase) UploadImages(ctx context.Context, input tour.UploadImagesInput) (tour.UpdateOutput, error) {
	if input.Cover == nil && len(input.Images) == 0 {
		return tour.UpdateOutput{}, tour.ErrNoImages
	}

	existing, err := uc.repo.GetOneTour(ctx, repo.GetOneTourOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UploadImages GetOneTour: %v", err)
		return tour.UpdateOutput{}, domainErr(err)
	}
	if existing.ID == "" {
		return tour.UpdateOutput{}, tour.ErrTourNotFound
	}

	stamp := uc.clock().UnixMilli()
	opt := repo.UpdateTourOptions{ID: input.ID}

	if input.Cover != nil {
		name, err := uc.saveImage(ctx, input.Cover, fmt.Sprintf("tour-%s-%d-cover", input.ID, stamp))
		if err != nil {
			return tour.UpdateOutput{}, err
		}
		opt.ImageCover = &name
	}

	if len(input.Images) > 0 {
		opt.Images = make([]string, 0, len(input.Images))
		for i, r := range input.Images {
			name, err := uc.saveImage(ctx, r, fmt.Sprintf("tour-%s-%d-%d", input.ID, stamp, i+1))
			if err != nil {
				return tour.UpdateOutput{}, err
			}
			opt.Images = append(opt.Images, name)
		}
	}

	t, err := uc.repo.UpdateTour(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UploadImages UpdateTour: %v", err)
		return tour.UpdateOutput{}, domainErr(err)
	}
	if t.ID == "" {
		return tour.UpdateOutput{}, tour.ErrTourNotFound
	}
	return tour.UpdateOutput{Tour: t}, nil
}

func (uc *implUseCase) saveImage(ctx context.Context, r io.Reader, name string) (string, error) {
	filename, err := uc.images.Save(r, ImageSize, name)
	if err != nil {
		if errors.Is(err, photo.ErrNotImage) {
			return "", tour.ErrNotImage
		}
		uc.l.Errorf(ctx, "uc.saveImage %s: %v", name, err)
		return "", err
	}
	return filename, nil
}
