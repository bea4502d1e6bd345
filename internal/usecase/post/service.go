package post

import (
	"context"
	"io"
	"time"

	domain "liga/backend/internal/domain/post"
)

// ImageStore persists uploaded images and returns their public URL.
type ImageStore interface {
	Save(filename string, data io.Reader) (string, error)
}

// ImageUpload carries an incoming image file.
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

// Service provides post management use cases.
type Service struct {
	repo    domain.Repository
	images  ImageStore
	nowFunc func() time.Time
}

// NewService constructs a post service around the provided repository and
// image store.
func NewService(repo domain.Repository, images ImageStore) *Service {
	return &Service{
		repo:    repo,
		images:  images,
		nowFunc: time.Now,
	}
}

// List returns all posts. An empty table is reported as ErrNoPosts.
func (s *Service) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.ErrNoPosts
	}
	return posts, nil
}

// Create stores a new post, saving the image first when one is supplied.
func (s *Service) Create(ctx context.Context, description string, image *ImageUpload) (*domain.Post, error) {
	url, err := s.saveImage(image)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Description: description,
		ImageURL:    url,
		CreatedAt:   s.nowFunc().UTC(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update rewrites a post's description and, when a new image arrives,
// replaces its image URL. The previous URL is kept otherwise.
func (s *Service) Update(ctx context.Context, id int64, description string, image *ImageUpload) (*domain.Post, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.saveImage(image)
	if err != nil {
		return nil, err
	}
	if url == "" {
		url = existing.ImageURL
	}

	existing.Description = description
	existing.ImageURL = url
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a post by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) saveImage(image *ImageUpload) (string, error) {
	if image == nil || image.Filename == "" {
		return "", nil
	}
	return s.images.Save(image.Filename, image.Data)
}
