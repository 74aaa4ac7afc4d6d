package product

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/emberwick/storefront-api/pkg/db/models"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/pagination"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes back-office product management operations.
type Service interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	ListProducts(ctx context.Context, params pagination.Params) (*ProductListResult, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, filename string, body io.Reader) (*ImageUploadResult, error)
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name          string
	ScentCategory string
	Price         decimal.Decimal
	Popularity    int
	Description   string
	ScentNotes    string
	BurnTime      string
	Ingredients   string
	ImageURL      string
	// IsActive defaults to true when nil.
	IsActive *bool
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Name          *string
	ScentCategory *string
	Price         *decimal.Decimal
	Popularity    *int
	Description   *string
	ScentNotes    *string
	BurnTime      *string
	Ingredients   *string
	ImageURL      *string
	IsActive      *bool
}

type productStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, params pagination.Params) ([]models.Product, string, error)
}

type imageStore interface {
	ObjectKey(filename string) string
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ServiceParams groups dependencies for the product service.
type ServiceParams struct {
	Repo productStore
	// Images is optional; UploadImage fails with a dependency error without it.
	Images        imageStore
	MaxImageBytes int64
}

type service struct {
	repo          productStore
	images        imageStore
	maxImageBytes int64
}

// NewService constructs a product service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product repository is required")
	}
	return &service{
		repo:          params.Repo,
		images:        params.Images,
		maxImageBytes: params.MaxImageBytes,
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProductDTO(product), nil
}

func (s *service) ListProducts(ctx context.Context, params pagination.Params) (*ProductListResult, error) {
	rows, next, err := s.repo.List(ctx, params)
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	items := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *mapProductDTO(&rows[i]))
	}
	return &ProductListResult{Items: items, NextCursor: next}, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	product := &models.Product{
		Name:          strings.TrimSpace(input.Name),
		ScentCategory: strings.TrimSpace(input.ScentCategory),
		Price:         input.Price.Round(2),
		Popularity:    input.Popularity,
		Description:   strings.TrimSpace(input.Description),
		ScentNotes:    strings.TrimSpace(input.ScentNotes),
		BurnTime:      strings.TrimSpace(input.BurnTime),
		Ingredients:   strings.TrimSpace(input.Ingredients),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		IsActive:      active,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return mapProductDTO(created), nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&product.Name, input.Name)
	applyString(&product.ScentCategory, input.ScentCategory)
	applyString(&product.Description, input.Description)
	applyString(&product.ScentNotes, input.ScentNotes)
	applyString(&product.BurnTime, input.BurnTime)
	applyString(&product.Ingredients, input.Ingredients)
	applyString(&product.ImageURL, input.ImageURL)
	if input.Price != nil {
		product.Price = input.Price.Round(2)
	}
	if input.Popularity != nil {
		product.Popularity = *input.Popularity
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return mapProductDTO(updated), nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}

// UploadImage stores an image and returns its public URL. The content type is sniffed
// from the bytes rather than trusted from the client.
func (s *service) UploadImage(ctx context.Context, filename string, body io.Reader) (*ImageUploadResult, error) {
	if s.images == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "image storage is not configured")
	}
	if body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image body is required")
	}

	reader := body
	if s.maxImageBytes > 0 {
		reader = io.LimitReader(body, s.maxImageBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read image")
	}
	if len(data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image body is required")
	}
	if s.maxImageBytes > 0 && int64(len(data)) > s.maxImageBytes {
		return nil, pkgerrors.New(pkgerrors.CodeTooLarge, "image exceeds upload limit").
			WithDetails(map[string]any{"max_bytes": s.maxImageBytes})
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file is not an image").
			WithDetails(map[string]any{"content_type": detected.String()})
	}

	name := strings.TrimSpace(filename)
	if name == "" {
		name = "image" + detected.Extension()
	}
	url, err := s.images.Upload(ctx, s.images.ObjectKey(name), detected.String(), bytes.NewReader(data))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload image")
	}
	return &ImageUploadResult{URL: url}, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func validateProduct(p *models.Product) error {
	details := map[string]any{}
	if p.Name == "" {
		details["name"] = "is required"
	}
	if p.ScentCategory == "" {
		details["scent_category"] = "is required"
	}
	if p.Price.IsNegative() {
		details["price"] = "must be non-negative"
	}
	if p.Popularity < 0 {
		details["popularity"] = "must be non-negative"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid product").WithDetails(details)
	}
	return nil
}

func applyString(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}
