package controllers

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/api/validators"
	productsvc "github.com/emberwick/storefront-api/internal/products"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/pagination"
)

const (
	imageFormField = "file"
	// multipart framing on top of the image itself
	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

type createProductRequest struct {
	Name          string           `json:"name" validate:"required,max=200"`
	ScentCategory string           `json:"scent_category" validate:"required,max=100"`
	Price         *decimal.Decimal `json:"price" validate:"required"`
	Popularity    int              `json:"popularity" validate:"min=0"`
	Description   string           `json:"description"`
	ScentNotes    string           `json:"scent_notes"`
	BurnTime      string           `json:"burn_time"`
	Ingredients   string           `json:"ingredients"`
	ImageURL      string           `json:"image_url" validate:"omitempty,url"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r createProductRequest) toInput() productsvc.CreateProductInput {
	return productsvc.CreateProductInput{
		Name:          r.Name,
		ScentCategory: r.ScentCategory,
		Price:         *r.Price,
		Popularity:    r.Popularity,
		Description:   r.Description,
		ScentNotes:    r.ScentNotes,
		BurnTime:      r.BurnTime,
		Ingredients:   r.Ingredients,
		ImageURL:      r.ImageURL,
		IsActive:      r.IsActive,
	}
}

type updateProductRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	ScentCategory *string          `json:"scent_category,omitempty" validate:"omitempty,max=100"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Popularity    *int             `json:"popularity,omitempty" validate:"omitempty,min=0"`
	Description   *string          `json:"description,omitempty"`
	ScentNotes    *string          `json:"scent_notes,omitempty"`
	BurnTime      *string          `json:"burn_time,omitempty"`
	Ingredients   *string          `json:"ingredients,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r updateProductRequest) toInput() productsvc.UpdateProductInput {
	return productsvc.UpdateProductInput{
		Name:          r.Name,
		ScentCategory: r.ScentCategory,
		Price:         r.Price,
		Popularity:    r.Popularity,
		Description:   r.Description,
		ScentNotes:    r.ScentNotes,
		BurnTime:      r.BurnTime,
		Ingredients:   r.Ingredients,
		ImageURL:      r.ImageURL,
		IsActive:      r.IsActive,
	}
}

// AdminListProducts pages through every product, inactive ones included, newest first.
func AdminListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ListProducts(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func AdminGetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}
		id, err := uuidParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}
		id, err := uuidParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}
		id, err := uuidParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// AdminUploadProductImage stores the multipart "file" field and returns its public URL.
// The service enforces the real size cap; the request cap here only bounds the framing.
func AdminUploadProductImage(svc productsvc.Service, maxImageBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		if maxImageBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+multipartOverhead)
		}
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeTooLarge, err, "image exceeds upload limit"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body"))
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile(imageFormField)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "image file is required").WithDetails(map[string]any{"field": imageFormField}))
			return
		}
		defer file.Close()

		result, err := svc.UploadImage(r.Context(), header.Filename, file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
