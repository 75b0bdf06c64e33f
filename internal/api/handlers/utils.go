package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"leadhub/internal/apperr"
	"leadhub/internal/config"
	"leadhub/internal/models"
)

var registerOnce sync.Once

// RegisterValidators installs the enum rules used in binding tags and makes
// field errors report the json/form name instead of the Go field name.
func RegisterValidators() error {
	var regErr error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			regErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		v.RegisterCustomTypeFunc(nullableString, Nullable[string]{})

		if err := v.RegisterValidation("leadstatus", func(fl validator.FieldLevel) bool {
			return models.LeadStatus(fl.Field().String()).Valid()
		}); err != nil {
			regErr = err
			return
		}
		if err := v.RegisterValidation("campaignstatus", func(fl validator.FieldLevel) bool {
			return models.LeadCampaignStatus(fl.Field().String()).Valid()
		}); err != nil {
			regErr = err
		}
	})
	return regErr
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// bindError turns a binding failure into a 400-class domain error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		return apperr.Wrap(apperr.KindValidation, "validation failed", err).WithDetails(details)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return apperr.Wrap(apperr.KindBadRequest, "malformed JSON body", err)
	case errors.As(err, &typeErr):
		return apperr.Wrap(apperr.KindValidation, "validation failed", err).
			WithDetails([]FieldError{{Field: typeErr.Field, Rule: "type", Param: typeErr.Type.String()}})
	}
	return apperr.Wrap(apperr.KindBadRequest, err.Error(), err)
}

// fail hands err to middleware.ErrorHandler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

type idURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type idLeadURI struct {
	ID     int64 `uri:"id" binding:"required,min=1"`
	LeadID int64 `uri:"leadId" binding:"required,min=1"`
}

// PageQuery is the page window shared by every list endpoint. Nil means the
// parameter was absent; a present value below 1 is rejected.
type PageQuery struct {
	Page     *int `form:"page" binding:"omitempty,min=1"`
	PageSize *int `form:"pageSize" binding:"omitempty,min=1"`
}

func (q PageQuery) params(cfg config.PaginationConfig) (models.PaginationParams, error) {
	params := models.PaginationParams{Page: models.DefaultPage, PageSize: cfg.DefaultPageSize}
	if q.Page != nil {
		params.Page = *q.Page
	}
	if q.PageSize != nil {
		params.PageSize = *q.PageSize
	}
	if cfg.MaxPageSize > 0 && params.PageSize > cfg.MaxPageSize {
		return params, apperr.Validation("validation failed").WithDetails([]FieldError{
			{Field: "pageSize", Rule: "max", Param: fmt.Sprint(cfg.MaxPageSize)},
		})
	}
	if !params.OffsetFits() {
		return params, apperr.Validation("validation failed").WithDetails([]FieldError{
			{Field: "page", Rule: "max", Param: fmt.Sprint(uint64(math.MaxInt/params.PageSize) + 1)},
		})
	}
	return params, nil
}

type LeadPageQuery struct {
	PageQuery
	SortBy string `form:"sortBy" binding:"omitempty,oneof=name createdAt"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
	Name   string `form:"name" binding:"max=200"`
}

func (q LeadPageQuery) request(cfg config.PaginationConfig, status string) (models.LeadPageRequest, error) {
	params, err := q.params(cfg)
	if err != nil {
		return models.LeadPageRequest{}, err
	}
	return models.LeadPageRequest{
		PaginationParams: params,
		SortBy:           models.SortField(q.SortBy),
		Order:            models.SortOrder(q.Order),
		Name:             q.Name,
		Status:           status,
	}, nil
}
