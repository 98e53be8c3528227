package handler

import (
	"strings"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/validation"
	"github.com/spf13/cast"
)

// maxPageSize bounds the limit query parameter.
const maxPageSize = 100

// EmptyRequest is used by routes without input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// ResourceRequest addresses a single record by its path id.
type ResourceRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *ResourceRequest) Validate() error {
	var fields validation.CustomValidationErrors
	fields.Require("id", strings.TrimSpace(r.ID) != "")
	return fields.Err()
}

// ListPropertiesRequest carries the listing filters as raw query strings.
// Validate parses them; a value that does not parse is a 400, never ignored.
type ListPropertiesRequest struct {
	PropertyType string `query:"propertyType"`
	PriceType    string `query:"priceType"`
	MinPrice     string `query:"minPrice"`
	MaxPrice     string `query:"maxPrice"`
	Bedrooms     string `query:"bedrooms"`
	Location     string `query:"location"`
	Featured     string `query:"featured"`
	Limit        string `query:"limit"`
	Offset       string `query:"offset"`

	filter model.PropertyFilter
}

func (r *ListPropertiesRequest) Validate() error {
	var fields validation.CustomValidationErrors

	f := model.PropertyFilter{
		PropertyType: strings.TrimSpace(r.PropertyType),
		Location:     strings.TrimSpace(r.Location),
	}

	if pt := strings.TrimSpace(r.PriceType); pt != "" {
		if !model.PriceType(pt).Valid() {
			fields.Add("priceType", "must be one of: rent sale")
		}
		f.PriceType = model.PriceType(pt)
	}

	f.MinPrice = queryFloat(&fields, "minPrice", r.MinPrice)
	f.MaxPrice = queryFloat(&fields, "maxPrice", r.MaxPrice)
	f.Bedrooms = queryCount(&fields, "bedrooms", r.Bedrooms)

	if featured := strings.TrimSpace(r.Featured); featured != "" {
		b, err := cast.ToBoolE(featured)
		if err != nil {
			fields.Add("featured", "must be true or false")
		}
		f.Featured = &b
	}

	if limit := queryCount(&fields, "limit", r.Limit); limit != nil {
		if *limit > maxPageSize {
			fields.Add("limit", "must be at most 100")
		}
		f.Limit = *limit
	}
	if offset := queryCount(&fields, "offset", r.Offset); offset != nil {
		f.Offset = *offset
	}

	if err := fields.Err(); err != nil {
		return err
	}

	r.filter = f
	return nil
}

// Filter returns the parsed filter. Only meaningful after Validate.
func (r *ListPropertiesRequest) Filter() model.PropertyFilter {
	return r.filter
}

func queryFloat(fields *validation.CustomValidationErrors, name, raw string) *float64 {
	v, err := model.NumericOf(raw).Float64()
	if err != nil {
		fields.Add(name, validation.MsgNumber)
		return nil
	}
	return v
}

func queryCount(fields *validation.CustomValidationErrors, name, raw string) *int {
	v, err := model.NumericOf(raw).Int()
	if err != nil {
		fields.Add(name, validation.MsgInteger)
		return nil
	}
	if v != nil && *v < 0 {
		fields.Add(name, "must not be negative")
		return nil
	}
	return v
}

// SearchPropertiesRequest is GET /properties/search?q=. A blank q is valid
// and yields an empty list.
type SearchPropertiesRequest struct {
	Query string `query:"q"`
}

func (r *SearchPropertiesRequest) Validate() error { return nil }

type CreatePropertyRequest struct {
	model.PropertyInput
}

type UpdatePropertyRequest struct {
	ID string `param:"id" json:"-"`
	model.PropertyInput
}

type CreateAgentRequest struct {
	model.AgentInput
}

type UpdateAgentRequest struct {
	ID string `param:"id" json:"-"`
	model.AgentInput
}

type CreateUnitRequest struct {
	model.UnitInput
}

type UpdateUnitRequest struct {
	ID string `param:"id" json:"-"`
	model.UnitInput
}

type SubmitContactRequest struct {
	model.ContactInput
}

// EmailPreviewRequest names a template under lib/email/templates.
type EmailPreviewRequest struct {
	Template string `param:"template" json:"-"`
}

func (r *EmailPreviewRequest) Validate() error {
	var fields validation.CustomValidationErrors
	fields.Require("template", strings.TrimSpace(r.Template) != "")
	return fields.Err()
}
