// Package validation checks raw form submissions against per-entity field
// schemas. Checks are pure and short-circuit: only the first failing field
// (in declaration order) is ever reported, and its message is surfaced to
// the submitter verbatim.
package validation

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	stockRe = regexp.MustCompile(`^\d+$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("price", validatePrice)
	validate.RegisterValidation("stocknum", validateStock)
	validate.RegisterValidation("imageref", validateImageRef)
}

// Error is a single-field validation failure. Message is user-facing.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ProductForm is the raw field-bag of a product create/update submission.
// All values arrive as strings (multipart form or JSON with string fields).
type ProductForm struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description" validate:"min=10"`
	Price       string `json:"price" form:"price" validate:"price"`
	Stock       string `json:"stock" form:"stock" validate:"stocknum"`
	ImageURL    string `json:"imageUrl" form:"imageUrl" validate:"imageref"`
}

// ProductInput is the cleaned, typed product record produced by a
// successful validation.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Stock       int
	ImageURL    string
}

var productMessages = map[string]string{
	"Name":        "Name is required",
	"Description": "Description must be at least 10 characters",
	"Price":       "Invalid price format",
	"Stock":       "Stock must be a non-negative integer",
	"ImageURL":    "Invalid image URL or path",
}

// ValidateProduct checks a product submission and returns the cleaned
// record, or the first field error.
func ValidateProduct(form *ProductForm) (*ProductInput, error) {
	if err := firstError(validate.Struct(form), productMessages); err != nil {
		return nil, err
	}
	stock, err := strconv.Atoi(form.Stock)
	if err != nil || stock < 0 {
		return nil, &Error{Field: "Stock", Message: productMessages["Stock"]}
	}
	return &ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Stock:       stock,
		ImageURL:    form.ImageURL,
	}, nil
}

// ContactForm is the raw field-bag of a public contact-form submission.
type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"min=2"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"min=10"`
}

// ContactInput is the cleaned contact submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

var contactMessages = map[string]string{
	"Name":    "Name must be at least 2 characters",
	"Email":   "Invalid email address",
	"Message": "Message must be at least 10 characters",
}

// ValidateContact checks a contact-form submission.
func ValidateContact(form *ContactForm) (*ContactInput, error) {
	if err := firstError(validate.Struct(form), contactMessages); err != nil {
		return nil, err
	}
	return &ContactInput{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}, nil
}

// firstError reduces validator output to the first failing field, mapped
// to its user-facing message. The validator reports failures in struct
// declaration order, which gives us the short-circuit contract.
func firstError(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &Error{Message: "Invalid input"}
	}
	field := verrs[0].StructField()
	msg, ok := messages[field]
	if !ok {
		msg = "Invalid input"
	}
	return &Error{Field: field, Message: msg}
}

func validatePrice(fl validator.FieldLevel) bool {
	return priceRe.MatchString(fl.Field().String())
}

func validateStock(fl validator.FieldLevel) bool {
	return stockRe.MatchString(fl.Field().String())
}

// validateImageRef accepts either a root-relative path ("/uploads/x.png")
// or a syntactically valid absolute URL.
func validateImageRef(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return false
	}
	if val[0] == '/' {
		return true
	}
	u, err := url.Parse(val)
	return err == nil && u.Scheme != "" && u.Host != ""
}
