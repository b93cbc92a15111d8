// Package validation checks booking and contact form submissions before they
// reach storage. All three forms share the same rules: required fields,
// email/phone/date formats, and the check-in/check-out ordering rule for
// hotel bookings. Validation accumulates every failing field rather than
// stopping at the first.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"wanderlust-travel/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// phonePattern allows an optional leading +, a first digit 1-9, and up to 15
// further digits. Whitespace is stripped before matching.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

// FieldError reports a single failing field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator validates and sanitizes form submissions.
type Validator struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

// New builds a Validator with the phone, dateonly, and hotel date-ordering
// rules registered. Field names in errors come from the json struct tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		stripped := strings.Join(strings.Fields(fl.Field().String()), "")
		return phonePattern.MatchString(stripped)
	})

	v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})

	v.RegisterStructValidation(hotelBookingDates, models.HotelBookingForm{})

	return &Validator{
		validate:  v,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// hotelBookingDates rejects hotel bookings whose check-out date is not
// strictly after the check-in date. It only fires once both dates parse;
// format failures are reported by the dateonly rule on each field.
func hotelBookingDates(sl validator.StructLevel) {
	form := sl.Current().Interface().(models.HotelBookingForm)

	checkIn, errIn := time.Parse(time.DateOnly, form.CheckInDate)
	checkOut, errOut := time.Parse(time.DateOnly, form.CheckOutDate)
	if errIn != nil || errOut != nil {
		return
	}
	if !checkOut.After(checkIn) {
		sl.ReportError(form.CheckOutDate, "checkOutDate", "CheckOutDate", "checkafter", "")
	}
}

// ValidateTourBooking sanitizes the form in place and returns every failing
// field, or nil if the form is valid.
func (v *Validator) ValidateTourBooking(form *models.TourBookingForm) []FieldError {
	form.FullName = v.clean(form.FullName)
	form.Email = v.clean(form.Email)
	form.Phone = v.clean(form.Phone)
	form.PreferredTour = v.clean(form.PreferredTour)
	form.PreferredDate = v.clean(form.PreferredDate)
	form.SpecialRequirements = v.clean(form.SpecialRequirements)

	return v.translate(v.validate.Struct(form))
}

// ValidateHotelBooking sanitizes the form in place and returns every failing
// field, or nil if the form is valid.
func (v *Validator) ValidateHotelBooking(form *models.HotelBookingForm) []FieldError {
	form.GuestName = v.clean(form.GuestName)
	form.Email = v.clean(form.Email)
	form.Phone = v.clean(form.Phone)
	form.HotelSelection = v.clean(form.HotelSelection)
	form.CheckInDate = v.clean(form.CheckInDate)
	form.CheckOutDate = v.clean(form.CheckOutDate)
	form.SpecialRequests = v.clean(form.SpecialRequests)

	return v.translate(v.validate.Struct(form))
}

// ValidateContactMessage sanitizes the form in place and returns every
// failing field, or nil if the form is valid.
func (v *Validator) ValidateContactMessage(form *models.ContactMessageForm) []FieldError {
	form.FirstName = v.clean(form.FirstName)
	form.LastName = v.clean(form.LastName)
	form.Email = v.clean(form.Email)
	form.Phone = v.clean(form.Phone)
	form.TravelInterest = v.clean(form.TravelInterest)
	form.Message = v.clean(form.Message)

	return v.translate(v.validate.Struct(form))
}

// clean trims the value, strips HTML tags, and escapes markup-significant
// characters so stored text is inert if rendered later.
func (v *Validator) clean(s string) string {
	return v.sanitizer.Sanitize(strings.TrimSpace(s))
}

// translate converts validator output into FieldErrors with the fixed
// messages the API contract promises.
func (v *Validator) translate(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: "invalid input"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "email":
		return "invalid email"
	case "phone":
		return "invalid phone"
	case "dateonly":
		return "invalid date format"
	case "checkafter":
		return "check-out must be after check-in"
	}
	return "invalid " + fe.Field()
}
