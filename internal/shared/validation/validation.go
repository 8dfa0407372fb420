package validation

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slot labels look like "10:00 AM" / "1:30 PM"
var slotLabelPattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`)

// Register installs custom validators on Gin's binding engine. Call once at
// startup before any request binding happens.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("bookingdate", validBookingDate); err != nil {
		return err
	}
	return v.RegisterValidation("slotlabel", validSlotLabel)
}

// validBookingDate accepts calendar dates in YYYY-MM-DD form.
func validBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validSlotLabel(fl validator.FieldLevel) bool {
	return slotLabelPattern.MatchString(fl.Field().String())
}
