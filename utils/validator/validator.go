package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	once.Do(func() {
		v = gpvalidator.New()
	})
	return v.Struct(s)
}
