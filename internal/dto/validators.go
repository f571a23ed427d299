package dto

import (
	"fmt"
	"sync"

	"github.com/SscSPs/simple_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the ledger-specific binding tags to gin's validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		if err = v.RegisterValidation("accounttype", validateAccountType); err != nil {
			return
		}
		err = v.RegisterValidation("granularity", validateGranularity)
	})
	return err
}

func validateAccountType(fl validator.FieldLevel) bool {
	_, err := domain.ParseAccountType(fl.Field().String())
	return err == nil
}

func validateGranularity(fl validator.FieldLevel) bool {
	_, err := domain.ParseGranularity(fl.Field().String())
	return err == nil
}
