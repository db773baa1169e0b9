package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("game_slug", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Must start with a letter
				if i == 0 && !unicode.IsLower(char) {
					return false
				}
				// Lowercase letters, digits, hyphen or underscore
				if !unicode.IsLower(char) && !unicode.IsDigit(char) && char != '-' && char != '_' {
					return false
				}
			}
			return true
		})
	})
}
