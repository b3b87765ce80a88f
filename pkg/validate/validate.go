package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Struct валидирует структуру по validate-тегам полей
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Var валидирует одиночное значение по правилу tag
func Var(field interface{}, tag string) error {
	return v.Var(field, tag)
}
