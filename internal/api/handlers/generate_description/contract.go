package generate_description

import "context"

type DescriptionGenerator interface {
	IsConfigured() bool
	GenerateDescription(ctx context.Context, name, location, features string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
