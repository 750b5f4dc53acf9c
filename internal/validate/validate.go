// Package validate holds the request-level validation rules for mutations.
package validate

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxIDLen    = 100
	MaxNameLen  = 200
	MaxTitleLen = 300
)

// Collection ids become directory names and URL segments, so they are
// restricted to a filesystem/URL safe alphabet.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

func ItemID(id string) error {
	return validation.Validate(id,
		validation.Required,
		validation.Length(1, MaxIDLen),
		validation.Match(idPattern),
	)
}

func ItemTitle(title string) error {
	return validation.Validate(title,
		validation.Required,
		validation.Length(1, MaxTitleLen),
	)
}

func CollectionID(id string) error {
	return validation.Validate(id,
		validation.Required,
		validation.Length(1, MaxIDLen),
		validation.Match(idPattern),
	)
}

func CollectionName(name string) error {
	return validation.Validate(name,
		validation.Required,
		validation.Length(1, MaxNameLen),
	)
}
