package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/socialnet/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var fieldLabels = map[string]string{
	"FullName":        "full name",
	"ConfirmPassword": "password confirmation",
	"ImageURL":        "image URL",
	"PostID":          "post id",
	"SessionToken":    "session token",
	"LikesCount":      "likes count",
	"FollowersCount":  "followers count",
	"FollowingCount":  "following count",
	"PostsCount":      "posts count",
	"CommentsCount":   "comments count",
	"SharesCount":     "shares count",
	"AuthorID":        "author id",
	"ID":              "id",
}

// Validate checks v against its validate tags. Rule violations are returned
// as a *common.ValidationError with one human-readable message per field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, message(fe))
	}
	return common.NewValidationError(messages...)
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return strings.ToLower(field)
}

func message(fe validator.FieldError) string {
	name := label(fe.Field())

	switch fe.Tag() {
	case "required", "required_without":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "url":
		return name + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
	case "eqfield":
		if fe.Field() == "ConfirmPassword" {
			return "passwords do not match"
		}
		return fmt.Sprintf("%s must match %s", name, label(fe.Param()))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", name)
}
