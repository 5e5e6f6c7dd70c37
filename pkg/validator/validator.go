package validator

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minEmailLength    = 3
	maxEmailLength    = 255
	maxNameLen        = 255
	maxDescriptionLen = 1024
	asciiControlStart = 32
	asciiDelete       = 127

	errEmailEmptyFmt        = "email cannot be empty"
	errEmailLengthFmt       = "email must be between %d and %d characters"
	errEmailInvalidFmt      = "invalid email format"
	errNameEmptyFmt         = "name cannot be empty"
	errNameMaxLengthFmt     = "name must not exceed %d characters"
	errNameControlCharsFmt  = "name cannot contain control characters"
	errDescriptionMaxLenFmt = "description must not exceed %d characters"
	errUserIDEmptyFmt       = "user id cannot be empty"
	errUserIDMaxLengthFmt   = "user id must not exceed %d characters"
	errUserIDWhitespaceFmt  = "user id cannot contain whitespace"
	errCountNegativeFmt     = "count cannot be negative"
	errDataSizeEmptyFmt     = "data size cannot be empty"
	errDataSizeMaxLengthFmt = "data size must not exceed %d characters"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailEmptyFmt)
	}

	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, minEmailLength, maxEmailLength)
	}

	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}

	return nil
}

func Name(name string) error {
	if name == "" {
		return fmt.Errorf(errNameEmptyFmt)
	}

	if len(name) > maxNameLen {
		return fmt.Errorf(errNameMaxLengthFmt, maxNameLen)
	}

	for _, char := range name {
		if char < asciiControlStart || char == asciiDelete {
			return fmt.Errorf(errNameControlCharsFmt)
		}
	}

	return nil
}

func Description(desc string) error {
	if desc == "" {
		return nil
	}

	if len(desc) > maxDescriptionLen {
		return fmt.Errorf(errDescriptionMaxLenFmt, maxDescriptionLen)
	}

	return nil
}

func UserID(id string) error {
	if id == "" {
		return fmt.Errorf(errUserIDEmptyFmt)
	}

	if len(id) > maxNameLen {
		return fmt.Errorf(errUserIDMaxLengthFmt, maxNameLen)
	}

	if strings.ContainsAny(id, " \t\n") {
		return fmt.Errorf(errUserIDWhitespaceFmt)
	}

	return nil
}

func Count(n int) error {
	if n < 0 {
		return fmt.Errorf(errCountNegativeFmt)
	}
	return nil
}

func DataSize(size string) error {
	if size == "" {
		return fmt.Errorf(errDataSizeEmptyFmt)
	}

	if len(size) > maxNameLen {
		return fmt.Errorf(errDataSizeMaxLengthFmt, maxNameLen)
	}

	return nil
}
