package validator

import (
	"fmt"
	"net/mail"
	"strings"
)

// RequiredString fails for empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// ValidEmail accepts a bare address or "Name <address>" and requires a dotted domain.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// IsEmail reports whether value parses as an RFC 5322 address with a dotted domain.
func IsEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// ValidAddress only requires an RFC 5322 address; local addresses such as
// "santa@localhost" pass.
func ValidAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := mail.ParseAddress(value)
			return err == nil
		},
		Error: ValidationError{Field: field, Message: "must be a valid address"},
	}
}

func MinLenSlice[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must contain at least %d items", min)},
	}
}

// Unique fails when key maps two elements of value to the same string.
func Unique[T any](field string, value []T, key func(T) string) Rule {
	dup, found := firstDuplicate(value, key)
	return Rule{
		Check: func() bool {
			return !found
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("contains duplicate value %q", dup)},
	}
}

func firstDuplicate[T any](value []T, key func(T) string) (string, bool) {
	seen := make(map[string]struct{}, len(value))
	for _, v := range value {
		k := key(v)
		if _, ok := seen[k]; ok {
			return k, true
		}
		seen[k] = struct{}{}
	}
	return "", false
}

// NotEqual fails when a and b are the same.
func NotEqual[T comparable](field string, a, b T) Rule {
	return Rule{
		Check: func() bool {
			return a != b
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("values must differ, got %v twice", a)},
	}
}

// InSet fails when value is not one of allowed.
func InSet[T comparable](field string, value T, allowed map[T]struct{}) Rule {
	return Rule{
		Check: func() bool {
			_, ok := allowed[value]
			return ok
		},
		Error: ValidationError{Field: field, Message: fmt.Sprintf("unknown value %v", value)},
	}
}
