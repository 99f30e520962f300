package services

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gyulist/gyulist/internal/common"
)

// ValidationError carries per-field messages. It matches common.ErrorValidation
// under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrorValidation
}

type validator struct {
	fields map[string]string
}

// fail records the first message for field.
func (v *validator) fail(field, msg string) {
	if v.fields == nil {
		v.fields = map[string]string{}
	}
	if _, ok := v.fields[field]; !ok {
		v.fields[field] = msg
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

const maxEmailLength = 254

func validEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// reject display-name forms such as "Bob <bob@example.com>"
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

func tooLong(s string, n int) bool {
	return utf8.RuneCountInString(s) > n
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrorNotFound)
}

// notFoundOr passes ErrorNotFound through bare and wraps everything else.
func notFoundOr(err error, msg string) error {
	if isNotFound(err) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
