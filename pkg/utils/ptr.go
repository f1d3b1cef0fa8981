package utils

import "github.com/aarondl/null/v8"

// NullString превращает пустую строку из формы в null.
func NullString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// StringOrEmpty - обратное преобразование для заполнения формы.
func StringOrEmpty(s null.String) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
