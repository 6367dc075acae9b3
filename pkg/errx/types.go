package errx

// Type represents the category of error
type Type string

const (
	// TypeInternal represents internal errors
	TypeInternal Type = "INTERNAL"

	// TypeValidation represents validation and decoding errors
	TypeValidation Type = "VALIDATION"

	// TypeNotFound represents resource not found errors
	TypeNotFound Type = "NOT_FOUND"

	// TypeExternal represents errors from external services
	TypeExternal Type = "EXTERNAL"

	// TypeTimeout represents deadline and cancellation errors
	TypeTimeout Type = "TIMEOUT"
)

// String returns the string representation of the error type
func (t Type) String() string {
	return string(t)
}

// typeToHTTPStatus maps error types to HTTP status codes
func typeToHTTPStatus(t Type) int {
	switch t {
	case TypeValidation:
		return 400 // Bad Request
	case TypeNotFound:
		return 404 // Not Found
	case TypeExternal:
		return 502 // Bad Gateway
	case TypeTimeout:
		return 504 // Gateway Timeout
	case TypeInternal:
		return 500 // Internal Server Error
	default:
		return 500
	}
}
