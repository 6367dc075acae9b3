package errx

// Common error constructors for convenience

// Internal creates an internal error
func Internal(message string) *Error {
	return New(message, TypeInternal)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(message, TypeValidation)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(message, TypeNotFound)
}

// External creates an external service error
func External(message string) *Error {
	return New(message, TypeExternal)
}

// Timeout creates a timeout error
func Timeout(message string) *Error {
	return New(message, TypeTimeout)
}
