package errors

import (
	"net/http"

	"vitrine/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches on the business error code, so copies carrying details still
// compare equal to their sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if errors.As(target, &other) {
		return e.errorCode == other.errorCode
	}

	return false
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Not-found errors, one per entity (mapped to 404)
	ErrStoreNotFound          = NewBaseError(http.StatusNotFound, "STORE_NOT_FOUND", "store not found", "")
	ErrBranchNotFound         = NewBaseError(http.StatusNotFound, "BRANCH_NOT_FOUND", "store branch not found", "")
	ErrCityNotFound           = NewBaseError(http.StatusNotFound, "CITY_NOT_FOUND", "city not found", "")
	ErrAddressNotFound        = NewBaseError(http.StatusNotFound, "ADDRESS_NOT_FOUND", "address not found", "")
	ErrUserNotFound           = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "user not found", "")
	ErrCategoryNotFound       = NewBaseError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "category not found", "")
	ErrAttributeNotFound      = NewBaseError(http.StatusNotFound, "ATTRIBUTE_NOT_FOUND", "attribute not found", "")
	ErrAttributeValueNotFound = NewBaseError(http.StatusNotFound, "ATTRIBUTE_VALUE_NOT_FOUND", "attribute value not found", "")
	ErrVariantAttrNotFound    = NewBaseError(http.StatusNotFound, "VARIANT_ATTRIBUTE_NOT_FOUND", "variant attribute not found", "")
	ErrProductNotFound        = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found", "")
	ErrVariationNotFound      = NewBaseError(http.StatusNotFound, "VARIATION_NOT_FOUND", "product variation not found", "")
	ErrStockNotFound          = NewBaseError(http.StatusNotFound, "STOCK_NOT_FOUND", "stock not found", "")
	ErrOrderNotFound          = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "order not found", "")
	ErrNotificationNotFound   = NewBaseError(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "notification not found", "")
	ErrSubscriptionNotFound   = NewBaseError(http.StatusNotFound, "SUBSCRIPTION_NOT_FOUND", "subscription not found", "")

	// Conflict errors, one per uniqueness rule (mapped to 409)
	ErrSlugAlreadyExists           = NewBaseError(http.StatusConflict, "SLUG_ALREADY_EXISTS", "slug already in use", "")
	ErrCnpjCpfAlreadyExists        = NewBaseError(http.StatusConflict, "CNPJCPF_ALREADY_EXISTS", "cnpj/cpf already registered", "")
	ErrWhatsappAlreadyExists       = NewBaseError(http.StatusConflict, "WHATSAPP_ALREADY_EXISTS", "whatsapp already registered", "")
	ErrEmailAlreadyExists          = NewBaseError(http.StatusConflict, "EMAIL_ALREADY_EXISTS", "email already registered", "")
	ErrCategoryAlreadyExists       = NewBaseError(http.StatusConflict, "CATEGORY_ALREADY_EXISTS", "category already exists", "")
	ErrAttributeAlreadyExists      = NewBaseError(http.StatusConflict, "ATTRIBUTE_ALREADY_EXISTS", "attribute already exists", "")
	ErrAttributeValueAlreadyExists = NewBaseError(http.StatusConflict, "ATTRIBUTE_VALUE_ALREADY_EXISTS", "attribute value already exists", "")
	ErrSubscriptionAlreadyExists   = NewBaseError(http.StatusConflict, "SUBSCRIPTION_ALREADY_EXISTS", "store already has an active subscription", "")

	// Validation and business-rule errors (mapped to 400/422)
	ErrValidationFailed      = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", "")
	ErrNegativeStockQuantity = NewBaseError(http.StatusBadRequest, "NEGATIVE_STOCK_QUANTITY", "stock quantity must not be negative", "")
	ErrInsufficientStock     = NewBaseError(http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK", "insufficient stock for requested quantity", "")
	ErrInvalidOrderStatus    = NewBaseError(http.StatusBadRequest, "INVALID_ORDER_STATUS", "order status transition not allowed", "")
	ErrInvalidImageUpload    = NewBaseError(http.StatusBadRequest, "INVALID_IMAGE_UPLOAD", "file must be an image of at most 5MB", "")

	// Authentication-related errors (mapped to 401/403)
	ErrInvalidCredentials   = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password", "")
	ErrRefreshTokenInvalid  = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "invalid or expired refresh token", "")
	ErrOAuthTokenInvalid    = NewBaseError(http.StatusUnauthorized, "OAUTH_TOKEN_INVALID", "invalid Google ID token", "")
	ErrPasswordHashFailed   = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "failed to process password", "")
	ErrForbidden            = NewBaseError(http.StatusForbidden, "FORBIDDEN", "access denied", "")
	ErrWebhookSignature     = NewBaseError(http.StatusUnauthorized, "WEBHOOK_SIGNATURE_INVALID", "webhook signature verification failed", "")

	// "Failed to X" wrappers for unexpected write failures (mapped to 500)
	ErrFailedToCreateStore        = NewBaseError(http.StatusInternalServerError, "FAILED_TO_CREATE_STORE", "failed to create store", "")
	ErrFailedToCreateOrder        = NewBaseError(http.StatusInternalServerError, "FAILED_TO_CREATE_ORDER", "failed to create order", "")
	ErrFailedToCreateSubscription = NewBaseError(http.StatusInternalServerError, "FAILED_TO_CREATE_SUBSCRIPTION", "failed to create subscription", "")
	ErrPaymentProviderFailed      = NewBaseError(http.StatusBadGateway, "PAYMENT_PROVIDER_FAILED", "payment provider request failed", "")
	ErrTransactionFailed          = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "database transaction failed", "")
	ErrInternalError              = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", "")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
