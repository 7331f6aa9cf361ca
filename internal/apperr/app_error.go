package apperr

import "github.com/tuanvumaihuynh/invoicing-api/pkg/zerror"

const (
	ValidationErrorCode = "VALIDATION_FAILED"
	ConflictErrorCode   = "CONFLICT"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	ConflictErr   = zerror.NewConflict(ConflictErrorCode, "record conflicts with an existing one")
)

// Not found.
var (
	ClientNotFoundErr      = zerror.NewNotFound("CLIENT_NOT_FOUND", "client not found")
	ProductNotFoundErr     = zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")
	InvoiceNotFoundErr     = zerror.NewNotFound("INVOICE_NOT_FOUND", "invoice not found")
	InvoiceLineNotFoundErr = zerror.NewNotFound("INVOICE_LINE_NOT_FOUND", "invoice line not found")
)

// Key mismatch between path and body.
var (
	ClientIdentificationMismatchErr = zerror.NewBadRequest("CLIENT_IDENTIFICATION_MISMATCH",
		"identificacion in body does not match identificacion in path")
	ProductCodeMismatchErr = zerror.NewBadRequest("PRODUCT_CODE_MISMATCH",
		"codigo in body does not match codigo in path")
	InvoiceIDMismatchErr = zerror.NewBadRequest("INVOICE_ID_MISMATCH",
		"id in body does not match id in path")
)

// Missing referenced records.
var (
	InvoiceDoesNotExistErr = zerror.NewBadRequest("INVOICE_DOES_NOT_EXIST", "invoice does not exist")
	ClientDoesNotExistErr  = zerror.NewBadRequest("CLIENT_DOES_NOT_EXIST", "client does not exist")
	ProductDoesNotExistErr = zerror.NewBadRequest("PRODUCT_DOES_NOT_EXIST", "product does not exist")
)

// Malformed requests.
var (
	InvalidRequestBodyErr = zerror.NewUnprocessableEntity("INVALID_REQUEST_BODY", "request body is not valid JSON")
	InvalidPathParamErr   = zerror.NewUnprocessableEntity("INVALID_PATH_PARAM", "path parameter is not valid")
)
