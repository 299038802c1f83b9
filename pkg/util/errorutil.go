package util

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages are in Spanish; the portal serves a Spanish-speaking
// customer base and the help-desk phone number is part of the contract.
const (
	MsgTicketIDRequired   = "El número de ticket es obligatorio"
	MsgEmailNotRegistered = "Lo sentimos, su e-mail no se encuentra registrado en nuestro sistema. Por favor verifique si está correcto o comuníquese directamente con nuestra Mesa de Ayuda al 800 400 110"
	MsgTicketNotFound     = "Ticket no encontrado. Verifica el número e intenta nuevamente."
	MsgCreateTicketFailed = "Error al crear ticket en HubSpot"
	MsgCheckStatusFailed  = "Error al consultar ticket"
	MsgContactCheckFailed = "Error interno al verificar el usuario."
	MsgInternalError      = "Error interno del servidor"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewEmailNotRegistered rejects ticket creation for unknown contacts.
func NewEmailNotRegistered() error {
	return NewDomainError("EMAIL_NOT_REGISTERED", MsgEmailNotRegistered, http.StatusBadRequest, nil)
}

// NewTicketNotFound reports an id that does not exist upstream, distinct from
// generic upstream failures.
func NewTicketNotFound() error {
	return NewDomainError("TICKET_NOT_FOUND", MsgTicketNotFound, http.StatusNotFound, nil)
}

// NewUpstreamError passes through the CRM's status code and message. An empty
// message falls back to the given default.
func NewUpstreamError(status int, message, fallback string) error {
	if message == "" {
		message = fallback
	}
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return NewDomainError("UPSTREAM_ERROR", message, status, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MsgInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    MsgInternalError,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
