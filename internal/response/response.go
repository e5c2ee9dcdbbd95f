// Package response implements the uniform envelope returned by every endpoint.
package response

import (
	"errors"
	"time"

	"github.com/ahmetcoskunkizilkaya/storefront-backend/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

const Version = "v1"

type Metadata struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type ErrorBody struct {
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

type Envelope struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorBody  `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

func newMetadata() Metadata {
	return Metadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
	}
}

// Success writes a success envelope with the given status code.
func Success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Success:  true,
		Message:  message,
		Data:     data,
		Metadata: newMetadata(),
	})
}

// Fail maps err onto a status code and error envelope. Internal errors are
// surfaced generically; their wrapped cause is for server-side logs only.
func Fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	message := err.Error()

	var details map[string]string
	var ae *apperr.Error
	if errors.As(err, &ae) {
		details = ae.Details
	} else {
		message = "Internal server error"
	}
	if kind == apperr.KindInternal {
		message = "Internal server error"
	}

	return c.Status(statusFor(kind)).JSON(Envelope{
		Success:  false,
		Message:  message,
		Error:    &ErrorBody{Code: kind.Code(), Details: details},
		Metadata: newMetadata(),
	})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	case apperr.KindConflict:
		return fiber.StatusConflict
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindUpstreamUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
