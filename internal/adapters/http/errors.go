package http

import (
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samirrijal/dronegeo/internal/core/domain"
	"github.com/samirrijal/dronegeo/internal/pkg/metrics"
	"github.com/samirrijal/dronegeo/internal/pkg/telemetry"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // Error code: bad_request, not_found, internal_error, etc.
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", msg)
}

// errNotFound returns a 404 error.
func errNotFound(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusNotFound, "not_found", msg)
}

// reject answers a geometry request that failed decoding or validation:
// 400 with an empty body. The reason only goes to logs, metrics and the span.
func reject(c *fiber.Ctx, operation string, err error) error {
	code := domain.ErrorCode(err)
	metrics.ValidationFailures.WithLabelValues(operation, code).Inc()

	ctx := c.UserContext()
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String(telemetry.AttrRejection, code))

	LoggerFromCtx(ctx).Warn("request rejected",
		"operation", operation,
		"reason", code,
		"error", err.Error(),
	)

	c.Status(fiber.StatusBadRequest)
	return nil
}

// tagOperation labels the request span with the geometry operation.
func tagOperation(c *fiber.Ctx, operation string) {
	trace.SpanFromContext(c.UserContext()).
		SetAttributes(attribute.String(telemetry.AttrOperation, operation))
}
