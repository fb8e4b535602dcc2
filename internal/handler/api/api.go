// Package api contains the gin handlers. Every rejected request records an
// audit event carrying the operation name and the serialized response body.
package api

import (
	"encoding/json"

	"coworking-booking/internal/audit"

	"github.com/gin-gonic/gin"
)

// invalidDataMessage heads every 422 body, alongside the field→messages map.
const invalidDataMessage = "The given data was invalid."

func recordRejection(c *gin.Context, sink audit.Sink, category audit.Category, operation string, body any) {
	payload, _ := json.Marshal(body)
	sink.Record(c.Request.Context(), category, operation, string(payload))
}
