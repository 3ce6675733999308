package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps request bodies. A full registration payload is under two
// kilobytes, so the cap mostly guards the notification endpoints against
// oversized message bodies. The resulting *http.MaxBytesError surfaces
// through the JSON binder as a body_too_large response.
func MaxBodyBytes(max int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, max)

		ctx.Next()
	}
}
