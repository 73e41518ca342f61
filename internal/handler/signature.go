package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gymsplit/notification-scheduler/internal/signing"
)

// queryParams flattens the request query into the map the signer operates
// on, dropping the signature key itself. Repeated keys keep their first
// value, matching what the signer would have emitted.
func queryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for k, vs := range c.Request.URL.Query() {
		if k == signing.SignatureKey || len(vs) == 0 {
			continue
		}
		params[k] = vs[0]
	}
	return params
}

// verifySignature checks the request's signature over every query parameter
// except the signature itself.
func verifySignature(c *gin.Context, secret string) bool {
	return signing.Verify(queryParams(c), c.Query(signing.SignatureKey), secret)
}
