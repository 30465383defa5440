package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/murad/unidir/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation failure", apperrors.ErrValidationFailed, 400},
		{"numbering range exhausted", apperrors.ErrCodeExhausted, 400},
		{"wrapped exhaustion", fmt.Errorf("%w: all codes between 1 and 99 are assigned", apperrors.ErrCodeExhausted), 400},
		{"code collision", apperrors.ErrCodeCollision, 409},
		{"duplicate university", apperrors.ErrUniversityAlreadyExists, 409},
		{"missing college", apperrors.ErrCollegeNotFound, 404},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401},
		{"expired token", apperrors.ErrTokenExpired, 401},
		{"unknown error", fmt.Errorf("boom"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			HandleAPIError(c, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
