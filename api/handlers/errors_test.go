package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ATClus/psa-api-sub000/internal/repository"
	"github.com/ATClus/psa-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "value outside a closed set is a bad request",
			err:  fmt.Errorf("%w: intensity %q", service.ErrInvalidValue, "EXTREME"),
			want: http.StatusBadRequest,
		},
		{
			name: "parent not found rejects the creation",
			err:  fmt.Errorf("%w: address 99", service.ErrParentNotFound),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "missing row is not found",
			err:  repository.ErrNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "duplicate secondary key conflicts",
			err:  repository.ErrDuplicateKey,
			want: http.StatusConflict,
		},
		{
			name: "storage fault is a server error",
			err:  errors.New("connection reset by peer"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, log, tc.err, "Occurrence")

			require.Equal(t, tc.want, w.Code)
		})
	}
}
