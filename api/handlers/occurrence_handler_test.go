package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func listOccurrencesRequest(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/occurrences"+query, nil)

	// The rejection paths never reach the service
	h := NewOccurrenceHandler(nil, logrus.New())
	h.ListOccurrences(c)
	return w
}

func TestListOccurrencesRejectsCombinedFilters(t *testing.T) {
	w := listOccurrencesRequest(t, "?active=true&user_id=1")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "not both")
}

func TestListOccurrencesRejectsMalformedActiveFilter(t *testing.T) {
	w := listOccurrencesRequest(t, "?active=maybe")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOccurrencesRejectsMalformedUserFilter(t *testing.T) {
	w := listOccurrencesRequest(t, "?user_id=abc")

	require.Equal(t, http.StatusBadRequest, w.Code)
}
