package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondMapsKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrValidation("invalid_request", map[string]string{"Name": "min"}), http.StatusBadRequest, "invalid_request"},
		{ErrUnauthenticated("invalid_token"), http.StatusUnauthorized, "invalid_token"},
		{ErrForbidden("forbidden"), http.StatusForbidden, "forbidden"},
		{ErrNotFound("lead_not_found"), http.StatusNotFound, "lead_not_found"},
		{ErrConflict("sale_already_exists"), http.StatusConflict, "sale_already_exists"},
		{ErrBusiness("lead_not_closed"), http.StatusUnprocessableEntity, "lead_not_closed"},
		{fmt.Errorf("wrapped: %w", ErrNotFound("stage_not_found")), http.StatusNotFound, "stage_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			w, body := respond(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondHidesInternalErrors(t *testing.T) {
	w, body := respond(t, errors.New("pq: connection refused at 10.0.0.3"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", body.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestRespondKeepsFieldDetail(t *testing.T) {
	_, body := respond(t, ErrValidation("invalid_request", map[string]string{"Name": "required"}))
	assert.Equal(t, map[string]string{"Name": "required"}, body.Fields)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("ctx: %w", ErrConflict("email_already_exists"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.True(t, IsBusiness(err, "email_already_exists"))
}
