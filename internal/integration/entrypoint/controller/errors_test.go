package controller

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

	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handleError(ctx, err)
	return w
}

func TestHandleErrorMapsKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "validation",
			err:    domainerror.NewTransactionError(domainerror.ErrCodeAmountPrecision, "too precise", domainerror.ErrAmountPrecision),
			status: http.StatusBadRequest,
			code:   "TXN-010004",
		},
		{
			name:   "referential integrity",
			err:    domainerror.NewTransactionError(domainerror.ErrCodeTxnSourceNotFound, "no source", domainerror.ErrSourceNotFoundForTransaction),
			status: http.StatusUnprocessableEntity,
			code:   "TXN-020002",
		},
		{
			name:   "conflict",
			err:    domainerror.NewSourceConflictError(domainerror.ErrCodeSourceInUse, "in use", 3, domainerror.ErrSourceInUse),
			status: http.StatusConflict,
			code:   "SRC-030002",
		},
		{
			name:   "not found wrapped",
			err:    fmt.Errorf("lookup: %w", domainerror.NewCategoryError(domainerror.ErrCodeCategoryNotFound, "missing", domainerror.ErrCategoryNotFound)),
			status: http.StatusNotFound,
			code:   "CAT-040001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respond(tt.err)
			require.Equal(t, tt.status, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, string(domainerror.KindOf(tt.err)), body.Kind)
		})
	}
}

func TestHandleErrorConflictReportsReferences(t *testing.T) {
	w := respond(domainerror.NewSourceConflictError(domainerror.ErrCodeSourceInUse, "in use", 3, domainerror.ErrSourceInUse))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.ReferencingCount)
}

func TestHandleErrorHidesInfrastructureErrors(t *testing.T) {
	w := respond(errors.New("connection reset by peer"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestHandleErrorInternalReportError(t *testing.T) {
	w := respond(domainerror.NewReportError(domainerror.ErrCodeReportInternalError, "boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
