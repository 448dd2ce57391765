package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "CAFE_INVALID", generateErrorCode("cafes", CheckViolation))
	assert.Equal(t, "TIENDA_CAFE_NOT_FOUND", generateErrorCode("tienda_cafes", ForeignKeyViolation))
	assert.Equal(t, "TIENDA_ALREADY_EXISTS", generateErrorCode("tiendas", UniqueViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
	assert.Equal(t, "CAFE_OUT_OF_RANGE", generateErrorCode("cafes", NumericOutOfRange))
}

func TestColumnFromCheckConstraint(t *testing.T) {
	assert.Equal(t, "price", columnFromCheckConstraint("cafes_price_check", ""))
	assert.Equal(t, "phone", columnFromCheckConstraint("tiendas_phone_check", ""))
	assert.Equal(t, "name", columnFromCheckConstraint("cafes_price_check", "name"))
	assert.Empty(t, columnFromCheckConstraint("price_positive", ""))
}

func TestHandleErrorPostgres(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		status  int
		code    string
		message string
	}{
		{
			name:    "check violation",
			pgErr:   &pgconn.PgError{Code: "23514", Severity: "ERROR", TableName: "cafes", ConstraintName: "cafes_price_check"},
			status:  http.StatusBadRequest,
			code:    "CAFE_INVALID",
			message: "The Price value does not meet required conditions",
		},
		{
			name:    "foreign key violation",
			pgErr:   &pgconn.PgError{Code: "23503", Severity: "ERROR", TableName: "tienda_cafes"},
			status:  http.StatusNotFound,
			code:    "TIENDA_CAFE_NOT_FOUND",
			message: "The referenced tienda cafe does not exist",
		},
		{
			name:    "not null violation",
			pgErr:   &pgconn.PgError{Code: "23502", Severity: "ERROR", TableName: "tiendas", ColumnName: "address"},
			status:  http.StatusBadRequest,
			code:    "TIENDA_REQUIRED",
			message: "The Address is required",
		},
		{
			name:    "numeric overflow",
			pgErr:   &pgconn.PgError{Code: "22003", Severity: "ERROR", Message: "numeric field overflow"},
			status:  http.StatusBadRequest,
			code:    "RECORD_OUT_OF_RANGE",
			message: "One or more values are out of range",
		},
		{
			name:    "unknown state",
			pgErr:   &pgconn.PgError{Code: "57014", Severity: "ERROR"},
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(fmt.Errorf("insert: %w", tt.pgErr)), &httpErr)

			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleErrorApplicationErrors(t *testing.T) {
	original := errs.NewNotFoundError("already mapped", true, nil)
	assert.Same(t, original, HandleError(original))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, HandleError(errs.NewBusinessError(errs.KindInvalidPhone, "bad phone")), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "INVALID_PHONE", httpErr.Code)

	require.ErrorAs(t, HandleError(fmt.Errorf("get: %w", pgx.ErrNoRows)), &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	require.ErrorAs(t, HandleError(errors.New("connection reset")), &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})

	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
