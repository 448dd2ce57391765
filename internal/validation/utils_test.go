package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, names, values []string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok, "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidateCreateCafe(t *testing.T) {
	c := newContext(http.MethodPost, "/cafes", `{"name":"Tinto","description":"Black","price":2.5}`, nil, nil)
	req := &model.CreateCafeRequest{}

	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "Tinto", req.Name)
	require.NotNil(t, req.Price)
	assert.Equal(t, "2.5", req.Price.String())
}

func TestBindAndValidateMissingFields(t *testing.T) {
	c := newContext(http.MethodPost, "/tiendas", `{"name":"Norte"}`, nil, nil)

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.CreateTiendaRequest{}))
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "address", Error: "is required"},
		{Field: "phone", Error: "is required"},
	}, httpErr.Errors)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, "/cafes", `{"name":`, nil, nil)

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.CreateCafeRequest{}))
	assert.NotEmpty(t, httpErr.Message)
	assert.Nil(t, httpErr.Errors)
}

func TestBindAndValidateReplaceBody(t *testing.T) {
	c := newContext(http.MethodPut, "/cafes/c1/tiendas", `[{"id":"t1","name":"ignored"},{"id":"t2"}]`,
		[]string{"cafeId"}, []string{"c1"})
	req := &model.ReplaceCafeTiendasRequest{}

	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, "c1", req.CafeID)
	assert.Equal(t, []string{"t1", "t2"}, req.TiendaIDs())
}

func TestBindAndValidateReplaceItemWithoutID(t *testing.T) {
	c := newContext(http.MethodPut, "/tiendas/t1/cafes", `[{"id":"c1"},{"name":"no id"}]`,
		[]string{"tiendaId"}, []string{"t1"})

	httpErr := requireHTTPError(t, BindAndValidate(c, &model.ReplaceTiendaCafesRequest{}))
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "cafes[1].id", httpErr.Errors[0].Field)
}

func TestCustomValidationErrors(t *testing.T) {
	msg, fields := extractValidationError(CustomValidationErrors{{Field: "price", Message: "bad"}})
	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "price", Error: "bad"}}, fields)
}
