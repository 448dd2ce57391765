package model

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// ---- cafes ------------------------------------------------------------------

// ListCafesRequest is the (empty) payload of GET /cafes.
type ListCafesRequest struct{}

func (r *ListCafesRequest) Validate() error { return nil }

// CafeIDRequest binds the :cafeId path parameter.
type CafeIDRequest struct {
	CafeID string `param:"cafeId" validate:"required"`
}

func (r *CafeIDRequest) Validate() error {
	return validate.Struct(r)
}

// CreateCafeRequest is the body of POST /cafes.
//
// Price is a pointer so a missing price is reported as required instead
// of defaulting to zero. Negative prices pass here and are rejected by the
// service with NEGATIVE_PRICE.
type CreateCafeRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
}

func (r *CreateCafeRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateCafeRequest is the body of PUT /cafes/:cafeId. Omitted fields keep
// their persisted values.
type UpdateCafeRequest struct {
	CafeID      string           `param:"cafeId" json:"-" validate:"required"`
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
}

func (r *UpdateCafeRequest) Validate() error {
	return validate.Struct(r)
}

// ---- tiendas ----------------------------------------------------------------

// ListTiendasRequest is the (empty) payload of GET /tiendas.
type ListTiendasRequest struct{}

func (r *ListTiendasRequest) Validate() error { return nil }

// TiendaIDRequest binds the :tiendaId path parameter.
type TiendaIDRequest struct {
	TiendaID string `param:"tiendaId" validate:"required"`
}

func (r *TiendaIDRequest) Validate() error {
	return validate.Struct(r)
}

// CreateTiendaRequest is the body of POST /tiendas. The 10 character phone
// rule is enforced by the service (INVALID_PHONE), not here.
type CreateTiendaRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

func (r *CreateTiendaRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateTiendaRequest is the body of PUT /tiendas/:tiendaId.
type UpdateTiendaRequest struct {
	TiendaID string  `param:"tiendaId" json:"-" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Address  *string `json:"address" validate:"omitempty,min=1"`
	Phone    *string `json:"phone"`
}

func (r *UpdateTiendaRequest) Validate() error {
	return validate.Struct(r)
}

// ---- associations -----------------------------------------------------------

// CafeTiendaRequest binds /cafes/:cafeId/tiendas/:tiendaId and its mirror
// /tiendas/:tiendaId/cafes/:cafeId.
type CafeTiendaRequest struct {
	CafeID   string `param:"cafeId" validate:"required"`
	TiendaID string `param:"tiendaId" validate:"required"`
}

func (r *CafeTiendaRequest) Validate() error {
	return validate.Struct(r)
}

// EntityRef is one element of a replace-all body. Only the id is used;
// other fields a client echoes back are ignored.
type EntityRef struct {
	ID string `json:"id" validate:"required"`
}

// ReplaceCafeTiendasRequest is PUT /cafes/:cafeId/tiendas. The body is a
// bare JSON array, decoded by UnmarshalJSON after the path param is bound.
type ReplaceCafeTiendasRequest struct {
	CafeID  string      `param:"cafeId" validate:"required"`
	Tiendas []EntityRef `validate:"required,dive"`
}

func (r *ReplaceCafeTiendasRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Tiendas)
}

func (r *ReplaceCafeTiendasRequest) Validate() error {
	return validate.Struct(r)
}

// TiendaIDs returns the referenced ids in request order.
func (r *ReplaceCafeTiendasRequest) TiendaIDs() []string {
	return refIDs(r.Tiendas)
}

// ReplaceTiendaCafesRequest is PUT /tiendas/:tiendaId/cafes.
type ReplaceTiendaCafesRequest struct {
	TiendaID string      `param:"tiendaId" validate:"required"`
	Cafes    []EntityRef `validate:"required,dive"`
}

func (r *ReplaceTiendaCafesRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Cafes)
}

func (r *ReplaceTiendaCafesRequest) Validate() error {
	return validate.Struct(r)
}

// CafeIDs returns the referenced ids in request order.
func (r *ReplaceTiendaCafesRequest) CafeIDs() []string {
	return refIDs(r.Cafes)
}

func refIDs(refs []EntityRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}
