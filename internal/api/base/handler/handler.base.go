// Package basehdl provides the base HTTP handler layer: request parsing,
// validation, filter processing and generic CRUD endpoints.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/InderX84/FarmX/internal/api/base/service"
	"github.com/InderX84/FarmX/internal/common"
	"github.com/InderX84/FarmX/internal/global"
)

// FilterOptions restricts what client-supplied filters may contain.
type FilterOptions struct {
	DeniedFields     []string // fields that must never be filterable
	AllowedOperators []string // permitted MongoDB operators
	MaxFields        int      // maximum number of filter fields
}

// BaseHandler is the generic Fiber handler offering standard CRUD endpoints.
//
// Type parameters:
// - T: model type
// - CreateInput: DTO for create requests
// - UpdateInput: DTO for update requests
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T]
	filterOptions FilterOptions
}

// NewBaseHandler creates a BaseHandler around the given service.
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"otp",
				"secret",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
				"$regex",
			},
			MaxFields: 10,
		},
	}
}

// ParseRequestBody parses the JSON body into input and validates it.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.ValidateInput(input)
}

// ValidateInput runs struct tag validation on the input.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseObjectID reads and validates an ObjectID URL parameter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseObjectID(c fiber.Ctx, param string) (primitive.ObjectID, error) {
	id := c.Params(param)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("URL parameter '%s' must not be empty", param),
			common.StatusBadRequest,
			nil,
		)
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("'%s' is not a valid ObjectID", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return objID, nil
}

// ProcessFilter parses and validates the JSON filter query parameter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (bson.M, error) {
	var filter map[string]interface{}

	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter is not valid JSON: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	filter = h.normalizeFilter(filter)

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter converts ObjectID-formatted strings on *Id fields into
// real ObjectIDs so filters match stored documents.
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		fieldLower := strings.ToLower(field)
		isIDField := field == "_id" || (strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2)
		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	if strValue, ok := value.(string); ok && isIDField {
		if objID, err := primitive.ObjectIDFromHex(strValue); err == nil {
			return objID
		}
		return strValue
	}

	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter enforces the handler's FilterOptions on a parsed filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter has too many fields (max %d)", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if strings.EqualFold(field, denied) {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Filtering on '%s' is not allowed", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if !strings.HasPrefix(op, "$") {
					continue
				}
				allowed := false
				for _, allowedOp := range h.filterOptions.AllowedOperators {
					if op == allowedOp {
						allowed = true
						break
					}
				}
				if !allowed {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Operator '%s' is not allowed", op),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// CurrentUserID reads the authenticated user id stored in locals by the auth
// middleware. Returns NilObjectID when the request is unauthenticated.
func CurrentUserID(c fiber.Ctx) primitive.ObjectID {
	idStr, ok := c.Locals("user_id").(string)
	if !ok {
		return primitive.NilObjectID
	}
	objID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID
	}
	return objID
}

// convertInput maps a DTO onto the model through a bson round-trip, so DTO
// and model fields align on their bson tags.
func convertInput(input interface{}, model interface{}) error {
	raw, err := bson.Marshal(input)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, model)
}
