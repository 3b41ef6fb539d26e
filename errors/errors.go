package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bind/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors surfaced by reference resolution and binding construction.
// Use errors.Is to match.
var (
	ErrNilTarget                     = namespace.NewError("target must be a non-nil instance")
	ErrInvalidExpressionShape        = namespace.NewError("reference must be a simple property access")
	ErrMissingNotificationCapability = namespace.NewError("readable property target must be observable")
	ErrInvalidBindingDirection       = namespace.NewError("invalid binding direction")
	ErrNoGetter                      = namespace.NewError("property has no getter")
	ErrTypeMismatch                  = namespace.NewError("property type mismatch")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentProperty = "property"
	keySegmentBinding  = "binding"
)

// Exported structured error field keys
var (
	ErrorFieldPropertyName = newKey("name", keySegmentProperty)        // bind.property.name
	ErrorFieldTargetType   = newKey("target_type", keySegmentProperty) // bind.property.target_type
	ErrorFieldValueType    = newKey("value_type", keySegmentProperty)  // bind.property.value_type
	ErrorFieldWantType     = newKey("want_type", keySegmentProperty)   // bind.property.want_type
	ErrorFieldMethod       = newKey("method", keySegmentProperty)      // bind.property.method
)

var (
	ErrorFieldDirection   = newKey("direction", keySegmentBinding)   // bind.binding.direction
	ErrorFieldRequirement = newKey("requirement", keySegmentBinding) // bind.binding.requirement
)
