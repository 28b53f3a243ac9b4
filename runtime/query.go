package runtime

import "fmt"

// OperationKind names the request shape of a queued operation.
type OperationKind int

const (
	// OpGet reads the properties of the binding path.
	OpGet OperationKind = iota
	// OpCreate adds a new child under a collection path.
	OpCreate
	// OpUpdate patches the entity at the binding path.
	OpUpdate
	// OpDelete removes the entity at the binding path.
	OpDelete
	// OpInvoke calls a named service operation on the binding path.
	OpInvoke
)

func (k OperationKind) String() string {
	switch k {
	case OpGet:
		return "get"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpInvoke:
		return "invoke"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operation is a recorded, not-yet-executed request against the service.
// Constructing one performs no I/O; execution happens when the owning
// QueryContext is flushed.
type Operation struct {
	Kind OperationKind

	// Path is the binding path the request is addressed to.
	Path *ResourcePath

	// Name is the service-operation name for OpInvoke; empty otherwise.
	Name string

	// Parameters is the request payload: a value object, a map, or nil.
	Parameters any

	// ParameterName, when set, wraps Parameters under a single key in the
	// outgoing payload.
	ParameterName string

	// Return, when non-nil, receives the mapped response payload after the
	// flush completes. It stays unpopulated if the flush fails first.
	Return PropertySink
}

// Address resolves the binding path's full address.
func (op *Operation) Address() string { return op.Path.Address() }

// NewGet records a read of path; the response backfills ret.
func NewGet(path *ResourcePath, ret PropertySink) *Operation {
	return &Operation{Kind: OpGet, Path: path, Return: ret}
}

// NewCreate records the creation of a child under the collection at path.
func NewCreate(path *ResourcePath, params any, ret PropertySink) *Operation {
	return &Operation{Kind: OpCreate, Path: path, Parameters: params, Return: ret}
}

// NewUpdate records a patch of the entity at path.
func NewUpdate(path *ResourcePath, params any) *Operation {
	return &Operation{Kind: OpUpdate, Path: path, Parameters: params}
}

// NewDelete records the removal of the entity at path.
func NewDelete(path *ResourcePath) *Operation {
	return &Operation{Kind: OpDelete, Path: path}
}

// NewInvoke records a named service operation against path. paramName, when
// non-empty, wraps the payload; ret may be nil when the operation returns
// nothing of interest.
func NewInvoke(path *ResourcePath, name string, params any, paramName string, ret PropertySink) *Operation {
	return &Operation{
		Kind:          OpInvoke,
		Path:          path,
		Name:          name,
		Parameters:    params,
		ParameterName: paramName,
		Return:        ret,
	}
}
