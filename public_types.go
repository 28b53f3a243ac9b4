package corridor

import "github.com/corridorhq/corridor-go/runtime"

// Public type aliases so SDK consumers can import only the corridor package
// for the core resource-model types.
type (
	QueryContext = runtime.QueryContext
	ResourcePath = runtime.ResourcePath
	Operation    = runtime.Operation
	PropertySet  = runtime.PropertySet
	Result       = runtime.Result
)
