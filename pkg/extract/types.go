package extract

// Prop is one declared component property. Description and Documented are
// filled in later when a documentation table entry is merged onto the
// declaration; a bare declaration has Documented=false.
type Prop struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
	Documented  bool   `json:"documented"`
}

// Event is one emitted event name.
type Event struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`
	Documented  bool   `json:"documented"`
}

// Constant is a top-level const declaration with its raw right-hand side.
type Constant struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Exported bool   `json:"exported"`
}

// FunctionKind distinguishes declaration styles.
type FunctionKind string

const (
	KindFunction FunctionKind = "function"
	KindArrow    FunctionKind = "arrow"
)

// Function is a named function declaration or arrow-function assignment.
type Function struct {
	Name     string       `json:"name"`
	Kind     FunctionKind `json:"kind"`
	Exported bool         `json:"exported"`
}

// Section is one markdown section produced by splitting on heading markers.
// The list is flat and ordered; nesting is not reconstructed.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CodeSample is one fenced code block.
type CodeSample struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// DocRow is one parsed documentation-table row. Columns are positional:
// name, type, default (four-column tables only), description.
type DocRow struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}
