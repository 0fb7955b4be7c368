package models

// Primitive data types. Any other data type names a class and makes the
// property a cross-reference.
const (
	DataTypeText           = "text"
	DataTypeTextArray      = "text[]"
	DataTypeInt            = "int"
	DataTypeIntArray       = "int[]"
	DataTypeNumber         = "number"
	DataTypeNumberArray    = "number[]"
	DataTypeBoolean        = "boolean"
	DataTypeBooleanArray   = "boolean[]"
	DataTypeDate           = "date"
	DataTypeDateArray      = "date[]"
	DataTypeUUID           = "uuid"
	DataTypeUUIDArray      = "uuid[]"
	DataTypeGeoCoordinates = "geoCoordinates"
	DataTypePhoneNumber    = "phoneNumber"
	DataTypeBlob           = "blob"
	DataTypeObject         = "object"
	DataTypeObjectArray    = "object[]"
)

// Tokenization modes for text properties.
const (
	TokenizationWord       = "word"
	TokenizationLowercase  = "lowercase"
	TokenizationWhitespace = "whitespace"
	TokenizationField      = "field"
)

// Property is a field of a class.
type Property struct {
	Name            string           `json:"name"`
	DataType        []string         `json:"dataType"`
	Description     string           `json:"description,omitempty"`
	Tokenization    string           `json:"tokenization,omitempty"`
	ModuleConfig    map[string]Value `json:"moduleConfig,omitempty"`
	IndexFilterable *bool            `json:"indexFilterable,omitempty"`
	IndexSearchable *bool            `json:"indexSearchable,omitempty"`
}

// IsReference reports whether the property points at other classes rather
// than holding a primitive value.
func (p Property) IsReference() bool {
	for _, dt := range p.DataType {
		if isPrimitiveDataType(dt) {
			return false
		}
	}
	return len(p.DataType) > 0
}

func isPrimitiveDataType(dt string) bool {
	switch dt {
	case DataTypeText, DataTypeTextArray, DataTypeInt, DataTypeIntArray,
		DataTypeNumber, DataTypeNumberArray, DataTypeBoolean, DataTypeBooleanArray,
		DataTypeDate, DataTypeDateArray, DataTypeUUID, DataTypeUUIDArray,
		DataTypeGeoCoordinates, DataTypePhoneNumber, DataTypeBlob,
		DataTypeObject, DataTypeObjectArray, "string", "string[]":
		return true
	}
	return false
}

// PropertyBuilder assembles a Property.
//
//	title := models.NewProperty("title", models.DataTypeText).
//		WithTokenization(models.TokenizationWord).
//		Build()
type PropertyBuilder struct {
	p Property
}

// NewProperty starts a property with the given data types.
func NewProperty(name string, dataType ...string) PropertyBuilder {
	return PropertyBuilder{p: Property{Name: name, DataType: appendCopy[string](nil, dataType...)}}
}

// WithDataType appends to the data type list.
func (b PropertyBuilder) WithDataType(dataType ...string) PropertyBuilder {
	b.p.DataType = appendCopy(b.p.DataType, dataType...)
	return b
}

// WithDescription sets the property description.
func (b PropertyBuilder) WithDescription(description string) PropertyBuilder {
	b.p.Description = description
	return b
}

// WithTokenization sets how text is split for keyword search.
func (b PropertyBuilder) WithTokenization(tokenization string) PropertyBuilder {
	b.p.Tokenization = tokenization
	return b
}

// WithModuleConfig sets the settings of one module, replacing earlier
// settings for the same module.
func (b PropertyBuilder) WithModuleConfig(module string, settings Value) PropertyBuilder {
	b.p.ModuleConfig = setCopy(b.p.ModuleConfig, module, settings)
	return b
}

// WithIndexFilterable toggles the filter index.
func (b PropertyBuilder) WithIndexFilterable(enabled bool) PropertyBuilder {
	b.p.IndexFilterable = ptr(enabled)
	return b
}

// WithIndexSearchable toggles the BM25 index.
func (b PropertyBuilder) WithIndexSearchable(enabled bool) PropertyBuilder {
	b.p.IndexSearchable = ptr(enabled)
	return b
}

// Build returns the property.
func (b PropertyBuilder) Build() Property {
	p := b.p
	if p.DataType == nil {
		p.DataType = []string{}
	}
	p.DataType = cloneSlice(p.DataType)
	p.ModuleConfig = cloneMap(p.ModuleConfig)
	return p
}
