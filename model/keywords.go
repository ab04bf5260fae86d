package model

// ValueType is the internal datatype of a Schema keyword value. Readers
// coerce known keywords to their ValueType; unknown keywords are kept raw.
type ValueType int

const (
	// ValueRaw is an untyped JSON value: nil, bool, string, json.Number,
	// []any or *Map[any].
	ValueRaw ValueType = iota
	// ValueString is a string.
	ValueString
	// ValueBoolean is a bool.
	ValueBoolean
	// ValueInteger is an int.
	ValueInteger
	// ValueNumber is a json.Number.
	ValueNumber
	// ValueStringList is a []string.
	ValueStringList
	// ValueTypeList is a []string of type tokens. A single string on the
	// wire is normalized to a one-element list.
	ValueTypeList
	// ValueRawList is a []any of raw values.
	ValueRawList
	// ValueSchema is a *Schema, possibly a boolean schema.
	ValueSchema
	// ValueSchemaList is a []*Schema.
	ValueSchemaList
	// ValueSchemaMap is a *Map[*Schema].
	ValueSchemaMap
	// ValueStringListMap is a *Map[[]string].
	ValueStringListMap
	// ValueDiscriminator is a *Discriminator.
	ValueDiscriminator
	// ValueXML is an *XML.
	ValueXML
	// ValueExternalDocs is an *ExternalDocumentation.
	ValueExternalDocs
)

// Schema keywords with a typed representation.
const (
	KeywordRef                   = "$ref"
	KeywordID                    = "$id"
	KeywordSchema                = "$schema"
	KeywordAnchor                = "$anchor"
	KeywordDynamicRef            = "$dynamicRef"
	KeywordDynamicAnchor         = "$dynamicAnchor"
	KeywordComment               = "$comment"
	KeywordDefs                  = "$defs"
	KeywordTitle                 = "title"
	KeywordDescription           = "description"
	KeywordFormat                = "format"
	KeywordPattern               = "pattern"
	KeywordType                  = "type"
	KeywordEnum                  = "enum"
	KeywordConst                 = "const"
	KeywordDefault               = "default"
	KeywordExample               = "example"
	KeywordExamples              = "examples"
	KeywordMultipleOf            = "multipleOf"
	KeywordMaximum               = "maximum"
	KeywordMinimum               = "minimum"
	KeywordExclusiveMaximum      = "exclusiveMaximum"
	KeywordExclusiveMinimum      = "exclusiveMinimum"
	KeywordMaxLength             = "maxLength"
	KeywordMinLength             = "minLength"
	KeywordMaxItems              = "maxItems"
	KeywordMinItems              = "minItems"
	KeywordUniqueItems           = "uniqueItems"
	KeywordMaxContains           = "maxContains"
	KeywordMinContains           = "minContains"
	KeywordMaxProperties         = "maxProperties"
	KeywordMinProperties         = "minProperties"
	KeywordRequired              = "required"
	KeywordDependentRequired     = "dependentRequired"
	KeywordNullable              = "nullable"
	KeywordReadOnly              = "readOnly"
	KeywordWriteOnly             = "writeOnly"
	KeywordDeprecated            = "deprecated"
	KeywordItems                 = "items"
	KeywordPrefixItems           = "prefixItems"
	KeywordContains              = "contains"
	KeywordProperties            = "properties"
	KeywordPatternProperties     = "patternProperties"
	KeywordAdditionalProperties  = "additionalProperties"
	KeywordPropertyNames         = "propertyNames"
	KeywordDependentSchemas      = "dependentSchemas"
	KeywordAllOf                 = "allOf"
	KeywordAnyOf                 = "anyOf"
	KeywordOneOf                 = "oneOf"
	KeywordNot                   = "not"
	KeywordIf                    = "if"
	KeywordThen                  = "then"
	KeywordElse                  = "else"
	KeywordUnevaluatedItems      = "unevaluatedItems"
	KeywordUnevaluatedProperties = "unevaluatedProperties"
	KeywordContentEncoding       = "contentEncoding"
	KeywordContentMediaType      = "contentMediaType"
	KeywordContentSchema         = "contentSchema"
	KeywordDiscriminator         = "discriminator"
	KeywordXML                   = "xml"
	KeywordExternalDocs          = "externalDocs"
)

var keywordTypes = map[string]ValueType{
	KeywordRef:                   ValueString,
	KeywordID:                    ValueString,
	KeywordSchema:                ValueString,
	KeywordAnchor:                ValueString,
	KeywordDynamicRef:            ValueString,
	KeywordDynamicAnchor:         ValueString,
	KeywordComment:               ValueString,
	KeywordDefs:                  ValueSchemaMap,
	KeywordTitle:                 ValueString,
	KeywordDescription:           ValueString,
	KeywordFormat:                ValueString,
	KeywordPattern:               ValueString,
	KeywordType:                  ValueTypeList,
	KeywordEnum:                  ValueRawList,
	KeywordConst:                 ValueRaw,
	KeywordDefault:               ValueRaw,
	KeywordExample:               ValueRaw,
	KeywordExamples:              ValueRawList,
	KeywordMultipleOf:            ValueNumber,
	KeywordMaximum:               ValueNumber,
	KeywordMinimum:               ValueNumber,
	KeywordExclusiveMaximum:      ValueNumber,
	KeywordExclusiveMinimum:      ValueNumber,
	KeywordMaxLength:             ValueInteger,
	KeywordMinLength:             ValueInteger,
	KeywordMaxItems:              ValueInteger,
	KeywordMinItems:              ValueInteger,
	KeywordUniqueItems:           ValueBoolean,
	KeywordMaxContains:           ValueInteger,
	KeywordMinContains:           ValueInteger,
	KeywordMaxProperties:         ValueInteger,
	KeywordMinProperties:         ValueInteger,
	KeywordRequired:              ValueStringList,
	KeywordDependentRequired:     ValueStringListMap,
	KeywordNullable:              ValueBoolean,
	KeywordReadOnly:              ValueBoolean,
	KeywordWriteOnly:             ValueBoolean,
	KeywordDeprecated:            ValueBoolean,
	KeywordItems:                 ValueSchema,
	KeywordPrefixItems:           ValueSchemaList,
	KeywordContains:              ValueSchema,
	KeywordProperties:            ValueSchemaMap,
	KeywordPatternProperties:     ValueSchemaMap,
	KeywordAdditionalProperties:  ValueSchema,
	KeywordPropertyNames:         ValueSchema,
	KeywordDependentSchemas:      ValueSchemaMap,
	KeywordAllOf:                 ValueSchemaList,
	KeywordAnyOf:                 ValueSchemaList,
	KeywordOneOf:                 ValueSchemaList,
	KeywordNot:                   ValueSchema,
	KeywordIf:                    ValueSchema,
	KeywordThen:                  ValueSchema,
	KeywordElse:                  ValueSchema,
	KeywordUnevaluatedItems:      ValueSchema,
	KeywordUnevaluatedProperties: ValueSchema,
	KeywordContentEncoding:       ValueString,
	KeywordContentMediaType:      ValueString,
	KeywordContentSchema:         ValueSchema,
	KeywordDiscriminator:         ValueDiscriminator,
	KeywordXML:                   ValueXML,
	KeywordExternalDocs:          ValueExternalDocs,
}

// KeywordValueType returns the datatype of a Schema keyword. Unknown keywords
// and extensions are ValueRaw.
func KeywordValueType(keyword string) ValueType {
	if t, ok := keywordTypes[keyword]; ok {
		return t
	}
	return ValueRaw
}

// IsKnownKeyword reports whether keyword has an entry in the keyword table.
func IsKnownKeyword(keyword string) bool {
	_, ok := keywordTypes[keyword]
	return ok
}

// keywords31 are only defined by the 3.1 (JSON Schema 2020-12) dialect.
var keywords31 = map[string]bool{
	KeywordID:                    true,
	KeywordSchema:                true,
	KeywordAnchor:                true,
	KeywordDynamicRef:            true,
	KeywordDynamicAnchor:         true,
	KeywordComment:               true,
	KeywordDefs:                  true,
	KeywordPrefixItems:           true,
	KeywordContains:              true,
	KeywordMinContains:           true,
	KeywordMaxContains:           true,
	KeywordDependentRequired:     true,
	KeywordDependentSchemas:      true,
	KeywordPropertyNames:         true,
	KeywordPatternProperties:     true,
	KeywordIf:                    true,
	KeywordThen:                  true,
	KeywordElse:                  true,
	KeywordUnevaluatedItems:      true,
	KeywordUnevaluatedProperties: true,
	KeywordContentEncoding:       true,
	KeywordContentMediaType:      true,
	KeywordContentSchema:         true,
}

// Is31Keyword reports whether keyword exists only in the 3.1 dialect.
func Is31Keyword(keyword string) bool {
	return keywords31[keyword]
}
