package dectable

import (
	"strconv"
	"strings"
)

// DataType identifies the declared value kind of a parameter or a comparison
// value. The constant values double as the decision-table type references
// emitted in input and output column definitions.
type DataType string

const (
	String   DataType = "string"
	Integer  DataType = "integer"
	Long     DataType = "long"
	Double   DataType = "double"
	Boolean  DataType = "boolean"
	Date     DataType = "date"
	DateTime DataType = "dateTime"
)

// Ref returns the decision-table type reference for the type.
func (t DataType) Ref() string { return string(t) }

// Numeric reports whether the type is one of the numeric kinds.
func (t DataType) Numeric() bool {
	return t == Integer || t == Long || t == Double
}

// InferDataType guesses a data type from the string form of a value:
// a parseable number is Double (with a decimal point) or Integer, the
// literals "true" and "false" are Boolean, everything else is String.
func InferDataType(value string) DataType {
	if value == "" {
		return String
	}
	if strings.Contains(value, ".") {
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			return Double
		}
	} else if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Integer
	}
	if strings.EqualFold(value, "true") || strings.EqualFold(value, "false") {
		return Boolean
	}
	return String
}

// DataTypeFromRef finds a DataType by its type reference, case-insensitively.
// Unknown references default to String.
func DataTypeFromRef(ref string) DataType {
	for _, t := range []DataType{String, Integer, Long, Double, Boolean, Date, DateTime} {
		if strings.EqualFold(ref, string(t)) {
			return t
		}
	}
	return String
}
