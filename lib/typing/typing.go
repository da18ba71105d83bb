package typing

import (
	"math"
	"strconv"
	"strings"
)

type KindDetails struct {
	Kind string
}

var (
	Integer = KindDetails{
		Kind: "int",
	}

	Float = KindDetails{
		Kind: "float",
	}

	Boolean = KindDetails{
		Kind: "bool",
	}

	String = KindDetails{
		Kind: "string",
	}
)

func isInteger(value string) bool {
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

func isFloat(value string) bool {
	// ParseFloat also understands hex floats and underscores, which the warehouse does not.
	if strings.ContainsAny(value, "xX_") {
		return false
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isBoolean(value string) bool {
	return strings.EqualFold(value, "true") || strings.EqualFold(value, "false")
}

// InferKind picks the narrowest kind that every non-empty value fits: int, then float, then bool.
// Anything else, including a column that is entirely empty, is a string.
func InferKind(values []string) KindDetails {
	allInteger, allFloat, allBoolean := true, true, true
	var nonEmpty int
	for _, value := range values {
		if value == "" {
			continue
		}

		nonEmpty++
		allInteger = allInteger && isInteger(value)
		allFloat = allFloat && isFloat(value)
		allBoolean = allBoolean && isBoolean(value)
		if !allInteger && !allFloat && !allBoolean {
			return String
		}
	}

	switch {
	case nonEmpty == 0:
		return String
	case allInteger:
		return Integer
	case allFloat:
		return Float
	case allBoolean:
		return Boolean
	default:
		return String
	}
}
