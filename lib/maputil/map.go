package maputil

// GetKeyFromMap returns obj[key], or defaultValue when the map is empty or the key is missing.
func GetKeyFromMap(obj map[string]any, key string, defaultValue any) any {
	if len(obj) == 0 {
		return defaultValue
	}

	val, isOk := obj[key]
	if !isOk {
		return defaultValue
	}

	return val
}
