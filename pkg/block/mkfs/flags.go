package mkfs

// flagMapping translates a logical flag name and filesystem family into the
// concrete command-line tokens.
//
// A flag name outside familyFlagMappings is a *ConfigurationError regardless
// of strict. A known flag with no token for the family returns nil tokens
// when strict is false and *UnsupportedFlagError when strict is true. When a
// token exists it is returned, followed by param when param is non-empty
// (flags without a parameter, like force, pass an empty param).
func flagMapping(flagName, fam, param string, strict bool) ([]string, error) {
	families, ok := familyFlagMappings[flagName]
	if !ok {
		return nil, &ConfigurationError{Flag: flagName}
	}

	token, ok := families[fam]
	if !ok {
		if strict {
			return nil, &UnsupportedFlagError{Flag: flagName, Family: fam}
		}
		return nil, nil
	}

	tokens := []string{token}
	if param != "" {
		tokens = append(tokens, param)
	}
	return tokens, nil
}
