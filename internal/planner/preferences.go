package planner

// ValidationError marks input problems detected before any network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Preferences narrows recommendations. Every field is optional; zero values
// are omitted from the rendered prompt.
type Preferences struct {
	Budget    string
	Interests []string
	Region    string
	Climate   string
}

func (p *Preferences) empty() bool {
	return p.Budget == "" && len(p.Interests) == 0 && p.Region == "" && p.Climate == ""
}

// ParsePreferences validates the shape of JSON-decoded preferences and
// converts them to the typed form. A nil map yields nil preferences. Keys with
// null values are treated as absent; unknown keys are ignored.
func ParsePreferences(raw map[string]any) (*Preferences, error) {
	if raw == nil {
		return nil, nil
	}

	prefs := &Preferences{}

	if v, ok := raw["budget"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Reason: "budget must be a string"}
		}
		prefs.Budget = s
	}

	if v, ok := raw["interests"]; ok && v != nil {
		list, ok := v.([]any)
		if !ok {
			return nil, &ValidationError{Reason: "interests must be a list of strings"}
		}
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Reason: "all interests must be strings"}
			}
			prefs.Interests = append(prefs.Interests, s)
		}
	}

	if v, ok := raw["region"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Reason: "region must be a string"}
		}
		prefs.Region = s
	}

	if v, ok := raw["climate"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, &ValidationError{Reason: "climate must be a string"}
		}
		prefs.Climate = s
	}

	return prefs, nil
}
