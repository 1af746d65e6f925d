package domain

import "strings"

// PersonalizeScript substitutes {{key}} placeholders in the script template
// with values from the supplied mapping. Only keys present in the mapping are
// substituted (an empty value yields an empty substitution); placeholders
// without a matching key are left as literal text. Literal "{{" sequences are
// not escapable.
func PersonalizeScript(script string, fields map[string]string) string {
	for key, value := range fields {
		script = strings.ReplaceAll(script, "{{"+key+"}}", value)
	}
	return script
}
