package contract

import (
	"fmt"
	"strings"
)

// BuildURL substitutes {name} placeholders in path with params.
// Placeholders without a matching param are left as they are.
func BuildURL(path string, params map[string]any) string {
	url := path
	for key, value := range params {
		url = strings.ReplaceAll(url, "{"+key+"}", fmt.Sprint(value))
	}
	return url
}
