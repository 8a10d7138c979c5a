package loader

import (
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

func parseYAML(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlErrorLine pulls the line number out of a yaml.v3 error message.
// The library reports positions only as text.
func yamlErrorLine(err error) (int, bool) {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0, false
	}
	return n, true
}
