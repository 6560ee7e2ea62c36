package discovery

import (
	"regexp"

	"github.com/gobench-dev/gobench"
)

// Filter keeps only the Instances whose DisplayName matches pattern, the
// same regex-over-name selection spec.md §1 names as the discovery
// layer's one external contract with the core.
func Filter(instances []gobench.Instance, pattern string) ([]gobench.Instance, error) {
	if pattern == "" {
		return instances, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	out := make([]gobench.Instance, 0, len(instances))
	for i := range instances {
		if re.MatchString(instances[i].DisplayName()) {
			out = append(out, instances[i])
		}
	}
	return out, nil
}
