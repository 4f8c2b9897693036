// Package yaml reads CLI configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Ensure Loader satisfies kong.ConfigurationLoader at compile time.
var _ kong.ConfigurationLoader = Loader

// Loader is a kong.ConfigurationLoader for YAML files.
//
// A flag is looked up by its name ("max-pages"), then with dashes
// replaced by underscores ("max_pages"). Scalars are handed to kong as
// strings and sequences are joined with commas, so kong's own mappers do
// the type conversion. An empty file configures nothing.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml config: %w", err)
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if raw, ok := values[key]; ok {
				return toValue(flag.Name, raw)
			}
		}
		return nil, nil
	}
	return f, nil
}

func toValue(name string, raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return nil, fmt.Errorf("config key %q: expected a scalar or a list", name)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ","), nil
	default:
		return fmt.Sprint(v), nil
	}
}
