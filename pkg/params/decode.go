package params

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hostfleet/amforge/pkg/defaults"
)

// describe renders a node's YAML type for error messages
func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "a mapping"
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.AliasNode:
		return "an alias"
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!str":
			return fmt.Sprintf("string %q", n.Value)
		case "!!int":
			return fmt.Sprintf("integer %s", n.Value)
		case "!!float":
			return fmt.Sprintf("float %s", n.Value)
		case "!!bool":
			return fmt.Sprintf("boolean %s", n.Value)
		case "!!null":
			return "null"
		default:
			return fmt.Sprintf("scalar %q", n.Value)
		}
	default:
		return "an unknown node"
	}
}

func typeError(field, want string, got *yaml.Node) error {
	return fmt.Errorf("parameter %s: expected %s, got %s (line %d)", field, want, describe(got), got.Line)
}

func decodeString(field string, n *yaml.Node, dst *string) error {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return typeError(field, "a string", n)
	}
	return n.Decode(dst)
}

func decodeArch(field string, n *yaml.Node, dst *string) error {
	var raw string
	if err := decodeString(field, n, &raw); err != nil {
		return err
	}
	*dst = defaults.NormalizeArch(raw)
	return nil
}

func decodeBool(field string, n *yaml.Node, dst *bool) error {
	if n.Kind != yaml.ScalarNode || n.Tag != "!!bool" {
		return typeError(field, "a boolean", n)
	}
	return n.Decode(dst)
}

func decodeStringSlice(field string, n *yaml.Node, dst *[]string) error {
	if n.Kind != yaml.SequenceNode {
		return typeError(field, "a sequence", n)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		var s string
		if err := decodeString(field, item, &s); err != nil {
			return typeError(field, "a sequence of strings", item)
		}
		out = append(out, s)
	}
	*dst = out
	return nil
}

// requireMapping validates the node shape and stores the node itself so the
// structure passes through to rendering untouched
func requireMapping(field string, n *yaml.Node, dst **yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return typeError(field, "a mapping", n)
	}
	*dst = n
	return nil
}

func requireSequence(field string, n *yaml.Node, dst **yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return typeError(field, "a sequence", n)
	}
	*dst = n
	return nil
}
