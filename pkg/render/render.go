package render

import (
	"bytes"
	"fmt"

	amconfig "github.com/prometheus/alertmanager/config"
	"gopkg.in/yaml.v3"

	"github.com/hostfleet/amforge/pkg/types"
)

// Config renders the alertmanager.yml document for cfg. The five top-level
// keys are always emitted in schema order: global, route, receivers,
// inhibit_rules, templates. Passthrough sections keep the exact structure the
// operator supplied; nothing is reordered or defaulted here.
func Config(cfg *types.Config) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	appendSection(root, "global", mappingOrEmpty(cfg.Global))
	appendSection(root, "route", mappingOrEmpty(cfg.Route))
	appendSection(root, "receivers", sequenceOrEmpty(cfg.Receivers))
	appendSection(root, "inhibit_rules", sequenceOrEmpty(cfg.InhibitRules))
	appendSection(root, "templates", stringSequence(cfg.Templates))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to render configuration: %v", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to render configuration: %v", err)
	}

	return buf.Bytes(), nil
}

// Verify feeds a rendered document through the upstream Alertmanager
// configuration loader. The renderer itself is a structural translation and
// accepts anything shaped correctly; Verify catches semantic mistakes (an
// unknown receiver name in the route, a bad duration) before the file lands
// on a host.
func Verify(data []byte) error {
	if _, err := amconfig.Load(string(data)); err != nil {
		return fmt.Errorf("rendered configuration rejected by upstream loader: %v", err)
	}
	return nil
}

func appendSection(root *yaml.Node, key string, val *yaml.Node) {
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		val,
	)
}

func mappingOrEmpty(n *yaml.Node) *yaml.Node {
	if n == nil {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	return n
}

func sequenceOrEmpty(n *yaml.Node) *yaml.Node {
	if n == nil {
		return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	}
	return n
}

func stringSequence(values []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(values) == 0 {
		seq.Style = yaml.FlowStyle
		return seq
	}
	for _, v := range values {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: v,
			Style: yaml.SingleQuotedStyle,
		})
	}
	return seq
}
