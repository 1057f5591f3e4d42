package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteDefault writes a commented starter config to path. It preserves
// nothing - callers confirm overwrites before calling this.
func WriteDefault(path string) error {
	doc := defaultDocument()

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// defaultDocument builds the default config as a yaml.Node tree so the
// written file carries comments explaining each field.
func defaultDocument() *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	versionKey := scalarNode("version", "!!str")
	versionKey.HeadComment = "barlight configuration\nSee 'barlight init --help' for the full schema."
	root.Content = append(root.Content,
		versionKey,
		scalarNode(strconv.Itoa(CurrentConfigVersion), "!!int"))

	blocksKey := scalarNode("blocks", "!!str")
	blocksKey.HeadComment = "Blocks render left to right. Each refreshes on its own interval."
	blocks := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, b := range DefaultConfig().Blocks {
		blocks.Content = append(blocks.Content, blockNode(b))
	}
	root.Content = append(root.Content, blocksKey, blocks)

	return root
}

// blockNode converts a block definition to a mapping node, writing the
// interval in duration-string form rather than nanoseconds.
func blockNode(b BlockConfig) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	node.Content = append(node.Content,
		scalarNode("type", "!!str"), scalarNode(b.Type, "!!str"),
		scalarNode("format", "!!str"), scalarNode(b.Format, "!!str"),
		scalarNode("interval", "!!str"), scalarNode(b.Interval.String(), "!!str"),
		scalarNode("color", "!!str"), quotedNode(b.Color))
	if b.Interface != "" {
		node.Content = append(node.Content,
			scalarNode("interface", "!!str"), scalarNode(b.Interface, "!!str"))
	}
	return node
}

func scalarNode(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// quotedNode forces quoting so hex colors aren't parsed as YAML comments.
func quotedNode(value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: value,
		Style: yaml.DoubleQuotedStyle,
	}
}
