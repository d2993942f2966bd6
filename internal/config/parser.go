package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	gridsmitherrors "github.com/alexisbeaulieu97/gridsmith/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseScript loads an operation script from disk, validates it, and returns it.
func ParseScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gridsmitherrors.NewParseError(path, 0, err)
	}
	return ParseScriptBytes(path, data)
}

// ParseScriptBytes parses script source. path is only used in error messages.
func ParseScriptBytes(path string, data []byte) (*Script, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, gridsmitherrors.NewParseError(path, extractLine(err), err)
	}

	var script Script
	if err := root.Decode(&script); err != nil {
		return nil, gridsmitherrors.NewParseError(path, extractLine(err), err)
	}
	annotateLines(&root, &script)

	if err := ValidateScript(&script); err != nil {
		return nil, err
	}

	return &script, nil
}

// annotateLines copies the source line of each op item onto the decoded op.
func annotateLines(root *yaml.Node, script *Script) {
	doc := root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "ops" {
			continue
		}
		items := doc.Content[i+1]
		for j, item := range items.Content {
			if j < len(script.Ops) {
				script.Ops[j].Line = item.Line
			}
		}
		return
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
