// Package input loads magnet link parameters from a YAML or JSON file.
//
// The file holds a single-entry mapping: the torrent hash is the key and
// the value is either empty or a mapping of link options ('title' and
// 'trackers'). JSON is accepted through YAML superset parsing. This
// package only checks the structural shape; hash and tracker format
// validation belongs to the magnet package.
package input

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/mkmagnet/internal/errors"
)

// Params holds the already-split values extracted from an input file.
type Params struct {
	Hash     string
	Title    string
	HasTitle bool
	Trackers []string
}

// LoadPath reads link parameters from the file at path. The path "-"
// reads standard input.
func LoadPath(path string) (*Params, error) {
	if path == "-" {
		return Load(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open_input",
			fmt.Sprintf("cannot open input file '%s'", path), err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses link parameters from r.
func Load(r io.Reader) (*Params, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errMissingData(nil)
		}
		return nil, errors.NewInputError("parse_input",
			"cannot parse input file", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errMissingData(nil)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode || len(root.Content) < 2 {
		return nil, errMissingData(nil)
	}

	// Mapping nodes interleave key and value nodes. The file contract is
	// a single entry; with more than one present the last wins.
	keyNode := root.Content[len(root.Content)-2]
	valNode := root.Content[len(root.Content)-1]

	if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
		return nil, errors.NewInputError("hash_not_string",
			"torrent hash must be a string", nil)
	}

	params := &Params{Hash: keyNode.Value}

	if valNode.Tag == "!!null" {
		return params, nil
	}

	if valNode.Kind != yaml.MappingNode {
		return nil, errors.NewInputError("options_not_mapping",
			"link options must be a dictionary", nil)
	}

	if err := decodeOptions(valNode, params); err != nil {
		return nil, err
	}

	return params, nil
}

func decodeOptions(node *yaml.Node, params *Params) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]

		switch key.Value {
		case "title":
			if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
				return errors.NewInputError("title_not_string",
					"'title' must be a string", nil)
			}
			params.Title = val.Value
			params.HasTitle = true
		case "trackers":
			if val.Kind != yaml.SequenceNode {
				return errors.NewInputError("trackers_not_list",
					"'trackers' must be a list", nil)
			}
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
					return errors.NewInputError("tracker_not_string",
						"tracker URI must be a string", nil)
				}
				params.Trackers = append(params.Trackers, item.Value)
			}
		}
	}

	return nil
}

func errMissingData(cause error) error {
	return errors.NewInputError("missing_input",
		"input file data is missing or not in the correct format", cause)
}
