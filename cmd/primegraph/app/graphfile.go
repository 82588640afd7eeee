// SPDX-License-Identifier: MIT

package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/primegraph/core"
	"github.com/katalvlaran/primegraph/graphexpr"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// GraphFile is the on-disk graph description.
type GraphFile struct {
	Name     string   `json:"name,omitempty"`
	Vertices int      `json:"vertices"`
	Edges    [][2]int `json:"edges,omitempty"`
}

// Graph converts the description into a core.Graph.
// The vertex count is bounded like a graph expression's.
func (f *GraphFile) Graph() (*core.Graph, error) {
	if err := graphexpr.CheckOrder(f.Vertices); err != nil {
		return nil, err
	}
	edges := make([]core.Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = core.NewEdge(e[0], e[1])
	}
	return core.FromEdges(f.Vertices, edges)
}

// loadGraph resolves the graph from -f or from the first argument and returns
// it together with a display name and the remaining arguments.
func loadGraph(opts *Options, stdin io.Reader, args []string) (*core.Graph, string, []string, error) {
	if opts.file == "" {
		if len(args) == 0 {
			return nil, "", nil, fmt.Errorf("graph expression or -f <file> required")
		}
		g, err := graphexpr.Parse(args[0])
		if err != nil {
			return nil, "", nil, errors.Wrapf(err, "invalid graph expression %q", args[0])
		}
		return g, args[0], args[1:], nil
	}

	var (
		data []byte
		err  error
	)
	if opts.file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.file)
	}
	if err != nil {
		return nil, "", nil, errors.Wrapf(err, "cannot read file %q", opts.file)
	}
	var f GraphFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, "", nil, errors.Wrapf(err, "cannot unmarshal file %q", opts.file)
	}
	g, err := f.Graph()
	if err != nil {
		return nil, "", nil, errors.Wrapf(err, "invalid graph in %q", opts.file)
	}
	name := f.Name
	if name == "" {
		name = opts.file
	}
	return g, name, args, nil
}

// write renders v in the selected output format.
func write(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case formatYAML:
		data, err = yaml.Marshal(v)
	case formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "cannot render output")
	}
	_, err = w.Write(data)
	return err
}
