package main

import (
	"bytes"
	"io"
	"math"

	"github.com/geofduf/tuple/sequence"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// script is the content of a file accepted by the run command:
//
//	divider: ","
//	statements:
//	  - {key: letters, op: build, value: x, count: 3}
//	  - {key: letters, op: splice, start: 1, count: 1, values: [a, b]}
//
// A slice statement without end keeps every value from start on.
type script struct {
	Divider    *string           `yaml:"divider"`
	Statements []scriptStatement `yaml:"statements"`
}

type scriptStatement struct {
	Key    string   `yaml:"key"`
	Op     string   `yaml:"op"`
	Value  string   `yaml:"value"`
	Values []string `yaml:"values"`
	Start  int      `yaml:"start"`
	End    *int     `yaml:"end"`
	Count  int      `yaml:"count"`
	Create bool     `yaml:"create"`
}

var statementTypes = map[string]uint8{
	"build":   sequence.StatementBuild,
	"push":    sequence.StatementPush,
	"unshift": sequence.StatementUnshift,
	"pop":     sequence.StatementPop,
	"shift":   sequence.StatementShift,
	"reverse": sequence.StatementReverse,
	"slice":   sequence.StatementSlice,
	"splice":  sequence.StatementSplice,
}

// parseScript decodes a YAML script. Unknown fields are rejected and an
// empty document yields an empty script.
func parseScript(data []byte) (script, error) {
	var sc script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && err != io.EOF {
		return script{}, errors.Wrap(err, "cannot decode script")
	}
	return sc, nil
}

// statements converts the script statements into store statements.
func (sc script) statements() ([]sequence.Statement[string], error) {
	statements := make([]sequence.Statement[string], len(sc.Statements))
	for i, st := range sc.Statements {
		if st.Key == "" {
			return nil, errors.Errorf("statement %d: missing key", i)
		}
		typ, ok := statementTypes[st.Op]
		if !ok {
			return nil, errors.Wrapf(sequence.ErrUnsupported, "statement %d: op %q", i, st.Op)
		}
		end := math.MaxInt
		if st.End != nil {
			end = *st.End
		}
		statements[i] = sequence.Statement[string]{
			Key:               st.Key,
			Type:              typ,
			Value:             st.Value,
			Values:            st.Values,
			Start:             st.Start,
			End:               end,
			Count:             st.Count,
			CreateIfNotExists: st.Create,
		}
	}
	return statements, nil
}
