package pprint

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlSequence renders vs as a flow-style sequence, the YAML spelling of
// the bracketed form.
func yamlSequence(vs []any) (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range vs {
		var child yaml.Node
		if err := child.Encode(v); err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, &child)
	}
	return seq, nil
}

func collect[E any](c Container[E]) []any {
	vs := []any{}
	for e := range c.All() {
		vs = append(vs, e)
	}
	return vs
}

// MarshalYAML implements [yaml.Marshaler].
func (s Slice[E]) MarshalYAML() (any, error) { return yamlSequence(collect[E](s)) }

// MarshalYAML implements [yaml.Marshaler].
func (a Array[E]) MarshalYAML() (any, error) { return yamlSequence(collect[E](a)) }

// MarshalYAML implements [yaml.Marshaler].
func (s Seq[E]) MarshalYAML() (any, error) { return yamlSequence(collect[E](s)) }

// MarshalYAML implements [yaml.Marshaler].
func (m Map[K, V]) MarshalYAML() (any, error) { return yamlSequence(collect[Pair[K, V]](m)) }

// MarshalYAML implements [yaml.Marshaler].
func (p Pair[A, B]) MarshalYAML() (any, error) { return yamlSequence(p.Values()) }

func writeYAML[T any](w io.Writer, items []T) error {
	enc := yaml.NewEncoder(w)
	if len(items) > 0 {
		if ind, ok := any(items[0]).(Indented); ok {
			enc.SetIndent(len(ind.Indent()))
		}
	}
	if len(items) == 1 {
		if err := enc.Encode(items[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(items); err != nil {
			return err
		}
	}
	return enc.Close()
}
