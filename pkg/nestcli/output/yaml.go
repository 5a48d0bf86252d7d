package output

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/nestcfg/nestcfg/pkg/nestcfg"
)

// YAMLOutput renders a configuration tree as a YAML document. The tree is
// converted to yaml.MapSlice so object keys keep their source order and
// duplicates survive marshaling.
type YAMLOutput struct {
	w       io.Writer
	options *ValueOutputOptions
}

func (o *YAMLOutput) WriteConfig(pairs nestcfg.Pairs) error {
	out, err := yaml.Marshal(yamlPairs(pairs))
	if err != nil {
		return err
	}
	_, err = o.w.Write(out)
	return err
}

func yamlPairs(pairs nestcfg.Pairs) yaml.MapSlice {
	doc := make(yaml.MapSlice, 0, len(pairs))
	for _, kv := range pairs {
		doc = append(doc, yaml.MapItem{Key: kv.Key, Value: yamlValue(kv.Value)})
	}
	return doc
}

func yamlValue(v nestcfg.Value) interface{} {
	switch v := v.(type) {
	case nestcfg.StringValue:
		return string(v)
	case nestcfg.ListValue:
		items := make([]interface{}, 0, len(v))
		for _, item := range v {
			items = append(items, yamlValue(item))
		}
		return items
	case nestcfg.ObjectValue:
		return yamlPairs(nestcfg.Pairs(v))
	}
	return nil
}
