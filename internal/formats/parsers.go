package formats

import "github.com/vovakirdan/framedata/internal/registry"

func init() {
	registry.Register("yaml", func() registry.Parser { return yamlParser{} })
	registry.Register("json", func() registry.Parser { return jsonParser{} })
}

type yamlParser struct{}

func (yamlParser) ID() string                                 { return "yaml" }
func (yamlParser) Title() string                              { return "YAML model" }
func (yamlParser) Extensions() []string                       { return []string{".yaml", ".yml"} }
func (yamlParser) Parse(data []byte) (*registry.Model, error) { return Decode(data) }

// jsonParser reuses the YAML decoder; every JSON document is valid YAML.
type jsonParser struct{}

func (jsonParser) ID() string                                 { return "json" }
func (jsonParser) Title() string                              { return "JSON model" }
func (jsonParser) Extensions() []string                       { return []string{".json"} }
func (jsonParser) Parse(data []byte) (*registry.Model, error) { return Decode(data) }
