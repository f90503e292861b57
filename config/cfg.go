package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"logicss/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	TransformConfig struct {
		Direction             common.Direction `yaml:"direction" validate:"gte=0,lte=2"`
		Preserve              bool             `yaml:"preserve"`
		Extensions            []string         `yaml:"extensions" validate:"required,min=1,dive,required,startswith=."`
		OutputNameTemplate    string           `yaml:"output_name_template"`
		FileNameTransliterate bool             `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Transform TransformConfig `yaml:"transform"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

// NOTE: must match yaml field name above, gencfg works on yaml nodes and
// knows nothing about our structures
const OutputNameTemplateFieldName TemplateFieldName = "output_name_template"

var requiredOptions = []func(*gencfg.ProcessingOptions){
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !process {
		return cfg, nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, fmt.Errorf("failed to validate configuration: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration expands embedded configuration template to get sane
// defaults and, when path is not empty, superimposes values from the file on
// top of them. Result is sanitized and validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}

	haveFile := len(path) > 0
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	if data, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg, true); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded default configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
