package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// baselineConfig is the optional YAML document -c/--config loads, layering
// over the baseline subcommand's own flags. Zero fields leave the flag or
// built-in default in place. Kind selects which attack.Attack the sweep
// runs; it parses via attack.ParseKind and defaults to "valiant" when
// absent, matching the CLI's pre-config behavior.
type baselineConfig struct {
	Start    float64 `yaml:"start"`
	End      float64 `yaml:"end"`
	Interval float64 `yaml:"interval"`
	M        int     `yaml:"m"`
	NER      int     `yaml:"ner"`
	Kind     string  `yaml:"kind"`

	AB16 bool `yaml:"ab16"`

	GreedyK         int  `yaml:"greedy_k"`
	GreedyRadius    int  `yaml:"greedy_radius"`
	GreedyLength    int  `yaml:"greedy_length"`
	GreedyReset     bool `yaml:"greedy_reset"`
	GreedyUseDegree bool `yaml:"greedy_use_degree"`
}

func loadBaselineConfig(path string) (baselineConfig, error) {
	var cfg baselineConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
