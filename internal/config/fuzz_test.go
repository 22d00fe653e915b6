package config

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FuzzConfigParse ensures malformed YAML config doesn't cause panics.
func FuzzConfigParse(f *testing.F) {
	f.Add(`timeline:
  title: Project Timeline
  dataset: timeline.json
`)
	f.Add(`timeline:
  sections:
    Payments:
      icon: credit-card
      color: "#F97316"
`)
	f.Add(`timeline:
  server:
    host: 0.0.0.0
    port: 8080
    request_timeout: 30s
  log:
    level: debug
    format: json
`)
	f.Add(`timeline: ~`)
	f.Add(`timeline: [1, 2]`)
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, input string) {
		cfg := DefaultConfig()
		if err := yaml.Unmarshal([]byte(input), cfg); err != nil {
			return
		}
		_ = cfg.Validate()
		_ = cfg.DatasetPath("/base")
	})
}

// FuzzTOMLConfigParse ensures malformed TOML config doesn't cause panics.
func FuzzTOMLConfigParse(f *testing.F) {
	f.Add("[timeline]\ntitle = \"x\"\n")
	f.Add("[timeline.server]\nport = 1\n")
	f.Add("[timeline.sections.Payments]\ncolor = \"#fff\"\n")
	f.Add(strings.Repeat("[", 64))

	f.Fuzz(func(t *testing.T, input string) {
		cfg := DefaultConfig()
		if _, err := toml.Decode(input, cfg); err != nil {
			return
		}
		_ = cfg.Validate()
	})
}
