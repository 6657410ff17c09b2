package oracle

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts/prompts.yaml
var promptsYAML []byte

// Band is a hostility range description; it applies below its limit.
type Band struct {
	Below int    `yaml:"below"`
	Text  string `yaml:"text"`
}

// Prompts is the parsed prompt catalog.
type Prompts struct {
	Persona   string         `yaml:"persona"`
	Triggers  string         `yaml:"triggers"`
	Days      map[int]string `yaml:"days"`
	Hostility []Band         `yaml:"hostility"`
	System    string         `yaml:"system"`
	Greeting  string         `yaml:"greeting"`

	system   *template.Template
	greeting *template.Template
}

// LoadPrompts parses the embedded catalog.
func LoadPrompts() (*Prompts, error) {
	return ParsePrompts(promptsYAML)
}

// ParsePrompts parses a catalog from YAML.
func ParsePrompts(data []byte) (*Prompts, error) {
	var p Prompts
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}
	var err error
	if p.system, err = template.New("system").Parse(p.System); err != nil {
		return nil, fmt.Errorf("failed to parse system template: %w", err)
	}
	if p.greeting, err = template.New("greeting").Parse(p.Greeting); err != nil {
		return nil, fmt.Errorf("failed to parse greeting template: %w", err)
	}
	return &p, nil
}

// HostilityText describes hostility h.
func (p *Prompts) HostilityText(h int) string {
	for _, b := range p.Hostility {
		if h < b.Below {
			return b.Text
		}
	}
	if len(p.Hostility) > 0 {
		return p.Hostility[len(p.Hostility)-1].Text
	}
	return ""
}

type promptData struct {
	Persona       string
	Triggers      string
	Day           string
	DayText       string
	Hostility     int
	HostilityText string
	ForcedMood    string
}

func (p *Prompts) data(req Request) promptData {
	return promptData{
		Persona:       p.Persona,
		Triggers:      p.Triggers,
		Day:           req.Day.String(),
		DayText:       p.Days[req.Day.Number()],
		Hostility:     req.Hostility,
		HostilityText: p.HostilityText(req.Hostility),
		ForcedMood:    string(req.ForcedMood),
	}
}

// SystemPrompt renders the instruction for a calculation.
func (p *Prompts) SystemPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	if err := p.system.Execute(&buf, p.data(req)); err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}
	return buf.String(), nil
}

// GreetingPrompt renders the instruction for a boot greeting.
func (p *Prompts) GreetingPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	if err := p.greeting.Execute(&buf, p.data(req)); err != nil {
		return "", fmt.Errorf("failed to render greeting prompt: %w", err)
	}
	return buf.String(), nil
}
