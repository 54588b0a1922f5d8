package panels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Version string        `yaml:"version"`
	Panels  []panelConfig `yaml:"panels"`
}

type panelConfig struct {
	Name         string          `yaml:"name"`
	Info         string          `yaml:"info"`
	DefaultRadix int             `yaml:"default_radix"`
	Controls     []controlConfig `yaml:"controls"`
}

type controlConfig struct {
	Name      string         `yaml:"name"`
	Direction string         `yaml:"direction"`
	Type      string         `yaml:"type"`
	Radix     int            `yaml:"radix"`
	Width     int            `yaml:"width"`
	Wiring    []wiringConfig `yaml:"wiring"`
}

type wiringConfig struct {
	Board      uint8 `yaml:"board"`
	Register   uint8 `yaml:"register"`
	Bit        uint8 `yaml:"bit"`
	ControlBit uint8 `yaml:"control_bit"`
	Width      uint8 `yaml:"width"`
	Inverted   bool  `yaml:"inverted"`
}

// Loader reads panel configuration files.
type Loader struct {
	validator *Validator
}

func NewLoader() (*Loader, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}
	return &Loader{validator: validator}, nil
}

func (l *Loader) Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read panel config: %w", err)
	}

	reg, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid panel config %s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes, schema-validates and converts a YAML panel configuration.
// The semantic checks of Check are not applied.
func (l *Loader) Parse(data []byte) (*Registry, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if err := l.validator.Validate(doc); err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal panel config: %w", err)
	}

	panels := make([]*Panel, 0, len(cfg.Panels))
	for _, pc := range cfg.Panels {
		p := &Panel{
			Name:         pc.Name,
			Info:         pc.Info,
			DefaultRadix: pc.DefaultRadix,
		}
		if p.DefaultRadix == 0 {
			p.DefaultRadix = 8
		}
		for _, cc := range pc.Controls {
			dir, err := ParseDirection(cc.Direction)
			if err != nil {
				return nil, fmt.Errorf("panel %q control %q: %w", pc.Name, cc.Name, err)
			}
			c := &Control{
				Name:      cc.Name,
				Direction: dir,
				Type:      cc.Type,
				Radix:     cc.Radix,
				Width:     cc.Width,
			}
			if c.Radix == 0 {
				c.Radix = p.DefaultRadix
			}
			for _, wc := range cc.Wiring {
				c.Wiring = append(c.Wiring, Wiring{
					Board:       wc.Board,
					Register:    wc.Register,
					RegisterBit: wc.Bit,
					ControlBit:  wc.ControlBit,
					Width:       wc.Width,
					Inverted:    wc.Inverted,
				})
			}
			p.Controls = append(p.Controls, c)
		}
		panels = append(panels, p)
	}

	return NewRegistry(panels), nil
}

// Load reads and checks a panel configuration file.
func Load(path string) (*Registry, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	reg, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if err := Check(reg); err != nil {
		return nil, fmt.Errorf("panel config %s failed check: %w", path, err)
	}
	return reg, nil
}
