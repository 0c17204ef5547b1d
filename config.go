package bezier

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type configDocument struct {
	Output    *string      `yaml:"output"`
	Width     *int         `yaml:"width"`
	Height    *int         `yaml:"height"`
	Margin    *int         `yaml:"margin"`
	LabelArea *struct {
		X *int `yaml:"x"`
		Y *int `yaml:"y"`
	} `yaml:"label_area"`
	XDomain *[2]float64    `yaml:"x_domain"`
	YDomain *[2]float64    `yaml:"y_domain"`
	Curve   *[4][2]float32 `yaml:"curve"`
	Samples *int           `yaml:"samples"`
	Line    *struct {
		Color *string  `yaml:"color"`
		Width *float64 `yaml:"width"`
	} `yaml:"line"`
}

// ReadConfig decodes a YAML document from r and overrides the fields of cfg that it sets. Unknown keys are an error.
//
//	output: curve.png
//	width: 640
//	height: 480
//	margin: 5
//	label_area: {x: 30, y: 30}
//	x_domain: [-1, 1]
//	y_domain: [-0.1, 1]
//	curve: [[-0.5, 0], [-0.5, 0.5], [0.5, 0.5], [0.5, 0]]
//	samples: 101
//	line: {color: red, width: 1}
func ReadConfig(r io.Reader, cfg *Config) error {
	doc := configDocument{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("bad config: %w", err)
	}

	if doc.Output != nil {
		cfg.Filename = *doc.Output
	}
	if doc.Width != nil {
		cfg.Width = *doc.Width
	}
	if doc.Height != nil {
		cfg.Height = *doc.Height
	}
	if doc.Margin != nil {
		cfg.Layout.Margin = *doc.Margin
	}
	if doc.LabelArea != nil {
		if doc.LabelArea.X != nil {
			cfg.Layout.XLabelArea = *doc.LabelArea.X
		}
		if doc.LabelArea.Y != nil {
			cfg.Layout.YLabelArea = *doc.LabelArea.Y
		}
	}
	if doc.XDomain != nil {
		cfg.Layout.X = R(doc.XDomain[0], doc.XDomain[1])
	}
	if doc.YDomain != nil {
		cfg.Layout.Y = R(doc.YDomain[0], doc.YDomain[1])
	}
	if doc.Curve != nil {
		var p [4]Point
		for i, xy := range doc.Curve {
			p[i] = Pt(xy[0], xy[1])
		}
		cfg.Curve = CubicBezier(p[0], p[1], p[2], p[3])
	}
	if doc.Samples != nil {
		if *doc.Samples < 0 {
			return fmt.Errorf("bad config: negative number of samples %d", *doc.Samples)
		}
		cfg.Samples = *doc.Samples
	}
	if doc.Line != nil {
		if doc.Line.Color != nil {
			col, err := ParseColor(*doc.Line.Color)
			if err != nil {
				return fmt.Errorf("bad config: %w", err)
			}
			cfg.Line.Color = col
		}
		if doc.Line.Width != nil {
			cfg.Line.Width = *doc.Line.Width
		}
	}
	return nil
}

// LoadConfig reads the YAML file at filename on top of the default configuration.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := ReadConfig(f, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}
