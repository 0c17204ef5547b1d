// Command bezierplot plots a cubic Bézier curve to an image file. Without arguments it plots the same arch as the curve command, flags and a YAML configuration file change the curve, the chart, and the backend.
package main

import (
	"fmt"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/bezier"
	"github.com/tdewolff/bezier/internal/xlog"
	"github.com/tdewolff/bezier/renderers"
	"go.uber.org/zap"
)

type Plot struct {
	Output  string `short:"o" desc:"Output filename, the extension selects the image format (default curve.png)"`
	Backend string `short:"b" default:"raster" desc:"Rendering backend"`
	Samples int    `short:"n" desc:"Number of samples along the curve (default 101)"`
	Width   int    `desc:"Image width in pixels (default 640)"`
	Height  int    `desc:"Image height in pixels (default 480)"`
	Color   string `desc:"Line color, a name or a hexadecimal color (default red)"`
	Config  string `short:"c" desc:"YAML configuration file, flags take precedence"`
	Verbose bool   `short:"v" desc:"Log every step"`
}

func main() {
	root := argp.NewCmd(&Plot{}, "Plot a cubic Bézier curve, backends are "+strings.Join(renderers.Names(), ", "))
	root.Parse()
	root.PrintHelp()
}

func (cmd *Plot) Run() error {
	logger := xlog.New(cmd.Verbose)
	defer logger.Sync()

	cfg, err := cmd.config()
	if err != nil {
		return err
	}

	backend, err := renderers.Open(cmd.Backend)
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}

	logger = logger.With(zap.String("backend", cmd.Backend))
	if err := bezier.Plot(backend, cfg, logger); err != nil {
		logger.Error("could not plot curve", zap.Error(err))
		return err
	}
	return nil
}

// config returns the default configuration overridden by the configuration file and then by the flags that were set.
func (cmd *Plot) config() (bezier.Config, error) {
	cfg := bezier.DefaultConfig()
	if cmd.Config != "" {
		var err error
		if cfg, err = bezier.LoadConfig(cmd.Config); err != nil {
			return cfg, err
		}
	}

	if cmd.Output != "" {
		cfg.Filename = cmd.Output
	}
	if cmd.Samples < 0 {
		return cfg, fmt.Errorf("invalid number of samples: %d", cmd.Samples)
	} else if cmd.Samples != 0 {
		cfg.Samples = cmd.Samples
	}
	if cmd.Width != 0 {
		cfg.Width = cmd.Width
	}
	if cmd.Height != 0 {
		cfg.Height = cmd.Height
	}
	if cmd.Color != "" {
		col, err := bezier.ParseColor(cmd.Color)
		if err != nil {
			return cfg, err
		}
		cfg.Line.Color = col
	}
	return cfg, nil
}
