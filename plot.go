package bezier

import (
	"fmt"

	"go.uber.org/zap"
)

// Config holds everything needed to plot a curve to an image file.
type Config struct {
	Filename      string
	Width, Height int // in pixels
	Layout        Layout
	Curve         Cubic
	Samples       int
	Line          LineStyle
}

// DefaultConfig returns the configuration that plots an arch from (-0.5,0) to (0.5,0) with 101 samples as a red line to curve.png.
func DefaultConfig() Config {
	return Config{
		Filename: "curve.png",
		Width:    640,
		Height:   480,
		Layout: Layout{
			Margin:     5,
			XLabelArea: 30,
			YLabelArea: 30,
			X:          R(-1.0, 1.0),
			Y:          R(-0.1, 1.0),
		},
		Curve: CubicBezier(
			Pt(-0.5, 0.0),
			Pt(-0.5, 0.5),
			Pt(0.5, 0.5),
			Pt(0.5, 0.0),
		),
		Samples: 101,
		Line: LineStyle{
			Color: Red,
		},
	}
}

// Plot samples the curve and renders it as a line series on a chart of a new surface, which is presented only when all drawing succeeded. The first error aborts the plot and is returned. A nil logger discards logs.
func Plot(backend Backend, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("filename", cfg.Filename))

	logger.Debug("create surface", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	surface, err := backend.NewSurface(cfg.Filename, cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}

	logger.Debug("build chart", zap.Stringer("x", cfg.Layout.X), zap.Stringer("y", cfg.Layout.Y))
	chart, err := surface.BuildChart(cfg.Layout)
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}

	logger.Debug("draw mesh")
	if err := chart.DrawMesh(); err != nil {
		return fmt.Errorf("draw mesh: %w", err)
	}

	logger.Debug("draw line series", zap.Stringer("curve", cfg.Curve), zap.Int("samples", cfg.Samples))
	if err := chart.DrawLineSeries(Pairs(Sample(cfg.Curve, cfg.Samples)), cfg.Line); err != nil {
		return fmt.Errorf("draw line series: %w", err)
	}

	logger.Debug("present")
	if err := surface.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	logger.Info("plotted curve", zap.Int("samples", cfg.Samples))
	return nil
}
