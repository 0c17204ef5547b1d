// Command curve plots a cubic Bézier arch from (-0.5,0) to (0.5,0) as a red line on a 640x480 chart and writes it to curve.png.
package main

import (
	"os"

	"github.com/tdewolff/bezier"
	"github.com/tdewolff/bezier/internal/xlog"
	"github.com/tdewolff/bezier/renderers/rasterizer"
	"go.uber.org/zap"
)

func main() {
	logger := xlog.New(false)
	err := bezier.Plot(rasterizer.New(), bezier.DefaultConfig(), logger)
	if err != nil {
		logger.Error("could not plot curve", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
