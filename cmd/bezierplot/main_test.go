package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/bezier"
	"github.com/tdewolff/test"
)

func TestConfig(t *testing.T) {
	cmd := &Plot{}
	cfg, err := cmd.config()
	test.Error(t, err)
	test.T(t, cfg, bezier.DefaultConfig())

	filename := filepath.Join(t.TempDir(), "arch.yaml")
	test.Error(t, os.WriteFile(filename, []byte("output: arch.png\nsamples: 11\nwidth: 320\n"), 0644))

	cmd = &Plot{Config: filename, Samples: 21, Color: "#00f"}
	cfg, err = cmd.config()
	test.Error(t, err)
	test.String(t, cfg.Filename, "arch.png")
	test.T(t, cfg.Samples, 21)
	test.T(t, cfg.Width, 320)
	test.T(t, cfg.Height, 480)
	test.T(t, cfg.Line.Color, bezier.Blue)

	_, err = (&Plot{Samples: -1}).config()
	test.That(t, err != nil)
	_, err = (&Plot{Color: "blueish"}).config()
	test.That(t, err != nil)
	_, err = (&Plot{Config: filepath.Join(t.TempDir(), "missing.yaml")}).config()
	test.That(t, err != nil)
}

func TestRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "curve.png")
	test.Error(t, (&Plot{Output: output, Backend: "raster"}).Run())
	_, err := os.Stat(output)
	test.Error(t, err)

	output = filepath.Join(t.TempDir(), "missing", "curve.png")
	test.That(t, (&Plot{Output: output, Backend: "gonum"}).Run() != nil)
}
