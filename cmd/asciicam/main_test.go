package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/asciicam/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("asciicam %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestSourcesListsBuiltins(t *testing.T) {
	out := execute(t, "sources")
	for _, kind := range []string{"camera", "images", "pattern"} {
		if !strings.Contains(out, kind) {
			t.Errorf("sources output missing %q:\n%s", kind, out)
		}
	}
}

func TestRenderImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "white.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := execute(t, "render", path, "--width", "20", "--height", "10")
	want := strings.Repeat(strings.Repeat(" ", 20)+"\n", 10)
	if out != want {
		t.Errorf("render output = %q, want %q", out, want)
	}
}

func TestApplyViewFlags(t *testing.T) {
	flags := pflag.NewFlagSet("view", pflag.ContinueOnError)
	addViewFlags(flags)

	cfg := config.Default()
	if err := flags.Parse([]string{"--source", "pattern", "--width", "100", "--listen", ""}); err != nil {
		t.Fatal(err)
	}
	applyViewFlags(&cfg, flags)

	if cfg.Source.Kind != "pattern" {
		t.Errorf("source = %q, want pattern", cfg.Source.Kind)
	}
	if cfg.Render.Width != 100 {
		t.Errorf("width = %d, want 100", cfg.Render.Width)
	}
	if cfg.Render.Height != config.Default().Render.Height {
		t.Errorf("unset height changed to %d", cfg.Render.Height)
	}
	if cfg.Control.Listen != "" {
		t.Errorf("listen = %q, want disabled", cfg.Control.Listen)
	}
}

func TestSendNegativeValues(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	execute(t, "send", "--to", conn.LocalAddr().String(), "--", "-5", "10")

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 64)
	n, _, err := conn.ReadFrom(buf)
	if err != nil {
		t.Fatalf("no datagram received: %v", err)
	}
	if got := string(buf[:n]); got != "-5, 10" {
		t.Errorf("datagram = %q, want %q", got, "-5, 10")
	}
}
