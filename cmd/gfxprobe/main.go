// Command gfxprobe loads the system OpenGL library, creates a context and a
// headless render target through the factory, and reports what it found.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/nativegfx"
	"github.com/gogpu/nativegfx/com"
	"github.com/gogpu/nativegfx/glgpu"
	"github.com/gogpu/nativegfx/interop"
	"github.com/gogpu/nativegfx/procaddr"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		profile    = flag.String("profile", "", "override profile (gl or gles)")
		verbose    = flag.Bool("v", false, "debug logging")
		dump       = flag.String("write-config", "", "write the effective config to this file and exit")
	)
	flag.Parse()

	conf, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *profile != "" {
		conf.Profile = *profile
		if err := conf.validate(); err != nil {
			log.Fatal(err)
		}
	}
	if *dump != "" {
		if err := writeConfig(*dump, conf); err != nil {
			log.Fatal(err)
		}
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	nativegfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := probe(os.Stdout, conf); err != nil {
		log.Fatal(err)
	}
}

func probe(w io.Writer, conf config) error {
	var opts []procaddr.Option
	if len(conf.Libraries) > 0 {
		opts = append(opts, procaddr.WithLibraryNames(conf.Libraries...))
	}
	if len(conf.Loaders) > 0 {
		opts = append(opts, procaddr.WithLoaderNames(conf.Loaders...))
	}
	if len(conf.SearchPaths) > 0 {
		opts = append(opts, procaddr.WithSearchPaths(conf.SearchPaths...))
	}
	lib, err := procaddr.Open(conf.profile(), opts...)
	if err != nil {
		return err
	}
	defer lib.Close()

	factory := nativegfx.CreateNativeGraphics(nativegfx.WithGpuOptions(
		glgpu.WithRequiredProcs(conf.RequiredProcs...),
		glgpu.WithOptionalProcs(conf.OptionalProcs...),
	))
	defer factory.Release()

	gpu, err := factory.CreateGlGpu(conf.profile(), lib)
	if err != nil {
		return err
	}
	defer gpu.Release()

	surface := newHeadlessSurface(conf.Surface.info())
	defer surface.Release()

	rt, err := factory.CreateGlGpuRenderTarget(gpu, surface)
	if err != nil {
		return err
	}
	defer rt.Release()

	return report(w, factory, lib.Path(), gpu, rt)
}

func report(w io.Writer, factory interop.Factory, path string, gpu interop.Gpu, rt interop.RenderTarget) error {
	g, err := glgpu.FromGpu(gpu)
	if err != nil {
		return err
	}
	info := rt.SurfaceInfo()
	fmt.Fprintf(w, "factory version: %d\n", factory.GetVersion())
	fmt.Fprintf(w, "library:         %s\n", path)
	fmt.Fprintf(w, "backend:         %s (%s)\n", g.Backend(), g.Profile())
	fmt.Fprintf(w, "context:         #%d %s\n", g.ID(), g.State())
	fmt.Fprintf(w, "procs resolved:  %d\n", g.Procs().Len())
	for _, name := range glgpu.OptionalProcs(g.Profile()) {
		_, ok := g.Proc(name)
		fmt.Fprintf(w, "  %-32s %v\n", name, ok)
	}
	fmt.Fprintf(w, "render target:   %dx%d scale %.2f samples %d format %v\n",
		info.Width, info.Height, info.Scaling, info.SampleCount, info.Format)
	return nil
}

// headlessSurface is a surface with fixed properties and no window.
type headlessSurface struct {
	com.Object
	info interop.SurfaceInfo
}

var headlessSurfaceTable = com.NewTable(
	com.Entry(interop.IIDGlPlatformSurfaceRenderTarget, nil),
)

func newHeadlessSurface(info interop.SurfaceInfo) *headlessSurface {
	s := &headlessSurface{info: info}
	s.Init(s, headlessSurfaceTable, nil)
	s.AddRef()
	return s
}

func (s *headlessSurface) SurfaceInfo() interop.SurfaceInfo { return s.info }
