package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/glshapes/lib/api"
	"github.com/fosdem/glshapes/lib/config"
	"github.com/fosdem/glshapes/lib/kbdctl"
	logger "github.com/fosdem/glshapes/lib/log"
	"github.com/fosdem/glshapes/lib/painter"
	"github.com/fosdem/glshapes/lib/rendering/native"
	"github.com/fosdem/glshapes/lib/windowsink"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(nil)))

	cfg := config.Default()
	if len(os.Args) > 2 {
		log.Fatalf("Usage: %s [config file]", os.Args[0])
	}
	if len(os.Args) == 2 {
		var err error
		cfg, err = config.Parse(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}
	closeKey, err := kbdctl.ParseKey(cfg.CloseKey)
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(run(cfg, closeKey))
}

func run(cfg *config.Config, closeKey glfw.Key) int {
	sink, err := windowsink.New(&cfg.Window)
	if err != nil {
		fatal("Error creating the GLFW window: %s", err)
		return -1
	}

	gl, err := native.Init()
	if err != nil {
		sink.Destroy()
		fatal("Error loading OpenGL: %s", err)
		return -1
	}

	p := painter.New(gl, sink, painter.Options{
		ProcessInput: kbdctl.CloseOnKey(sink, closeKey),
		PollEvents:   kbdctl.Poll,
		ClearColour:  cfg.Clear(),
	})
	api.ServeInBackground(cfg.Api, p, p.Stats)

	err = p.Paint()
	if err != nil {
		fatal("%s", err)
		return 1
	}
	return 0
}

func fatal(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...), slog.String("module", "main"))
}
