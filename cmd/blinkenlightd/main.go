package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/KevinKickass/BlinkenCore/internal/config"
	"github.com/KevinKickass/BlinkenCore/internal/dispatch"
	"github.com/KevinKickass/BlinkenCore/internal/panels"
	"github.com/KevinKickass/BlinkenCore/internal/system"
	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Set with -ldflags "-X main.version=... -X main.buildTime=...".
// Without buildTime, the VCS commit time stamped by go build is used.
var (
	version   = "1.08"
	buildTime = ""
)

func resolveBuildTime(ldflag string, bi *debug.BuildInfo) string {
	if ldflag != "" {
		return ldflag
	}
	if bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.time" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}

type cli struct {
	PanelConfig  string `short:"c" name:"config" required:"" type:"existingfile" help:"Panel configuration file."`
	ServerConfig string `name:"server-config" type:"existingfile" help:"Server settings file (YAML). Defaults and BLINKEN_* environment variables apply without it."`
	Simulate     bool   `short:"s" help:"Simulate all panels, do not open the bus device."`
	Test         bool   `short:"t" help:"Check the panel configuration, print it and exit."`
	Verbose      bool   `short:"v" help:"Log at debug level."`
	Background   bool   `short:"b" help:"Run as background service with JSON logs."`

	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("blinkenlightd"),
		kong.Description("Blinkenlight API server daemon."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if args.Test {
		os.Exit(testConfig(args.PanelConfig))
	}

	logger, err := newLogger(args.Background, args.Verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	code := run(&args, logger)
	logger.Sync()
	os.Exit(code)
}

func newLogger(background, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if background {
		cfg = zap.NewProductionConfig()
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// testConfig loads, prints and checks the panel configuration.
func testConfig(path string) int {
	loader, err := panels.NewLoader()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	reg, err := loader.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := panels.Dump(os.Stderr, reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := panels.Check(reg); err != nil {
		fmt.Fprintf(os.Stderr, "configuration check failed:\n%v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "%s: configuration ok\n", path)
	return 0
}

func run(args *cli, logger *zap.Logger) int {
	bi, _ := debug.ReadBuildInfo()
	built := resolveBuildTime(buildTime, bi)

	info := dispatch.ServerInfo{
		InstanceID: uuid.New(),
		Version:    version,
		Program:    os.Args[0],
		Options:    strings.Join(os.Args[1:], " "),
		BuildTime:  built,
	}
	logger.Info(info.Description(),
		zap.String("instance_id", info.InstanceID.String()),
		zap.String("build_time", built))

	cfg, err := config.Load(args.ServerConfig)
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return 1
	}

	reg, err := panels.Load(args.PanelConfig)
	if err != nil {
		logger.Error("Failed to load panel config", zap.Error(err))
		return 1
	}
	for _, h := range panels.Hazards(reg) {
		logger.Warn("Output bit shared by several controls", zap.Stringer("hazard", h))
	}
	logger.Info("Panel config loaded",
		zap.String("path", args.PanelConfig),
		zap.Int("panels", len(reg.Panels)),
		zap.Int("boards", len(reg.BoardList())))

	lifecycle := system.NewLifecycleManager(reg, cfg, system.Options{
		Simulate: args.Simulate,
		Info:     info,
	}, logger)

	if err := lifecycle.Start(); err != nil {
		logger.Error("Failed to start system", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lifecycle.Run(ctx); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return 1
	}

	logger.Info("Server stopped successfully")
	return 0
}
