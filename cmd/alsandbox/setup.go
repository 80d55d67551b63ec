package main

import (
	"fmt"

	"github.com/plus3/alscript/bridge"
	"github.com/plus3/alscript/engine"
	"github.com/plus3/alscript/host"
	"github.com/plus3/alscript/logging"
	"github.com/plus3/alscript/sandbox"
	"go.uber.org/zap"
)

type world struct {
	config engine.Config
	source string
	logger *zap.Logger
	host   *host.Host
	engine *engine.Engine
	scene  *host.Scene
}

// setup loads the config and scene and builds a host reading input from in.
// The engine is created but not started.
func setup(in bridge.InputCalls) (*world, error) {
	cfg, source, err := engine.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		return nil, err
	}

	var sc *host.Scene
	if cfg.Scene != "" {
		sc, err = host.ReadSceneFile(cfg.Scene)
	} else {
		sc, err = sandbox.Scene()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	h := host.New(
		host.WithInput(in),
		host.WithLogger(logger.Named("host")),
		host.WithPhysics(cfg.HostPhysics()),
	)
	h.LoadScene(sc)

	eng := engine.New(h, sandbox.Registry(), engine.WithLogger(logger.Named("engine")))
	logger.Debug("config loaded", zap.String("source", source), zap.Int("tick_rate", cfg.TickRate))

	return &world{config: cfg, source: source, logger: logger, host: h, engine: eng, scene: sc}, nil
}
