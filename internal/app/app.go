// Package app implements the application layer for forge.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic: loading the build file and the
// platform catalog, then deriving rules for the requested targets.
type App struct {
	buildFiles ports.BuildFileLoader
	platforms  ports.PlatformLoader
	log        ports.Logger
	tracer     ports.Tracer
}

// New creates a new App instance.
func New(buildFiles ports.BuildFileLoader, platforms ports.PlatformLoader, log ports.Logger, tracer ports.Tracer) *App {
	return &App{
		buildFiles: buildFiles,
		platforms:  platforms,
		log:        log,
		tracer:     tracer,
	}
}

// Run derives build rules for the specified targets against one platform.
// Each Run uses a fresh resolver, so rule memoization is per request.
func (a *App) Run(ctx context.Context, targetNames []string, platformName string) error {
	if len(targetNames) == 0 {
		return domain.ErrNoTargetsRequested
	}

	targets := make([]domain.BuildTarget, len(targetNames))
	for i, name := range targetNames {
		target, err := domain.ParseBuildTarget(name)
		if err != nil {
			return err
		}
		targets[i] = target
	}

	catalog, err := a.platforms.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load platform catalog")
	}
	var flavor domain.Flavor
	if platformName != "" {
		flavor = domain.SanitizeFlavorName(platformName)
	}
	platform, err := catalog.For(flavor)
	if err != nil {
		return err
	}

	graph, err := a.buildFiles.Load(".", platform)
	if err != nil {
		return zerr.Wrap(err, "failed to load build file")
	}

	res := resolver.New(graph, a.tracer)

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := res.Require(target)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "rule derivation failed")
	}

	rules := res.Rules()
	a.log.Info(fmt.Sprintf("derived %d rules for %d targets on platform %s",
		len(rules), len(targets), platform.Flavor))
	for _, rule := range rules {
		if out := rule.OutputPath(); out != "" {
			a.log.Info(fmt.Sprintf("%s -> %s", rule.Target().FullName(), out))
		}
	}
	return nil
}

// Close flushes the tracer's recording session.
func (a *App) Close() error {
	return a.tracer.Close()
}
