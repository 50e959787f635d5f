// Package app implements the application layer for aptsrc.
package app

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/aptsrc/internal/core/ports"
	"go.trai.ch/aptsrc/internal/engine/declare"
	"go.trai.ch/aptsrc/internal/engine/render"
	"go.trai.ch/aptsrc/internal/engine/upgrades"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	facts        ports.FactResolver
	keys         ports.KeyInspector
	logger       ports.Logger
	writers      []ports.EntryWriter
	declarer     *declare.Declarer
	concurrency  int
}

// Components holds what the CLI needs to run.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance. Entries are written by every writer, in order.
func New(
	loader ports.ConfigLoader,
	facts ports.FactResolver,
	keys ports.KeyInspector,
	log ports.Logger,
	writers ...ports.EntryWriter,
) *App {
	return &App{
		configLoader: loader,
		facts:        facts,
		keys:         keys,
		logger:       log,
		writers:      writers,
		declarer:     declare.New(render.NewDefaultSelector(facts)),
		concurrency:  runtime.NumCPU(),
	}
}

// WithConcurrency bounds the number of sources rendered at once.
func (a *App) WithConcurrency(n int) *App {
	if n > 0 {
		a.concurrency = n
	}
	return a
}

// ApplyResult reports what an apply run changed.
type ApplyResult struct {
	// Changed lists the filenames of entries that were written or removed.
	Changed []string
	// RefreshCache is true when a changed entry asked for a package index update.
	RefreshCache bool
}

// FactsReport is the view of the host facts used for defaults.
type FactsReport struct {
	Codename     string `json:"codename" yaml:"codename"`
	Architecture string `json:"architecture" yaml:"architecture"`
}

// Render loads the sources file and declares every source in it.
// Declarations keep the order of the loaded sources.
func (a *App) Render(ctx context.Context, path string) ([]domain.Declaration, error) {
	specs, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	decls := make([]domain.Declaration, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decl, err := a.declarer.Declare(&specs[i])
			if err != nil {
				return err
			}
			if err := a.verifyKey(decl.Key, specs[i].Name); err != nil {
				return err
			}
			decls[i] = *decl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "failed to render sources")
	}
	return decls, nil
}

// Apply renders the sources file and hands every entry to the writers.
func (a *App) Apply(ctx context.Context, path string) (ApplyResult, error) {
	decls, err := a.Render(ctx, path)
	if err != nil {
		return ApplyResult{}, err
	}

	var result ApplyResult
	for i := range decls {
		entry := decls[i].Entry
		changed, err := a.write(ctx, entry)
		if err != nil {
			return result, zerr.With(zerr.Wrap(err, "failed to write entry"), "source", entry.Name)
		}
		if !changed {
			continue
		}
		result.Changed = append(result.Changed, entry.Filename)
		if entry.NotifyUpdate {
			result.RefreshCache = true
		}
		if entry.Ensure == domain.EnsureAbsent {
			a.logger.Info(fmt.Sprintf("removed %s", entry.Filename))
		} else {
			a.logger.Info(fmt.Sprintf("wrote %s", entry.Filename))
		}
	}
	return result, nil
}

// write passes the entry to each writer. It is changed when any writer changed it.
func (a *App) write(ctx context.Context, entry domain.SourceEntry) (bool, error) {
	changed := false
	for _, w := range a.writers {
		c, err := w.Write(ctx, entry)
		if err != nil {
			return false, err
		}
		changed = changed || c
	}
	return changed, nil
}

// verifyKey checks that inline key content carries the declared key id.
func (a *App) verifyKey(key *domain.KeyDirective, source string) error {
	if key == nil || key.Content == "" || a.keys == nil {
		return nil
	}
	fingerprints, err := a.keys.Fingerprints(key.Content)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to inspect key"), "source", source)
	}
	for _, fp := range fingerprints {
		if domain.KeyIDMatches(key.ID, fp) {
			return nil
		}
	}
	err = zerr.With(zerr.Wrap(domain.ErrKeyMismatch, "failed to verify key"), "source", source)
	return zerr.With(err, "id", key.ID)
}

// Upgrades summarizes the captured output of simulated upgrade and
// dist-upgrade runs. dist may be nil when no dist-upgrade was simulated.
func (a *App) Upgrades(upgrade, dist io.Reader) (domain.UpgradeSummary, error) {
	upgradeOut, err := readOutput(upgrade, "upgrade")
	if err != nil {
		return domain.UpgradeSummary{}, err
	}
	distOut, err := readOutput(dist, "dist-upgrade")
	if err != nil {
		return domain.UpgradeSummary{}, err
	}
	return upgrades.Summarize(upgradeOut, distOut), nil
}

func readOutput(r io.Reader, run string) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrUpgradeOutputReadFailed, err), "run", run)
	}
	return string(data), nil
}

// Facts reports the host facts, warning about the ones that are unavailable.
func (a *App) Facts() FactsReport {
	var report FactsReport
	if a.facts == nil {
		a.logger.Warn("no fact resolver configured")
		return report
	}
	codename, ok := a.facts.Codename()
	if !ok {
		a.logger.Warn(render.CodenameFact + " fact not available")
	}
	arch, ok := a.facts.Architecture()
	if !ok {
		a.logger.Warn("host architecture not available")
	}
	report.Codename = codename
	report.Architecture = arch
	return report
}
