package project

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"fortio.org/safecast"
	"github.com/mitchellh/mapstructure"
	"go.trai.ch/jsproj/internal/core/domain"
	"go.trai.ch/jsproj/internal/core/ports"
)

// lintCacheKey is the key the resolved lint configuration is cached under.
const lintCacheKey = "eslint"

// ScopeSource reports the currently active project.
type ScopeSource interface {
	Scope() domain.Scope
}

// ternProject is the part of .tern-project the resolver reads.
type ternProject struct {
	EcmaVersion float64 `mapstructure:"ecmaVersion"`
}

// packageDescriptor is the part of package.json the resolver reads.
type packageDescriptor struct {
	ESLintConfig map[string]any `mapstructure:"eslintConfig"`
}

// lintProbe is one step of the lint candidate chain.
type lintProbe struct {
	file  string
	probe func(ctx context.Context, scope domain.Scope, file string) (domain.Config, bool)
}

// Resolver derives the ECMA level and the lint configuration of the active project.
type Resolver struct {
	files  *FileCache
	scopes ScopeSource
	tracer ports.Tracer
	logger ports.Logger

	mu      sync.Mutex
	gen     uint64
	ecma    int
	derived map[string]domain.Config
}

// NewResolver creates a resolver reading project files through files.
func NewResolver(files *FileCache, scopes ScopeSource, tracer ports.Tracer, logger ports.Logger) *Resolver {
	return &Resolver{
		files:   files,
		scopes:  scopes,
		tracer:  tracer,
		logger:  logger,
		derived: make(map[string]domain.Config),
	}
}

// ResolveEcmaLevel returns the ECMA level declared by the project's .tern-project.
// Anything other than an integral ecmaVersion within [5,7] resolves to 6.
func (r *Resolver) ResolveEcmaLevel(ctx context.Context) int {
	r.mu.Lock()
	if r.ecma != 0 {
		level := r.ecma
		r.mu.Unlock()
		return level
	}
	gen := r.gen
	r.mu.Unlock()

	scope := r.scopes.Scope()
	level := domain.DefaultEcmaLevel
	if scope.Active {
		ctx, span := r.tracer.Start(ctx, "resolve.ecma")
		file := r.files.Get(ctx, scope, domain.ChildPath(scope.Location, domain.TernProjectName))
		level = parseEcmaLevel(file)
		span.SetAttribute("ecma.level", level)
		span.End()
	}

	r.storeIfCurrent(scope, gen, func() { r.ecma = level })
	return level
}

// ResolveLintConfig returns the lint configuration of the active project.
// Candidates are probed in order and the first non-empty one wins.
// When no candidate yields a configuration the result is not cached.
func (r *Resolver) ResolveLintConfig(ctx context.Context) (domain.Config, bool) {
	r.mu.Lock()
	if cfg, ok := r.derived[lintCacheKey]; ok {
		r.mu.Unlock()
		return cfg, true
	}
	gen := r.gen
	r.mu.Unlock()

	scope := r.scopes.Scope()
	if !scope.Active {
		return nil, false
	}

	ctx, span := r.tracer.Start(ctx, "resolve.lint")
	defer span.End()

	for _, candidate := range r.lintChain() {
		cfg, ok := r.runProbe(ctx, scope, candidate)
		if !ok {
			continue
		}
		span.SetAttribute("lint.source", candidate.file)
		r.storeIfCurrent(scope, gen, func() { r.derived[lintCacheKey] = cfg })
		return cfg, true
	}

	span.SetAttribute("lint.source", "")
	return nil, false
}

// ForgetEcmaLevel clears the cached ECMA level.
func (r *Resolver) ForgetEcmaLevel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ecma = 0
	r.gen++
}

// ForgetLintConfig clears the cached lint configuration.
func (r *Resolver) ForgetLintConfig() {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.derived, lintCacheKey)
	r.gen++
}

func (r *Resolver) lintChain() []lintProbe {
	return []lintProbe{
		{file: domain.ESLintRCJSName, probe: r.probeLintFile},
		{file: domain.ESLintRCJSONName, probe: r.probeLintFile},
		{file: domain.ESLintRCName, probe: r.probeLintFile},
		{file: domain.PackageJSONName, probe: r.probePackageDescriptor},
	}
}

func (r *Resolver) runProbe(ctx context.Context, scope domain.Scope, candidate lintProbe) (domain.Config, bool) {
	ctx, span := r.tracer.Start(ctx, "resolve.lint.probe")
	defer span.End()

	span.SetAttribute("lint.candidate", candidate.file)
	cfg, ok := candidate.probe(ctx, scope, candidate.file)
	span.SetAttribute("lint.hit", ok)
	return cfg, ok
}

func (r *Resolver) probeLintFile(ctx context.Context, scope domain.Scope, name string) (domain.Config, bool) {
	file := r.files.Get(ctx, scope, domain.ChildPath(scope.Location, name))
	if file.Text() == "" {
		return nil, false
	}
	cfg, err := domain.ParseConfig([]byte(file.Text()))
	if err != nil {
		r.logger.Debug(fmt.Sprintf("skipping %s: %v", file.Path, err))
		return nil, false
	}
	return cfg, len(cfg) > 0
}

func (r *Resolver) probePackageDescriptor(ctx context.Context, scope domain.Scope, name string) (domain.Config, bool) {
	file := r.files.Get(ctx, scope, domain.ChildPath(scope.Location, name))
	if file.Text() == "" {
		return nil, false
	}
	raw, err := domain.ParseConfig([]byte(file.Text()))
	if err != nil {
		r.logger.Debug(fmt.Sprintf("skipping %s: %v", file.Path, err))
		return nil, false
	}
	var pkg packageDescriptor
	if err := mapstructure.Decode(map[string]any(raw), &pkg); err != nil {
		r.logger.Debug(fmt.Sprintf("skipping %s %s: %v", file.Path, domain.ESLintConfigKey, err))
		return nil, false
	}
	if len(pkg.ESLintConfig) == 0 {
		return nil, false
	}
	return domain.Config(pkg.ESLintConfig), true
}

// storeIfCurrent applies store when scope is still the active project and nothing
// was forgotten since gen was taken.
func (r *Resolver) storeIfCurrent(scope domain.Scope, gen uint64, store func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen || r.scopes.Scope().Epoch != scope.Epoch {
		return
	}
	store()
}

func parseEcmaLevel(file domain.CachedFile) int {
	if !file.Exists() {
		return domain.DefaultEcmaLevel
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(file.Text()), &raw); err != nil {
		return domain.DefaultEcmaLevel
	}
	var descriptor ternProject
	if err := mapstructure.Decode(raw, &descriptor); err != nil {
		return domain.DefaultEcmaLevel
	}

	level, err := safecast.Convert[int](descriptor.EcmaVersion)
	if err != nil || level < domain.MinEcmaLevel || level > domain.MaxEcmaLevel {
		return domain.DefaultEcmaLevel
	}
	return level
}
