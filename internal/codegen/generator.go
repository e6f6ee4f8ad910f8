// Package codegen lowers a parsed maga file to an LLVM module.
//
// A Generator owns one backend context and one module for the lifetime of
// a compilation unit. Generation is single-threaded and stops at the first
// error; the module contents are unspecified after a failure.
package codegen

import (
	"github.com/you-not-fish/maga/internal/backend"
	"github.com/you-not-fish/maga/internal/rtabi"
	"github.com/you-not-fish/maga/internal/syntax"
	"github.com/you-not-fish/maga/internal/types"
)

// Config describes the module to generate.
type Config struct {
	ModuleName   string
	TargetTriple string
	DataLayout   string
}

// DefaultConfig returns the configuration for the default target.
func DefaultConfig() Config {
	return Config{
		ModuleName:   rtabi.DefaultModuleName,
		TargetTriple: rtabi.TargetTriple,
		DataLayout:   rtabi.DataLayout,
	}
}

// Generator generates code for functions into a single module.
type Generator struct {
	cfg Config
	ctx *backend.Context
	mod *backend.Module
	reg *types.Registry

	// State of the function being generated.
	scope *Scope
	fn    *funcState
}

// funcState is the per-function generation state.
type funcState struct {
	decl   *syntax.Function
	fn     *backend.Function
	b      *backend.Builder
	result *types.TypeDef
}

// New creates a Generator with a fresh context, module and type registry.
// The caller must Close it.
func New(cfg Config) (*Generator, error) {
	if cfg.ModuleName == "" {
		cfg.ModuleName = rtabi.DefaultModuleName
	}

	ctx := backend.NewContext()
	mod, err := ctx.NewModule(cfg.ModuleName)
	if err != nil {
		ctx.Close()
		return nil, backendError(syntax.NoPos, err)
	}
	if err := mod.SetTarget(cfg.TargetTriple, cfg.DataLayout); err != nil {
		ctx.Close()
		return nil, backendError(syntax.NoPos, err)
	}
	reg, err := types.NewRegistry()
	if err != nil {
		ctx.Close()
		return nil, backendError(syntax.NoPos, err)
	}

	return &Generator{cfg: cfg, ctx: ctx, mod: mod, reg: reg}, nil
}

// Close releases the module and the backend context.
func (g *Generator) Close() {
	g.mod.Close()
	g.ctx.Close()
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Module returns the module being populated.
func (g *Generator) Module() *backend.Module { return g.mod }

// Registry returns the type registry.
func (g *Generator) Registry() *types.Registry { return g.reg }

// Generate generates every function of f in source order.
func (g *Generator) Generate(f *syntax.File) error {
	for _, fn := range f.Functions() {
		if _, err := g.GenerateFunction(fn); err != nil {
			return err
		}
	}
	return nil
}
