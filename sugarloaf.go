// Package sugarloaf turns styled terminal grid lines into GPU-ready draw
// primitives: positioned glyph-run sections, background rectangles and
// cursor/decoration overlays.
//
// # Overview
//
// The library is organized into three layers, leaves first:
//
//   - font.Catalog owns the ordered collection of loaded font faces
//     (regular/italic/bold/bold-italic, fallbacks, user extras, a trailing
//     symbol face) plus lazily-loaded emoji faces. It is built once and
//     replaced wholesale on configuration change.
//   - font.Resolver decides, per character cluster and requested style,
//     which font slot to draw with. It keeps a private pull-through cache
//     over the catalog and manages the emoji load/eviction lifecycle.
//   - compositor.Compositor walks one grid line at a time and emits the
//     background rects and glyph sections consumed by the rendering backend.
//
// # Quick Start
//
//	catalog := font.Build(font.DefaultSpec(), nil) // embedded faces only
//	library := font.NewLibrary(catalog)
//	resolver := font.NewResolver(library)
//
//	comp := compositor.New(resolver, compositor.Layout{
//	    CellWidth: 9, CellHeight: 18, Scale: 1, FontSize: 16, LineHeight: 1,
//	})
//	comp.Update(line)
//	backend.Submit(comp.Rects(), comp.Sections())
//
// The GPU pipeline itself (texture atlases, shaping, rasterization) is a
// downstream consumer and is not part of this package.
package sugarloaf
