// Package pkg holds the stairpath libraries.
//
// A layout is a main staircase plus branch staircases that leave it (or
// another branch) at their first step and rejoin a staircase at their last
// step. A walk climbs from the bottom of the main staircase to its top in
// moves of allowed sizes. The libraries count those walks exactly, in 128-bit
// arithmetic, and convert between walks and their ranks in canonical order.
//
//	layout file
//	     ↓
//	[io]             parse text, TOML or JSON
//	     ↓
//	[stair]          validate, order nodes by step
//	     ↓
//	[stair/paths]    successor table, counts, select and rank
//	     ↓
//	[render]         DOT, SVG, PNG, PDF
//
// [pipeline] runs these stages with a [cache] in front of them, and
// [observability] exposes hooks around each stage. Errors carry codes from
// [errors].
//
// [io]: github.com/matzehuels/stairpath/pkg/io
// [stair]: github.com/matzehuels/stairpath/pkg/stair
// [stair/paths]: github.com/matzehuels/stairpath/pkg/stair/paths
// [render]: github.com/matzehuels/stairpath/pkg/render
// [pipeline]: github.com/matzehuels/stairpath/pkg/pipeline
// [cache]: github.com/matzehuels/stairpath/pkg/cache
// [observability]: github.com/matzehuels/stairpath/pkg/observability
// [errors]: github.com/matzehuels/stairpath/pkg/errors
package pkg
