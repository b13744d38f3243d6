// SPDX-License-Identifier: MIT

// Package beso runs Bi-directional Evolutionary Structural Optimization
// (BESO) on a regular 2D plane-stress mesh: it searches for the material
// layout of minimum compliance at a target volume fraction.
//
// What:
//
//	Run drives the iteration pipeline
//
//	  design x ─► fem.Solve ─► sensitivity.Analyze ─► sensitivity.Filter
//	           ─► sensitivity.Stabilize ─► update.Update ─► new design x
//
//	starting from an all-solid grid and shrinking the target volume
//	geometrically, vol = max(vol·(1-ER), VolFrac), until the compliance
//	history settles.
//
// Convergence:
//
//	After more than 10 iterations, with history c of length i,
//
//	  change = |Σ c[i-9:i-5] - Σ c[i-4:i]| / Σ c[i-4:i]
//
//	(half-open index ranges over the 0-based history) and the run stops
//	once change < ConvergenceTol.
//
// Observers:
//
//	Every iteration is reported to an optional Observer with a snapshot of
//	the design, the compliance, the achieved volume and the scheduled target.
//	Observers only watch; their return value aborts the run on error and
//	never steers it.
//
// Errors:
//
//   - *ConfigError: invalid Config or option, raised before any FE work.
//     Wraps mesh.ErrBadMesh, ErrBadVolumeFraction, ErrBadEvolutionRatio,
//     ErrBadFilterRadius, ErrBadPenalty, element.ErrBadMaterial,
//     boundary.ErrUnknownBoundaryCase, boundary.ErrUnknownLoadCase, …
//   - *SingularSystemError: K_ff could not be solved; carries the iteration.
//   - ErrMaxIterations: the iteration cap was reached before convergence.
//   - ctx.Err(): the context ended between iterations.
//
// On ErrMaxIterations and context errors Run still returns the partial Result.
package beso
