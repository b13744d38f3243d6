// SPDX-License-Identifier: MIT

// Package boundary resolves an enumerated support (boundary) case and load
// case on a regular mesh into concrete FE inputs: the fixed DOF set, its
// sorted complement (free DOFs), and a force vector with a single non-zero
// entry.
//
// Geometry (0-based; row 0 is the top edge, column 0 the left edge):
//
//   - Edge supports (ALL_*) clamp both DOFs of every node on the edge(s).
//   - Corner supports (LT, LB, RT, RB) clamp both DOFs of a run of nodes along
//     the top or bottom edge starting at that corner. The run length is
//     max(1, round(0.2*(nelx+1))) nodes unless overridden with WithCornerSpan.
//   - A load case picks a node at row {T: 0, M: nely/2, B: nely} and column
//     {LEFT: 0, MIDDLE: nelx/2, RIGHT: nelx}; the load acts on its y DOF with
//     magnitude DefaultForce unless overridden with WithForce.
//
// Both case types are closed enums: Resolve switches exhaustively and rejects
// any value outside the declared set with ErrUnknownBoundaryCase or
// ErrUnknownLoadCase before any FE work happens.
//
// Errors (sentinel):
//
//   - ErrUnknownBoundaryCase, ErrUnknownLoadCase: value outside the enum.
//   - ErrNoSupports: the fixed set is empty (rigid-body motion unconstrained).
//   - ErrDOFOutOfRange: an explicit DOF outside [0, NDOF).
//   - ErrLoadOnSupport: the load DOF is clamped, so the structure carries no load.
package boundary
