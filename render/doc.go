// SPDX-License-Identifier: MIT

// Package render turns optimization progress into files: density images,
// an MJPEG animation of the design evolving, and an HTML chart of the
// compliance and volume histories.
//
// Nothing here feeds back into the optimization. Recorder implements
// beso.Observer and is the usual entry point; the individual writers are
// exported for callers that want only one artifact.
//
// Images are gonum/plot heat maps of the density field, one square cell per
// element, solid dark and void light (YlOrBr). Row 0 of the field is drawn at
// the top.
package render
