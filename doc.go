// Package sbeso is a small, dependency-light toolkit for BESO topology
// optimization: find the stiffest layout of a fixed amount of material in a
// rectangular plate under a point load.
//
// 🚀 What is sbeso?
//
//	A pure-Go pipeline that brings together:
//		• Mesh & DOF numbering for a regular grid of bilinear quads
//		• Element stiffness for plane stress (E, ν)
//		• Twelve support cases and nine load positions
//		• Dense FE assembly and two LU backends (gonum, Doolittle)
//		• Compliance sensitivities, mesh-independency filter, history averaging
//		• Hard-kill bisection on the element threshold
//		• PNG frames, MJPEG animation and an HTML history report
//
// Everything is organized in subpackages, bottom-up:
//
//	matrix/       flat row-major Dense, kernels, Doolittle LU, gonum Solve
//	grid/         float Field over the element grid + connected components
//	mesh/         node and DOF numbering
//	element/      8×8 element stiffness
//	boundary/     support/load cases → fixed DOFs, free DOFs, force vector
//	fem/          assembly of K(x) and the static solve
//	sensitivity/  compliance, element sensitivities, filter, stabilization
//	update/       bisection to the target volume
//	beso/         the optimization loop, config, observer and convergence
//	render/       density images, animation and charts
//	cmd/sbeso/    command-line front end
//
// Quick ASCII example (5×5, ALL_LEFT, load at B_RIGHT):
//
//	##...
//	####.
//	..###
//	..###
//	#####
//
//	go run ./cmd/sbeso run --width 40 --height 20 --report history.html
package sbeso
