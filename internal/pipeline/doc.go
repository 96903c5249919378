// Package pipeline runs the fixed imgtools programs end to end: reading from
// the configured input directory, transforming, and writing to the output
// directory.
//
// Failures are contained at the smallest sensible unit. The basic pipeline and
// the grid collage stop at the first error and, for the grid, write nothing.
// The batch watermarker and the bordered collage skip a file that cannot be
// loaded or saved, log it, and carry on with the rest.
package pipeline
