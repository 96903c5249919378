// Package collage assembles several images into one.
//
// Two layouts are provided:
//
//   - Grid tiles thumbnails into a fixed rows x cols arrangement. Every cell has
//     the size of the first thumbnail, and the operation fails with
//     ErrInsufficientImages when fewer than rows*cols images are supplied.
//   - Bordered packs framed thumbnails left-to-right, top-to-bottom over a
//     gradient background, wrapping to a new row when the next frame would
//     cross the right margin.
//
// Both operate on decoded images only; loading files and deciding what to do
// with ones that fail is the caller's job.
package collage
