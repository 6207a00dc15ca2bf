// Package boardingpass decodes VIA Rail boarding passes.
//
// A pass is an Aztec barcode wrapping a fixed-width 130-character string.
// Decoder shells out to ZXing's command line runner to read the barcode from
// an image; Parse splits the decoded string at its fixed field offsets.
package boardingpass
