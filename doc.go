// Package glzw implements a generic LZW compression codec whose input
// alphabet and packed-output alphabet are both fully parameterizable,
// non-contiguous symbol ranges.
//
// A Codec binds an input alphabet to a pack alphabet and exposes Encode
// and Decode. The dictionary-building compressor and decompressor are
// classic LZW, including the first-repeat ("kwkwk") edge case; the
// variable-width bit packer maps the resulting code stream onto symbols
// of the pack alphabet, whose cardinality need not be a power of two.
package glzw
