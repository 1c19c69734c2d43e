package glzw

// Option configures a Codec at construction time.
type Option func(*Codec)

// WithCodeBufferHint sets the initial capacity of the buffer that
// EncodeSeq and DecodeSeq drain their input iterator into. It does not
// change the encoder's code buffer, which is always pre-sized to 1.5x
// the input length.
func WithCodeBufferHint(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.codeBufferHint = n
		}
	}
}

// WithArchiveTransport sets the default transport codec name used by
// Codec.MarshalArchive when no explicit name is passed to it. Valid
// names are registered in archivecompress; "none" disables transport
// compression.
func WithArchiveTransport(name string) Option {
	return func(c *Codec) {
		c.transport = name
	}
}
