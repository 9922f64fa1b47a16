package generation

// Fragment is one unit of a generative-service response. It is a closed
// tagged union: the only implementations are TextFragment and
// InlineImageFragment.
type Fragment interface {
	fragment()
}

// TextFragment is a textual part of a response.
type TextFragment struct {
	Text string
}

// InlineImageFragment is a binary image part of a response.
type InlineImageFragment struct {
	MIMEType string
	Data     []byte
}

func (TextFragment) fragment()        {}
func (InlineImageFragment) fragment() {}

// FirstInlineImage scans fragments in order and returns the first inline
// image. Text fragments are skipped. ok is false when no fragment carries
// image data, which callers treat as an empty result rather than a failure.
func FirstInlineImage(fragments []Fragment) (img *Image, ok bool) {
	for _, f := range fragments {
		inline, isImage := f.(InlineImageFragment)
		if !isImage || len(inline.Data) == 0 {
			continue
		}
		return &Image{MIMEType: inline.MIMEType, Data: inline.Data}, true
	}
	return nil, false
}
