package model

// RowType classifies an answer row as a question or a requirement.
type RowType byte

const (
	// RowQuestion marks rows whose labels start with Q and whose caption
	// keyword is "Answer".
	RowQuestion RowType = 'Q'
	// RowRequirement marks rows whose labels start with R and whose caption
	// keyword is "Compliancy" or "Answer".
	RowRequirement RowType = 'R'
)

// Valid reports whether the row type is one of the known values.
func (t RowType) Valid() bool {
	return t == RowQuestion || t == RowRequirement
}

func (t RowType) String() string {
	if t.Valid() {
		return string(rune(t))
	}
	return "?"
}

// AnswerRow is one labeled item of externally supplied response data. Rows
// are read-only to the engine.
type AnswerRow struct {
	Label  string
	Type   RowType
	Text   string // original extracted prompt; unused by the layout engine
	Answer string
	Images []ImageAsset
}

// ImageFormat identifies a raster format supported for embedding.
type ImageFormat int

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatPNG
	ImageFormatJPEG
)

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatPNG:
		return "png"
	case ImageFormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// ParseImageFormat maps a format tag from row data to an ImageFormat.
func ParseImageFormat(s string) ImageFormat {
	switch s {
	case "png":
		return ImageFormatPNG
	case "jpeg", "jpg":
		return ImageFormatJPEG
	default:
		return ImageFormatUnknown
	}
}

// ImageAsset is a raw raster image carried by an answer row.
type ImageAsset struct {
	Data   []byte
	Format ImageFormat
}

// ContinuationJob carries the overflow of one answer row: the wrapped lines
// that did not fit in the in-document box, plus any images. A job is produced
// by the flow writer and consumed exactly once by the continuation manager.
type ContinuationJob struct {
	Label      string
	Lines      []string
	Images     []ImageAsset
	FontSize   float64
	LineHeight float64
	SourcePage PageHandle
	PageWidth  float64
	PageHeight float64
}
