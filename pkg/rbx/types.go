package rbx

// SortOrder controls the direction of cursor-paginated listings.
type SortOrder string

const (
	// SortAscending lists oldest entries first.
	SortAscending SortOrder = "Asc"

	// SortDescending lists newest entries first.
	SortDescending SortOrder = "Desc"
)

// Page represents one page of a cursor-paginated list response.
//
// Roblox endpoints page with opaque cursors rather than page numbers: a nil
// NextPageCursor means the listing is exhausted.
type Page[T any] struct {
	PreviousPageCursor *string `json:"previousPageCursor" yaml:"previousPageCursor"`
	NextPageCursor     *string `json:"nextPageCursor"     yaml:"nextPageCursor"`
	Data               []T     `json:"data"               yaml:"data"`
}

// HasNext reports whether another page follows this one.
func (p *Page[T]) HasNext() bool {
	return p.NextPageCursor != nil && *p.NextPageCursor != ""
}

// DataWrapper is the envelope used by non-paginated batch endpoints
// (e.g. POST /v1/usernames/users) that return a bare "data" array.
type DataWrapper[T any] struct {
	Data []T `json:"data" yaml:"data"`
}

// ThumbnailSize is a supported thumbnail dimension string, e.g. "420x420".
type ThumbnailSize string

const (
	ThumbnailSize48  ThumbnailSize = "48x48"
	ThumbnailSize150 ThumbnailSize = "150x150"
	ThumbnailSize420 ThumbnailSize = "420x420"
)

// ThumbnailFormat selects the image encoding for thumbnail requests.
type ThumbnailFormat string

const (
	ThumbnailFormatPNG  ThumbnailFormat = "Png"
	ThumbnailFormatJPEG ThumbnailFormat = "Jpeg"
	ThumbnailFormatWebP ThumbnailFormat = "WebP"
)
