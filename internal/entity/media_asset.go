package entity

// MediaKind classifies stock assets.
type MediaKind string

const (
	MediaKindPhoto    MediaKind = "photo"
	MediaKindVector   MediaKind = "vector"
	MediaKindDocument MediaKind = "psd"
)

// Valid reports whether k is one of the supported kinds.
func (k MediaKind) Valid() bool {
	switch k {
	case MediaKindPhoto, MediaKindVector, MediaKindDocument:
		return true
	default:
		return false
	}
}

// Dimensions are pixel sizes.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MediaAsset is a licensed stock photo, vector or layered document.
type MediaAsset struct {
	ID         string     `json:"id"`
	Kind       MediaKind  `json:"type"`
	URL        string     `json:"url"`
	Preview    string     `json:"preview"`
	Dimensions Dimensions `json:"dimensions"`
	License    string     `json:"license"`
	Tags       []string   `json:"tags"`
}

// SearchPage is one page of results. Total is the size of the whole result set
// as reported by the vendor and is independent of len(Items).
type SearchPage[T any] struct {
	Items []T `json:"resources"`
	Total int `json:"total"`
}

// DownloadLink is a short-lived URL for fetching an asset.
type DownloadLink struct {
	URL string `json:"url"`
}
