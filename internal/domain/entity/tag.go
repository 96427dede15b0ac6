package entity

// Tag is created lazily the first time an article references its name.
// Names are deduplicated case-insensitively; tags are never deleted here.
type Tag struct {
	ID   int64
	Name string
	Note *string
}
