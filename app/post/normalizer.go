package post

import (
	"strconv"
)

// Dimensions of the placeholder image some posters attach to text posts so
// they get image-post distribution.
const (
	dummyImageWidth  = 120
	dummyImageHeight = 1
)

type Normalizer struct {
	profile Profile
}

func NewNormalizer(profile Profile) *Normalizer {
	return &Normalizer{profile: profile}
}

// Run normalizes every record, preserving input order.
func (n *Normalizer) Run(raws []RawPost) []Post {
	posts := make([]Post, 0, len(raws))
	for i, raw := range raws {
		posts = append(posts, n.Normalize(raw, i))
	}
	return posts
}

// Normalize maps one scraper record at position index to an application post.
// It never fails: missing or mistyped optional fields fall back to defaults.
func (n *Normalizer) Normalize(raw RawPost, index int) Post {
	post := Post{
		ID:        strconv.Itoa(index + 1),
		Author:    n.profile.Author,
		Content:   stringValue(raw.Text),
		MediaType: MediaTypeText,
		PostURL:   stringValue(raw.URL),
		Stats: Stats{
			Likes:    countValue(raw.Likes),
			Comments: strictCountValue(raw.Comments),
			Shares:   countValue(raw.Shares),
		},
		PostedAt: n.profile.FallbackPostedAt,
	}

	media, ok := raw.firstMedia()
	if !ok {
		return post
	}

	post.MediaType, post.UsesImageExploit = classify(&media)

	switch post.MediaType {
	case MediaTypeImage:
		post.MediaURL = media.thumbnailURL()
	case MediaTypeVideo:
		post.ThumbnailURL = media.thumbnailURL()
	}

	if postedAt, ok := media.publishedAt(); ok {
		post.PostedAt = postedAt
	}

	return post
}

// classify resolves the media type from the first attachment. The second
// result is true only when a dummy image was reclassified as TEXT.
func classify(media *MediaItem) (MediaType, bool) {
	if media.isVideo() {
		return MediaTypeVideo, false
	}
	if isDummyImage(media) {
		return MediaTypeText, true
	}
	return MediaTypeImage, false
}

func isDummyImage(media *MediaItem) bool {
	width, height, ok := media.dimensions()
	return ok && width == dummyImageWidth && height == dummyImageHeight
}
