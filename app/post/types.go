package post

type MediaType string

const (
	MediaTypeText  MediaType = "TEXT"
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
)

// Scraper input types. Values are kept as decoded JSON (numbers as
// json.Number) so that a wrong type in one record degrades to a default
// instead of failing the whole batch. Build them with ParseRawPost.

type RawPost struct {
	Text     any
	URL      any
	Likes    any
	Shares   any
	Comments any
	Media    []any // only Media[0] is ever read
}

type MediaItem struct {
	Typename    any
	Thumbnail   any
	PhotoImage  any
	PublishTime any
}

// Application output types. Field order is the JSON key order.

type Post struct {
	ID               string    `json:"id"`
	Author           Author    `json:"author"`
	Content          string    `json:"content"`
	MediaType        MediaType `json:"mediaType"`
	PostURL          string    `json:"postUrl"`
	UsesImageExploit bool      `json:"usesImageExploit"`
	Stats            Stats     `json:"stats"`
	MediaURL         *string   `json:"mediaUrl,omitempty"`     // IMAGE only
	ThumbnailURL     *string   `json:"thumbnailUrl,omitempty"` // VIDEO only
	PostedAt         string    `json:"postedAt"`
}

type Author struct {
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatarUrl" yaml:"avatar_url"`
	Handle    string `json:"handle" yaml:"handle"`
}

type Stats struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
	Views    int64 `json:"views"`
}

// Engagement is likes + comments + shares.
func (s Stats) Engagement() int64 {
	return s.Likes + s.Comments + s.Shares
}
