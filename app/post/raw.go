package post

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	timestampLayout      = "2006-01-02T15:04:05Z"
	timestampLayoutMicro = "2006-01-02T15:04:05.000000Z"

	// 0001-01-01T00:00:00Z .. 9999-12-31T23:59:59Z
	minUnixSeconds = -62135596800
	maxUnixSeconds = 253402300799
)

// ParseRawPost builds a RawPost from one decoded JSON object. Keys match
// exactly. The only shape requirement is that media, when present and not
// null, is an array; its elements are not inspected here.
func ParseRawPost(fields map[string]any) (RawPost, error) {
	raw := RawPost{
		Text:     fields["text"],
		URL:      fields["url"],
		Likes:    fields["likes"],
		Shares:   fields["shares"],
		Comments: fields["comments"],
	}

	switch media := fields["media"].(type) {
	case nil:
	case []any:
		raw.Media = media
	default:
		return RawPost{}, fmt.Errorf("media must be a JSON array, got %T", media)
	}

	return raw, nil
}

// firstMedia returns the first attachment. A non-object element is treated
// as an item with no fields.
func (r *RawPost) firstMedia() (MediaItem, bool) {
	if len(r.Media) == 0 {
		return MediaItem{}, false
	}

	fields, _ := r.Media[0].(map[string]any)
	return MediaItem{
		Typename:    fields["__typename"],
		Thumbnail:   fields["thumbnail"],
		PhotoImage:  fields["photo_image"],
		PublishTime: fields["publish_time"],
	}, true
}

func (m *MediaItem) isVideo() bool {
	return stringValue(m.Typename) == "Video"
}

func (m *MediaItem) thumbnailURL() *string {
	thumbnail := stringValue(m.Thumbnail)
	return &thumbnail
}

// dimensions reads photo_image. Anything but an object counts as absent.
func (m *MediaItem) dimensions() (width, height float64, ok bool) {
	fields, isObject := m.PhotoImage.(map[string]any)
	if !isObject {
		return 0, 0, false
	}
	width, wok := numberValue(fields["width"])
	height, hok := numberValue(fields["height"])
	return width, height, wok && hok
}

// publishedAt returns the rendered publish_time, or false when it is absent,
// zero, not a number, or outside years 1-9999.
func (m *MediaItem) publishedAt() (string, bool) {
	if n, ok := m.PublishTime.(json.Number); ok {
		if sec, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			if sec == 0 {
				return "", false
			}
			return formatUnix(sec, 0)
		}
	}

	ts, ok := numberValue(m.PublishTime)
	if !ok || ts == 0 || ts < minUnixSeconds || ts > maxUnixSeconds+1 {
		return "", false
	}

	sec := math.Floor(ts)
	micro := math.RoundToEven((ts - sec) * 1e6)
	if micro >= 1e6 {
		sec++
		micro = 0
	}
	return formatUnix(int64(sec), int64(micro))
}

func formatUnix(sec, micro int64) (string, bool) {
	if sec < minUnixSeconds || sec > maxUnixSeconds {
		return "", false
	}

	t := time.Unix(sec, micro*int64(time.Microsecond)).UTC()
	if micro == 0 {
		return t.Format(timestampLayout), true
	}
	return t.Format(timestampLayoutMicro), true
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// numberValue accepts any JSON number, integral or not.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// countValue is the lenient counter read used for likes and shares. Values
// that do not fit in an int64 count as 0.
func countValue(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
	case int:
		return int64(n)
	case int64:
		return n
	}

	f, ok := numberValue(v)
	if !ok || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

// strictCountValue only honors integer literals. 42.0, 1e2 and "42" are
// rejected.
func strictCountValue(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i
		}
	case int:
		return int64(n)
	case int64:
		return n
	}
	return 0
}
