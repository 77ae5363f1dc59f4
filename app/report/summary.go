package report

import (
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lysyi3m/social-pulse/app/post"
)

// Summary describes one transformation run. It is informational only.
type Summary struct {
	Records     int
	InputBytes  int64
	OutputBytes int64
	Text        int
	Image       int
	Video       int
	Exploit     int
	Engagement  int64 // likes + comments + shares over all posts
}

func NewSummary(posts []post.Post, inputBytes, outputBytes int64) Summary {
	summary := Summary{
		Records:     len(posts),
		InputBytes:  inputBytes,
		OutputBytes: outputBytes,
	}

	for _, p := range posts {
		switch p.MediaType {
		case post.MediaTypeText:
			summary.Text++
		case post.MediaTypeImage:
			summary.Image++
		case post.MediaTypeVideo:
			summary.Video++
		}
		if p.UsesImageExploit {
			summary.Exploit++
		}
		summary.Engagement += p.Stats.Engagement()
	}

	return summary
}

// Reduction is the output size saving relative to the input, in percent.
func (s Summary) Reduction() float64 {
	if s.InputBytes <= 0 {
		return 0
	}
	return (1 - float64(s.OutputBytes)/float64(s.InputBytes)) * 100
}

func (s Summary) AverageEngagement() int64 {
	if s.Records == 0 {
		return 0
	}
	return int64(math.Round(float64(s.Engagement) / float64(s.Records)))
}

// Write prints the run summary. Numbers are grouped the English way
// regardless of the host locale.
func (s Summary) Write(w io.Writer, outputPath string) error {
	p := message.NewPrinter(language.English)

	lines := []struct {
		format string
		args   []any
	}{
		{"Transformed %d posts -> %s\n", []any{s.Records, outputPath}},
		{"Input size:  %10d bytes (%.1f KB)\n", []any{s.InputBytes, kilobytes(s.InputBytes)}},
		{"Output size: %10d bytes (%.1f KB)\n", []any{s.OutputBytes, kilobytes(s.OutputBytes)}},
		{"Reduction:   %.1f%%\n", []any{s.Reduction()}},
		{"Media types: TEXT=%d IMAGE=%d VIDEO=%d (image exploit: %d)\n", []any{s.Text, s.Image, s.Video, s.Exploit}},
		{"Avg engagement: %d\n", []any{s.AverageEngagement()}},
	}

	for _, line := range lines {
		if _, err := p.Fprintf(w, line.format, line.args...); err != nil {
			return err
		}
	}

	return nil
}

func kilobytes(n int64) float64 {
	return float64(n) / 1024
}
