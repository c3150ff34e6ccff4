package util

import "testing"

func TestYouTubeVideoID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "watch", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", want: "dQw4w9WgXcQ"},
		{name: "short link", url: "https://youtu.be/dQw4w9WgXcQ?si=abc", want: "dQw4w9WgXcQ"},
		{name: "embed", url: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "v", url: "https://www.youtube.com/v/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "shorts", url: "https://www.youtube.com/shorts/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{name: "shorts without www", url: "https://youtube.com/shorts/abc123defgh", want: "abc123defgh"},
		{name: "vimeo", url: "https://vimeo.com/12345", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := YouTubeVideoID(tt.url); got != tt.want {
				t.Fatalf("YouTubeVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsYouTubeURL(t *testing.T) {
	t.Parallel()

	for _, url := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
	} {
		if !IsYouTubeURL(url) {
			t.Fatalf("IsYouTubeURL(%q) = false", url)
		}
	}

	for _, url := range []string{"", "https://example.com/video.mp4", "https://youtu.be/short"} {
		if IsYouTubeURL(url) {
			t.Fatalf("IsYouTubeURL(%q) = true", url)
		}
	}
}

func TestYouTubeEmbedURL(t *testing.T) {
	t.Parallel()

	got, ok := YouTubeEmbedURL("https://youtu.be/dQw4w9WgXcQ")
	if !ok || got != "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ" {
		t.Fatalf("YouTubeEmbedURL() = %q, %v", got, ok)
	}

	if _, ok := YouTubeEmbedURL("https://example.com"); ok {
		t.Fatal("expected no embed URL for non-YouTube link")
	}
}
