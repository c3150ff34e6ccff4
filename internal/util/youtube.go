package util

import "regexp"

var (
	youtubeURLPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?|shorts)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

	youtubeIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/watch\?v=([^&\s]+)`),
		regexp.MustCompile(`youtu\.be/([^?\s]+)`),
		regexp.MustCompile(`youtube\.com/embed/([^?\s]+)`),
		regexp.MustCompile(`youtube\.com/v/([^?\s]+)`),
		regexp.MustCompile(`youtube\.com/shorts/([^?\s/]+)`),
	}
)

// IsYouTubeURL reports whether url points at a YouTube video.
func IsYouTubeURL(url string) bool {
	return url != "" && youtubeURLPattern.MatchString(url)
}

// YouTubeVideoID extracts the video ID from watch, youtu.be, embed, v and
// shorts links. It returns "" when none matches.
func YouTubeVideoID(url string) string {
	if url == "" {
		return ""
	}

	for _, pattern := range youtubeIDPatterns {
		if match := pattern.FindStringSubmatch(url); len(match) > 1 && match[1] != "" {
			return match[1]
		}
	}

	return ""
}

// YouTubeEmbedURL returns the privacy-enhanced embed URL for a video link.
func YouTubeEmbedURL(url string) (string, bool) {
	id := YouTubeVideoID(url)
	if id == "" {
		return "", false
	}

	return "https://www.youtube-nocookie.com/embed/" + id, true
}
