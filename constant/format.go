package constant

// Format selectors understood by yt-dlp.
const (
	FormatBest  = "bestvideo+bestaudio/best"
	FormatAudio = "bestaudio/best"
	FormatVideo = "bestvideo"
)

// External programs the downloader delegates to.
const (
	YtDlp  = "yt-dlp"
	Aria2c = "aria2c"
	FFmpeg = "ffmpeg"
)
