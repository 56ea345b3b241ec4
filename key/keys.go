// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 28

// Download Destination - these keys control where and how finished files are written.
const (
	DownloadsPath           = "downloads.path"
	DownloadsOutputTemplate = "downloads.output_template"
	DownloadsMergeFormat    = "downloads.merge_format"
	DownloadsOpenAfter      = "downloads.open_after"
)

// Format Listing - these keys govern the format table and the selection prompt.
const (
	FormatsLimit       = "formats.limit"
	FormatsMaxAttempts = "formats.max_attempts"
)

// Cookie Discovery - these keys configure automatic cookie-file detection.
const (
	CookiesAutoDetect  = "cookies.auto_detect"
	CookiesNames       = "cookies.names"
	CookiesSearchPaths = "cookies.search_paths"
)

// Segmented Downloads - these keys configure the aria2c integration.
const (
	Aria2Args   = "aria2.args"
	Aria2Prompt = "aria2.prompt"
)

// Extraction - these keys configure the yt-dlp delegation layer.
const (
	ExtractorCacheTTL     = "extractor.cache_ttl"
	ExtractorUpdatePrompt = "extractor.update_prompt"
	ExtractorFFmpegPath   = "extractor.ffmpeg_path"
)

// Progress Reporting - these keys tune the textual progress line.
const (
	ProgressThrottle = "progress.throttle"
	ProgressBar      = "progress.bar"
)

// Playlists - these keys control how playlist URLs are handled.
const (
	PlaylistExpand = "playlist.expand"
	PlaylistLimit  = "playlist.limit"
)

// History Tracking - these keys configure the persistence of finished downloads and entered URLs.
const (
	HistorySave        = "history.save"
	HistorySuggestURLs = "history.suggest_urls"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite      = "logs.write"
	LogsLevel      = "logs.level"
	LogsJson       = "logs.json"
	LogsMaxSize    = "logs.max_size"
	LogsMaxBackups = "logs.max_backups"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
