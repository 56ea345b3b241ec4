package tools

import (
	"fmt"
	"runtime"

	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/icon"
	"github.com/bilidl/bilidl/style"
	"github.com/charmbracelet/lipgloss"
)

// packages maps a program to its package name where it differs.
var packages = map[string]string{
	constant.YtDlp:  "yt-dlp",
	constant.Aria2c: "aria2",
}

// InstallHint suggests a command that installs dep on the current OS.
func InstallHint(dep string) string {
	return installHint(runtime.GOOS, dep)
}

func installHint(goos, dep string) string {
	pkg := dep
	if p, ok := packages[dep]; ok {
		pkg = p
	}

	switch goos {
	case constant.Android:
		if dep == constant.YtDlp {
			return "pip install -U yt-dlp"
		}
		return "pkg install " + pkg
	case constant.Darwin:
		return "brew install " + pkg
	case constant.Linux:
		if dep == constant.YtDlp {
			return "pip install -U yt-dlp"
		}
		return "sudo apt install " + pkg
	case constant.Windows:
		return "scoop install " + pkg
	default:
		return ""
	}
}

// MissingBanner renders the boxed error shown when a required program is absent.
func MissingBanner(dep string) string {
	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required program '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd := InstallHint(dep); installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	return style.Box(style.HiRed,
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	)
}
