// Package tools locates the external programs downloads are delegated to and drives aria2c directly.
package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/bilidl/bilidl/constant"
	"github.com/bilidl/bilidl/key"
	"github.com/bilidl/bilidl/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Tools holds the resolved locations of the external programs.
type Tools struct {
	YtDlp  mo.Option[string]
	Aria2c mo.Option[string]
	FFmpeg mo.Option[string]
}

func find(name string) mo.Option[string] {
	path, err := lookPath(name)
	if err != nil {
		log.Debugf("%s not found: %v", name, err)
		return mo.None[string]()
	}
	return mo.Some(path)
}

// Detect searches PATH for yt-dlp, aria2c and ffmpeg.
// A configured extractor.ffmpeg_path replaces the PATH lookup for ffmpeg.
func Detect() Tools {
	t := Tools{
		YtDlp:  find(constant.YtDlp),
		Aria2c: find(constant.Aria2c),
	}

	if custom := viper.GetString(key.ExtractorFFmpegPath); custom != "" {
		t.FFmpeg = find(custom)
	} else {
		t.FFmpeg = find(constant.FFmpeg)
	}

	return t
}

// Missing lists the programs that could not be found, in detection order.
func (t Tools) Missing() []string {
	var missing []string
	for _, tool := range []lo.Tuple2[string, mo.Option[string]]{
		lo.T2(constant.YtDlp, t.YtDlp),
		lo.T2(constant.Aria2c, t.Aria2c),
		lo.T2(constant.FFmpeg, t.FFmpeg),
	} {
		if tool.B.IsAbsent() {
			missing = append(missing, tool.A)
		}
	}
	return missing
}

// Aria2Args returns the configured aria2c arguments.
// A single string value set through the environment is split on whitespace.
func Aria2Args() []string {
	return viper.GetStringSlice(key.Aria2Args)
}

// DownloaderArgs formats the aria2c arguments for yt-dlp's --downloader-args.
func DownloaderArgs() string {
	return constant.Aria2c + ":" + strings.Join(Aria2Args(), " ")
}

// DirectArgs builds the aria2c command line used to fetch a URL without yt-dlp.
func DirectArgs(url string, cookie mo.Option[string]) []string {
	args := []string{"--seed-time=0", "--enable-dht=true", "--enable-peer-exchange=true"}
	args = append(args, Aria2Args()...)

	if path, ok := cookie.Get(); ok {
		args = append(args, "--load-cookies="+path)
	}

	return append(args, url)
}

// ErrNoAria2 is returned when a direct transfer is requested but aria2c is not installed.
var ErrNoAria2 = errors.New("aria2c is not installed")

// RunAria2 downloads url into dir with aria2c, streaming its output to out.
func RunAria2(ctx context.Context, aria2c mo.Option[string], url, dir string, cookie mo.Option[string], out io.Writer) error {
	bin, ok := aria2c.Get()
	if !ok {
		return ErrNoAria2
	}

	cmd := exec.CommandContext(ctx, bin, DirectArgs(url, cookie)...)
	cmd.Dir = dir
	cmd.Stdout = out
	cmd.Stderr = out

	log.Infof("executing: %s", shellescape.QuoteCommand(cmd.Args))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("aria2c: %w", err)
	}
	return nil
}
