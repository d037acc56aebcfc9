package downloader

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// SupportedBrowsers lists the browsers yt-dlp can extract cookies from.
var SupportedBrowsers = []string{
	"brave", "chrome", "chromium", "edge", "firefox", "opera", "safari", "vivaldi", "whale",
}

// SupportedBrowser reports whether yt-dlp can read stored credentials from
// the named browser.
func SupportedBrowser(name string) bool {
	for _, browser := range SupportedBrowsers {
		if browser == name {
			return true
		}
	}
	return false
}

// commandError wraps yt-dlp command errors with additional context
type commandError struct {
	cmd     string
	output  string
	wrapped error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("yt-dlp error: %s\nCommand: %s\nOutput: %s", e.wrapped, e.cmd, e.output)
}

func (e *commandError) Unwrap() error {
	return e.wrapped
}

// newCommandError creates a new commandError with truncated command output
func newCommandError(cmd *exec.Cmd, output []byte, err error) error {
	cmdStr := cmd.String()
	if len(cmdStr) > 200 {
		cmdStr = cmdStr[:200] + "..."
	}
	return &commandError{
		cmd:     cmdStr,
		output:  string(output),
		wrapped: fmt.Errorf("%w: %v", ErrRetrieval, err),
	}
}

// YtDlpDownloader retrieves and transcodes audio by shelling out to yt-dlp,
// authenticating with cookies stored by a local browser.
type YtDlpDownloader struct {
	browser string
	format  string
	quality string
}

// NewYtDlpDownloader creates a downloader that uses the named browser's
// stored credentials. The browser must be in SupportedBrowsers.
func NewYtDlpDownloader(browser, format, quality string) (*YtDlpDownloader, error) {
	if !SupportedBrowser(browser) {
		return nil, fmt.Errorf("unsupported browser %q (supported: %s)",
			browser, strings.Join(SupportedBrowsers, ", "))
	}
	return &YtDlpDownloader{
		browser: browser,
		format:  format,
		quality: quality,
	}, nil
}

func (d *YtDlpDownloader) buildArgs(url, outputTemplate string) []string {
	return []string{
		"--cookies-from-browser", d.browser,
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", d.format,
		"--audio-quality", d.quality,
		"--newline",
		"-o", outputTemplate,
		url,
	}
}

// Download runs yt-dlp against the URL. The output template carries no
// extension; the audio extractor appends it when transcoding, so the final
// file lands at template.<format>.
func (d *YtDlpDownloader) Download(ctx context.Context, url, outputTemplate string, progress ProgressFunc) error {
	if err := d.checkYtDlpAvailable(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "yt-dlp", d.buildArgs(url, outputTemplate)...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to get yt-dlp stdout pipe: %w", err)
	}

	slog.Debug("Executing yt-dlp", "url", url, "template", outputTemplate, "browser", d.browser)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: failed to start yt-dlp: %v", ErrRetrieval, err)
	}

	converting := false
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		slog.Debug("yt-dlp output", "line", line)

		// The audio extractor announces its destination when the
		// download phase is complete and transcoding begins.
		if !converting && strings.HasPrefix(line, "[ExtractAudio]") {
			converting = true
			if progress != nil {
				progress(StageConverting, "Done downloading, now converting ...")
			}
		}
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return newCommandError(cmd, stderrBuf.Bytes(), err)
	}

	return nil
}

// checkYtDlpAvailable verifies that yt-dlp is installed and available
func (d *YtDlpDownloader) checkYtDlpAvailable() error {
	cmd := exec.Command("yt-dlp", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrYtDlpNotAvailable, err)
	}
	return nil
}
