package chromedp

import (
	"os"

	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"

// chromePaths are probed in order when no explicit executable is configured.
var chromePaths = []string{
	"/headless-shell/headless-shell", // chromedp/headless-shell
	"/usr/bin/chromium-browser",      // zenika/alpine-chrome
	"/usr/bin/chromium",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
}

// GetExecAllocatorOptions returns chromedp options that work both locally and in Docker.
// An empty execPath falls back to probing the well-known container locations.
func GetExecAllocatorOptions(headless bool, execPath string) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-features", "site-per-process,TranslateUI"),
		chromedp.Flag("disable-hang-monitor", true),
		chromedp.Flag("disable-popup-blocking", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("metrics-recording-only", true),
		chromedp.Flag("password-store", "basic"),
		chromedp.Flag("use-mock-keychain", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)

	if !headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	if execPath == "" {
		execPath = findChrome()
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}

	return opts
}

func findChrome() string {
	for _, p := range chromePaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
