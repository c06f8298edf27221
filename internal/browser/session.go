package browser

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrElementNotFound is returned by ClickNth when fewer elements match than requested.
	ErrElementNotFound = errors.New("element not found")
	ErrHTTPStatus      = errors.New("unexpected http status")
)

// Session is one stateful navigation context: a current page plus history.
// It is not safe for concurrent use.
type Session interface {
	Visit(ctx context.Context, url string) error
	// WaitForCSS polls until selector matches or timeout elapses. It never fails;
	// false only means the element did not show up in time.
	WaitForCSS(ctx context.Context, selector string, timeout time.Duration) bool
	HTML(ctx context.Context) (string, error)
	// ClickNth clicks the index-th (zero-based) element matching selector.
	ClickNth(ctx context.Context, selector string, index int) error
	Back(ctx context.Context) error
	Close() error
}

// Launcher starts new sessions.
type Launcher interface {
	Open(ctx context.Context) (Session, error)
}
