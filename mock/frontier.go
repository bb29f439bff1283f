package mock

import (
	"context"

	"github.com/fwojciec/sitereport"
)

var _ sitereport.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of sitereport.URLFrontier.
type URLFrontier struct {
	PushFn func(url string) bool
	PopFn  func() (string, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(url string) bool {
	return f.PushFn(url)
}

func (f *URLFrontier) Pop() (string, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ sitereport.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitereport.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
	DoneFn func(domain string)
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

func (l *DomainLimiter) Done(domain string) {
	l.DoneFn(domain)
}
