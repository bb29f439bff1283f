package mock

import "github.com/fwojciec/sitereport"

var _ sitereport.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of sitereport.Renderer.
type Renderer struct {
	RenderFn func(records []*sitereport.PageRecord, format sitereport.Format) ([]byte, error)
}

func (r *Renderer) Render(records []*sitereport.PageRecord, format sitereport.Format) ([]byte, error) {
	return r.RenderFn(records, format)
}
