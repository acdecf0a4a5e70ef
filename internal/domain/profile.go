package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Span times one named stage of a simulation run.
type Span struct {
	Name    string `json:"name"`
	Elapsed *int64 `json:"elapsedMs"`

	startTs time.Time
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
}

// Profile is simply a list of spans.
type Profile struct {
	Spans   []*Span `json:"spans"`
	TotalMs *int64  `json:"totalMs"`

	startTs time.Time
}

func NewProfile() (newProfile *Profile, endNewProfile func()) {
	newProfile = &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}

	return newProfile, newProfile.End
}

func (p *Profile) End() {
	t := time.Since(p.startTs).Milliseconds()
	if p.TotalMs == nil {
		p.TotalMs = &t
	}
}

// StartNewSpan ends the last span and begins a new one.
// Not thread safe.
func (p *Profile) StartNewSpan(name string) (newSpan *Span, endSpan func()) {
	newSpan = &Span{
		Name:    name,
		startTs: time.Now(),
	}
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	return newSpan, newSpan.End
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

const ContextProfileKey = "performanceProfile"

func NewCtxWithProfile(ctx context.Context) (context.Context, *Profile) {
	newProfile, _ := NewProfile()
	return context.WithValue(ctx, ContextProfileKey, newProfile), newProfile
}

// GetProfile pulls the run's profile out of ctx; callers that run
// outside a profiled request get a throwaway one.
func GetProfile(ctx context.Context) *Profile {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok {
		profile, _ = NewProfile()
	}
	return profile
}
