package domain

import (
	"context"
	"time"
)

const ContextProfileKey = "performanceProfile"

func NewPerformanceProfile() *PerformanceProfile {
	return &PerformanceProfile{
		StartTime: time.Now(),
	}
}

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

// PerformanceProfile records how long each step of an analysis took.
type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

// GetPerformanceProfile returns the profile stored in ctx, or a new one
// if the caller did not set it up.
func GetPerformanceProfile(ctx context.Context) *PerformanceProfile {
	if p, ok := ctx.Value(ContextProfileKey).(*PerformanceProfile); ok && p != nil {
		return p
	}
	return NewPerformanceProfile()
}

func (p *PerformanceProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

func (p *PerformanceProfile) Add(name string) {
	last := p.StartTime
	if len(p.Events) > 0 {
		last = p.Events[len(p.Events)-1].Time
	}
	now := time.Now()
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: now.Sub(last).Milliseconds(),
		Time:      now,
	})
}

// Fields flattens the profile into key/value pairs for structured logging.
func (p PerformanceProfile) Fields() []interface{} {
	out := []interface{}{"totalMs", p.TotalMs}
	for _, e := range p.Events {
		out = append(out, e.Name+"Ms", e.ElapsedMs)
	}
	return out
}
