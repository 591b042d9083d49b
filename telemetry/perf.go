package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for the frame loop.
const (
	PhaseInput   = "input"
	PhaseRegen   = "regen"
	PhaseAnimate = "animate"
	PhaseDraw    = "draw"
	PhaseHUD     = "hud"
)

// framePhases enumerates phases in loop order for stable log output.
var framePhases = []string{PhaseInput, PhaseRegen, PhaseAnimate, PhaseDraw, PhaseHUD}

// FrameSample holds timing data for a single frame.
type FrameSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timings over a rolling window.
type PerfCollector struct {
	windowSize  int
	samples     []FrameSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize frames
// (e.g. 120 for two seconds at 60 fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = FrameSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated frame statistics over the window.
type PerfStats struct {
	AvgFrame time.Duration
	P50Frame time.Duration
	P95Frame time.Duration
	FPS      float64

	// Phase percentages of total frame time
	PhasePct map[string]float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{PhasePct: make(map[string]float64)}
	}

	durations := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	var total time.Duration

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		durations[i] = float64(s.FrameDuration)
		total += s.FrameDuration
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	mean, qs := summarize(durations, 0.5, 0.95)

	stats := PerfStats{
		AvgFrame: time.Duration(mean),
		P50Frame: time.Duration(qs[0]),
		P95Frame: time.Duration(qs[1]),
		PhasePct: make(map[string]float64),
	}
	if mean > 0 {
		stats.FPS = float64(time.Second) / mean
	}
	for phase, sum := range phaseSum {
		if total > 0 {
			stats.PhasePct[phase] = float64(sum) / float64(total) * 100
		}
	}
	return stats
}

// LogStats logs frame statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrame.Microseconds(),
		"p50_frame_us", s.P50Frame.Microseconds(),
		"p95_frame_us", s.P95Frame.Microseconds(),
		"fps", int(s.FPS),
	}
	for _, phase := range framePhases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}
	slog.Info("perf", attrs...)
}

// FrameStatsCSV is a flat struct for CSV export of frame stats.
type FrameStatsCSV struct {
	ElapsedSec float64 `csv:"elapsed_sec"`
	AvgFrameUS int64   `csv:"avg_frame_us"`
	P50FrameUS int64   `csv:"p50_frame_us"`
	P95FrameUS int64   `csv:"p95_frame_us"`
	FPS        float64 `csv:"fps"`
	InputPct   float64 `csv:"input_pct"`
	RegenPct   float64 `csv:"regen_pct"`
	AnimatePct float64 `csv:"animate_pct"`
	DrawPct    float64 `csv:"draw_pct"`
	HUDPct     float64 `csv:"hud_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(elapsed float64) FrameStatsCSV {
	return FrameStatsCSV{
		ElapsedSec: elapsed,
		AvgFrameUS: s.AvgFrame.Microseconds(),
		P50FrameUS: s.P50Frame.Microseconds(),
		P95FrameUS: s.P95Frame.Microseconds(),
		FPS:        s.FPS,
		InputPct:   s.PhasePct[PhaseInput],
		RegenPct:   s.PhasePct[PhaseRegen],
		AnimatePct: s.PhasePct[PhaseAnimate],
		DrawPct:    s.PhasePct[PhaseDraw],
		HUDPct:     s.PhasePct[PhaseHUD],
	}
}
