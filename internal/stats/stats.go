// Package stats counts what happens in the viewer (frames, picks, panel state) in a
// private Prometheus registry. Values are read back in-process for the debug overlay.
package stats

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "motherboard"

// Stats owns the viewer's collectors.
type Stats struct {
	registry *prometheus.Registry

	frames       prometheus.Counter
	picks        *prometheus.CounterVec
	commands     *prometheus.CounterVec
	panelVisible prometheus.Gauge
	entries      prometheus.Gauge
	meshes       prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Stats {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)
	return &Stats{
		registry: reg,
		frames: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frames rendered.",
		}),
		picks: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "picks_total",
			Help:      "Clicks resolved by the picker, by result.",
		}, []string{"result"}),
		commands: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Console commands run, by outcome.",
		}, []string{"outcome"}),
		panelVisible: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "panel_visible",
			Help:      "1 while the section panel is shown.",
		}),
		entries: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scene_entries",
			Help:      "Selectable sections on the board.",
		}),
		meshes: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scene_meshes",
			Help:      "Drawable shapes in the scene.",
		}),
	}
}

// Registry exposes the underlying registry.
func (s *Stats) Registry() *prometheus.Registry { return s.registry }

// Frame counts one rendered frame.
func (s *Stats) Frame() { s.frames.Inc() }

// Pick counts one click.
func (s *Stats) Pick(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	s.picks.WithLabelValues(result).Inc()
}

// Panel records whether the section panel is visible.
func (s *Stats) Panel(visible bool) {
	if visible {
		s.panelVisible.Set(1)
		return
	}
	s.panelVisible.Set(0)
}

// Command counts one console command.
func (s *Stats) Command(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.commands.WithLabelValues(outcome).Inc()
}

// Scene records the size of the assembled scene.
func (s *Stats) Scene(entries, meshes int) {
	s.entries.Set(float64(entries))
	s.meshes.Set(float64(meshes))
}

// Snapshot is a point-in-time read of every collector.
type Snapshot struct {
	Frames       float64
	Hits         float64
	Misses       float64
	Commands     float64
	Failed       float64
	PanelVisible bool
	Entries      float64
	Meshes       float64
}

// Snapshot gathers the registry.
func (s *Stats) Snapshot() (Snapshot, error) {
	families, err := s.registry.Gather()
	if err != nil {
		return Snapshot{}, fmt.Errorf("stats: gather: %w", err)
	}
	var snap Snapshot
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			label := ""
			if len(m.GetLabel()) > 0 {
				label = m.GetLabel()[0].GetValue()
			}
			switch mf.GetName() {
			case namespace + "_frames_total":
				snap.Frames = m.GetCounter().GetValue()
			case namespace + "_picks_total":
				if label == "hit" {
					snap.Hits = m.GetCounter().GetValue()
				} else {
					snap.Misses = m.GetCounter().GetValue()
				}
			case namespace + "_commands_total":
				snap.Commands += m.GetCounter().GetValue()
				if label == "error" {
					snap.Failed = m.GetCounter().GetValue()
				}
			case namespace + "_panel_visible":
				snap.PanelVisible = m.GetGauge().GetValue() > 0
			case namespace + "_scene_entries":
				snap.Entries = m.GetGauge().GetValue()
			case namespace + "_scene_meshes":
				snap.Meshes = m.GetGauge().GetValue()
			}
		}
	}
	return snap, nil
}

// String renders the snapshot for the overlay.
func (s Snapshot) String() string {
	return fmt.Sprintf("Picks: %.0f hit / %.0f miss  Meshes: %.0f", s.Hits, s.Misses, s.Meshes)
}
