package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/tetris/tetris"
)

type Report struct {
	// Configuration
	Config   tetris.Config
	Sessions int

	// Results
	Results    []*Result
	Best       *Result
	TotalTime  time.Duration
	Frames     int
	Locked     int
	Lines      int
	GamesOver  int
	Score      Stats
	Systems    []SystemTiming
	EventTypes []tetris.EventType
	Events     map[tetris.EventType]int
	ShowBoard  bool
}

type Stats struct {
	Min     int
	Max     int
	Avg     int
	Samples []int
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / len(s.Samples)
}

func NewReport(cfg tetris.Config, results []*Result, elapsed time.Duration) *Report {
	r := &Report{
		Config:    cfg,
		Sessions:  len(results),
		Results:   results,
		TotalTime: elapsed,
		Events:    make(map[tetris.EventType]int),
	}

	systems := make(map[string]int)
	for _, res := range results {
		r.Frames += res.Frames
		r.Locked += res.Stats.PiecesLocked
		r.Lines += res.Stats.Lines
		if res.Stats.State == tetris.StateGameOver {
			r.GamesOver++
		}
		r.Score.Samples = append(r.Score.Samples, res.Stats.Score)
		if r.Best == nil || res.Stats.Score > r.Best.Stats.Score {
			r.Best = res
		}

		for typ, n := range res.Events {
			r.Events[typ] += n
		}

		for _, st := range res.Systems {
			idx, ok := systems[st.Name]
			if !ok {
				idx = len(r.Systems)
				systems[st.Name] = idx
				r.Systems = append(r.Systems, SystemTiming{Name: st.Name})
			}
			agg := &r.Systems[idx]
			agg.Calls += st.Calls
			agg.Total += st.Total
			agg.Max = max(agg.Max, st.Max)
		}
	}
	r.Score.Finalize()

	for typ := tetris.PieceSpawned; typ <= tetris.HardDropped; typ++ {
		r.EventTypes = append(r.EventTypes, typ)
	}
	return r
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Simulation Report

## Configuration
- **Board:** {{.Config.Width}}x{{.Config.Height}}
- **Sessions:** {{.Sessions}}
- **Lines Per Level:** {{.Config.LinesPerLevel}}

## Results
- **Wall Time:** {{.TotalTime}}
- **Frames:** {{.Frames}}
- **Pieces Locked:** {{.Locked}}
- **Lines Cleared:** {{.Lines}}
- **Games Over:** {{.GamesOver}} / {{.Sessions}}
- **Score:**
  - **Avg:** {{.Score.Avg}}
  - **Min:** {{.Score.Min}}
  - **Max:** {{.Score.Max}}

## Sessions
{{range .Results}}- #{{.Index}} seed={{.Seed}} frames={{.Frames}} ticks={{.Ticks}} score={{.Stats.Score}} lines={{.Stats.Lines}} level={{.Stats.Level}} drop={{.DropInterval}} state={{.Stats.State}}{{if .Failures}} handler-failures={{.Failures}}{{end}}
{{end}}
## Events
{{range .EventTypes}}- {{.}}: {{index $.Events .}}
{{end}}
## Systems
{{range .Systems}}- {{.Name}}: calls={{.Calls}} avg={{avg .Total .Calls}} max={{.Max}}
{{end}}
{{- if and .ShowBoard .Best}}
## Best Board (session #{{.Best.Index}})
` + "```" + `
{{.Best.Final}}
` + "```" + `
{{end}}`

	fm := template.FuncMap{
		"avg": func(total time.Duration, calls int64) time.Duration {
			if calls == 0 {
				return 0
			}
			return total / time.Duration(calls)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
