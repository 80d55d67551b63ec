package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/alscript/engine"
	"github.com/plus3/alscript/spatial"
)

type Report struct {
	// Configuration
	ConfigSource string
	Scene        string
	Frames       uint64
	DeltaTime    float32

	// Results
	TotalTime     time.Duration
	FrameTime     Stats
	Engine        engine.Stats
	Entities      []EntityReport
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type EntityReport struct {
	Name     string
	Script   string
	Active   bool
	Position spatial.Vector3
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Sandbox Run Report

## Configuration
- **Config:** {{.ConfigSource}}
- **Scene:** {{.Scene}}
- **Frames:** {{.Frames}} at {{printf "%.4f" .DeltaTime}}s

## Frame Time
- **Total:** {{.TotalTime}}
- **Avg:** {{.FrameTime.Avg}}
- **Min:** {{.FrameTime.Min}}
- **Max:** {{.FrameTime.Max}}

## Scripts ({{.Engine.ScriptCount}} live, {{.Engine.TotalExecutions}} updates)
{{- range .Engine.Classes}}
- **{{.Class}}** x{{.Instances}}: {{.ExecutionCount}} calls, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Entities
{{- range .Entities}}
- {{.Name}}{{if .Script}} [{{.Script}}]{{end}}{{if not .Active}} (inactive){{end}}: {{vec .Position}}
{{- end}}

## Memory
- Heap Alloc: {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}} (delta {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}})
- Num GC:     {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}}
`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"vec": func(v spatial.Vector3) string {
		return fmtVec(v)
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
