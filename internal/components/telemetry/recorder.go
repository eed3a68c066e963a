package telemetry

import "sync"

// Report is a single call made against a Recorder.
type Report struct {
	Kind   string
	Id     string
	Params []any
}

const (
	KindBroken  = "broken"
	KindWarning = "warning"
	KindDebug   = "debug"
	KindCount   = "count"
)

// Recorder is an API that keeps every report in memory, it is meant for
// asserting on reports in tests.
type Recorder struct {
	mu      sync.Mutex
	reports []Report
}

func (r *Recorder) add(kind, id string, params []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Kind: kind, Id: id, Params: params})
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.add(KindBroken, id, params)
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.add(KindWarning, id, params)
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.add(KindDebug, msg, params)
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.add(KindCount, id, []any{count})
}

// Reports returns a copy of the reports of the given kind, or all of them if
// kind is empty.
func (r *Recorder) Reports(kind string) []Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Report
	for _, rep := range r.reports {
		if kind == "" || rep.Kind == kind {
			out = append(out, rep)
		}
	}
	return out
}
