// MODUL: probe
// ZWECK: Konstruiert jeden registrierten Kind mit allen gueltigen Selektoren gegen eine Library
// INPUT: native.Library, Kind-Liste, Parallelitaet
// OUTPUT: Outcome pro (Kind, Precision, Methode) in deterministischer Reihenfolge
// NEBENEFFEKTE: Ein eigener daal.Context pro Konstruktion, der danach geschlossen wird
// ABHAENGIGKEITEN: daal, native, errgroup
// HINWEISE: Fehler einzelner Konstruktionen landen im Outcome; nur Abbruch und Context-Fehler beenden den Lauf

package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

// Job ist eine einzelne Konstruktion.
type Job struct {
	Kind      daal.KindInfo
	Precision daal.Precision
	Method    daal.Member
}

// Outcome ist das Ergebnis eines Jobs.
type Outcome struct {
	Kind       string           `json:"kind"`
	Precision  string           `json:"precision,omitempty"`
	Method     string           `json:"method,omitempty"`
	Handle     native.Handle    `json:"handle,omitempty"`
	Companions []daal.Companion `json:"companions,omitempty"`
	Rejected   bool             `json:"rejected,omitempty"`
	Error      string           `json:"error,omitempty"`
	Duration   time.Duration    `json:"duration"`
}

// OK prueft ob die Konstruktion erfolgreich war.
func (o Outcome) OK() bool {
	return o.Error == ""
}

// Jobs expandiert kinds in einzelne Konstruktionen.
// Kinds ohne Selektoren ergeben genau einen Job.
func Jobs(kinds []daal.KindInfo) []Job {
	var jobs []Job
	for _, k := range kinds {
		if !k.Selectors() {
			jobs = append(jobs, Job{Kind: k})
			continue
		}
		for _, prec := range k.Precisions {
			for _, m := range k.Methods {
				jobs = append(jobs, Job{Kind: k, Precision: prec, Method: m})
			}
		}
	}
	return jobs
}

// WithPrecision behaelt nur Jobs mit prec; Jobs ohne Selektoren bleiben erhalten.
func WithPrecision(jobs []Job, prec daal.Precision) []Job {
	var kept []Job
	for _, j := range jobs {
		if !j.Kind.Selectors() || j.Precision == prec {
			kept = append(kept, j)
		}
	}
	return kept
}

// Run fuehrt alle Jobs mit hoechstens parallel gleichzeitigen Konstruktionen aus.
func Run(ctx context.Context, lib native.Library, jobs []Job, parallel int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := runJob(lib, job)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("probe finished", "jobs", len(jobs), "failed", Failed(outcomes))
	return outcomes, nil
}

func runJob(lib native.Library, job Job) (Outcome, error) {
	out := Outcome{Kind: string(job.Kind.Name)}
	if job.Kind.Selectors() {
		out.Precision = job.Precision.String()
		out.Method = job.Method.Name
	}

	dctx, err := daal.NewContext(lib)
	if err != nil {
		return out, fmt.Errorf("probe %s: %w", job.Kind.Name, err)
	}
	defer dctx.Close()

	start := time.Now()
	p, err := job.Kind.Build(dctx, job.Precision, job.Method.Code)
	out.Duration = time.Since(start)
	if err != nil {
		var cfgErr *daal.ConfigError
		out.Rejected = errors.As(err, &cfgErr)
		out.Error = err.Error()
		return out, nil
	}

	out.Handle = p.Handle()
	if cl, ok := p.(daal.CompanionLister); ok {
		comps, err := cl.Companions()
		if err != nil {
			out.Error = err.Error()
			return out, nil
		}
		out.Companions = comps
	}

	return out, nil
}

// Failed zaehlt die fehlgeschlagenen Outcomes.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.OK() {
			n++
		}
	}
	return n
}
