// Package pipeline provides the high-level orchestration for resume parsing
// and scoring.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/resumify/backend/internal/analysis"
	"github.com/resumify/backend/internal/parsing"
	"github.com/resumify/backend/internal/types"
)

// Source identifies which backend produced the structured resume.
type Source string

// Source values reported in results.
const (
	SourceHeuristic Source = "heuristic"
	SourceAI        Source = "ai"
)

// Result bundles everything the service derives from one resume text.
type Result struct {
	Resume  *types.ParsedResume  `json:"resume"`
	Quality *types.QualityReport `json:"quality"`
	Ats     *types.AtsReport     `json:"ats"`
	Source  Source               `json:"source"`
}

// Extractor produces a structured resume from raw text.
type Extractor interface {
	Extract(ctx context.Context, text string) (*types.ParsedResume, error)
}

// Pipeline parses resume text and scores the result. When an AI extractor is
// configured it runs concurrently with the heuristic parse; a successful AI
// answer is preferred and any AI failure falls back to the heuristic result.
type Pipeline struct {
	extractor Extractor
	logger    *zap.Logger
}

// New creates a Pipeline. extractor may be nil, which disables AI assist.
func New(extractor Extractor, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		extractor: extractor,
		logger:    logger,
	}
}

// Run parses and scores one resume text.
func (p *Pipeline) Run(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	start := time.Now()

	var (
		heuristic *types.ParsedResume
		assisted  *types.ParsedResume
		mu        sync.Mutex
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resume := parsing.Parse(text)
		mu.Lock()
		heuristic = resume
		mu.Unlock()
		return nil
	})

	if p.extractor != nil {
		g.Go(func() error {
			resume, err := p.extractor.Extract(gCtx, text)
			if err != nil {
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				// AI assist is best effort; the heuristic branch still answers.
				p.logger.Warn("ai extraction failed, falling back to heuristics", zap.Error(err))
				return nil
			}
			mu.Lock()
			assisted = resume
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resume := heuristic
	source := SourceHeuristic
	if assisted != nil {
		resume = assisted
		source = SourceAI
	}

	result := &Result{
		Resume:  resume,
		Quality: analysis.Quality(resume),
		Ats:     analysis.ATS(resume),
		Source:  source,
	}

	p.logger.Debug("resume processed",
		zap.String("source", string(source)),
		zap.Int("experience_entries", len(resume.Experience)),
		zap.Int("education_entries", len(resume.Education)),
		zap.Int("skills", resume.Skills.Total()),
		zap.Int("quality_score", result.Quality.Score),
		zap.Int("ats_score", result.Ats.Score),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
