package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingoleap/ent"
	"github.com/abhisek/lingoleap/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLanguageID(data.LanguageID).
		SetLevel(data.Level).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScore(data.Score).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizResult, error) {
	q := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(quizevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}

	results := make([]QuizResult, 0, len(rows))
	for _, e := range rows {
		results = append(results, QuizResult{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			QuizEventData: QuizEventData{
				SessionID:      e.SessionID,
				LanguageID:     e.LanguageID,
				Level:          e.Level,
				TotalQuestions: e.TotalQuestions,
				CorrectAnswers: e.CorrectAnswers,
				Score:          e.Score,
				Passed:         e.Passed,
			},
		})
	}
	return results, nil
}
