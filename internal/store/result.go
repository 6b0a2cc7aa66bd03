package store

import (
	"context"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mai/internal/scoring"
)

// resultRepo implements ResultRepo on the ent SQL driver.
type resultRepo struct {
	drv *entsql.Driver
}

func (r *resultRepo) Save(ctx context.Context, res Result) (id int, err error) {
	if res.SessionID == "" {
		return 0, errors.New("save result: empty session id")
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	q, args := builder.Insert(resultsTable).
		Columns("session_id", "inventory", "answers", "completed_at").
		Values(res.SessionID, res.Inventory, res.Answers, millis(res.CompletedAt)).
		Query()
	out, err := exec(ctx, tx, q, args)
	if err != nil {
		return 0, fmt.Errorf("save result: %w", err)
	}
	lastID, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result id: %w", err)
	}
	id = int(lastID)

	if len(res.Scores) > 0 {
		ins := builder.Insert(resultScoresTable).Columns("result_id", "position", "label", "score", "total")
		for i, e := range res.Scores {
			ins.Values(id, i, e.Label, e.Score, e.Total)
		}
		q, args = ins.Query()
		if _, err = exec(ctx, tx, q, args); err != nil {
			return 0, fmt.Errorf("save result scores: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

var resultColumns = []string{"id", "session_id", "inventory", "answers", "completed_at"}

func (r *resultRepo) List(ctx context.Context, opts QueryOpts) ([]Result, error) {
	sel := builder.Select(resultColumns...).
		From(builder.Table(resultsTable)).
		OrderBy(entsql.Desc("completed_at"), entsql.Desc("id"))
	applyOpts(sel, rangePredicates("id", "completed_at", opts), opts.Limit)

	results, err := r.query(ctx, sel)
	if err != nil {
		return nil, err
	}
	// Result rows are closed before the score lookups run.
	for i := range results {
		if results[i].Scores, err = r.scores(ctx, results[i].ID); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (r *resultRepo) Get(ctx context.Context, id int) (*Result, error) {
	sel := builder.Select(resultColumns...).
		From(builder.Table(resultsTable)).
		Where(entsql.EQ("id", id))
	results, err := r.query(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	res := &results[0]
	if res.Scores, err = r.scores(ctx, res.ID); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resultRepo) Clear(ctx context.Context) (n int, err error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	q, args := builder.Delete(sessionEventsTable).Query()
	if _, err = exec(ctx, tx, q, args); err != nil {
		return 0, fmt.Errorf("clear session events: %w", err)
	}

	q, args = builder.Delete(resultScoresTable).Query()
	if _, err = exec(ctx, tx, q, args); err != nil {
		return 0, fmt.Errorf("clear result scores: %w", err)
	}

	q, args = builder.Delete(resultsTable).Query()
	out, err := exec(ctx, tx, q, args)
	if err != nil {
		return 0, fmt.Errorf("clear results: %w", err)
	}
	affected, err := out.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear results: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return int(affected), nil
}

func (r *resultRepo) query(ctx context.Context, sel *entsql.Selector) ([]Result, error) {
	q, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			res Result
			ts  int64
		)
		if err := rows.Scan(&res.ID, &res.SessionID, &res.Inventory, &res.Answers, &ts); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res.CompletedAt = fromMillis(ts)
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *resultRepo) scores(ctx context.Context, resultID int) ([]scoring.Entry, error) {
	q, args := builder.Select("label", "score", "total").
		From(builder.Table(resultScoresTable)).
		Where(entsql.EQ("result_id", resultID)).
		OrderBy(entsql.Asc("position")).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var out []scoring.Entry
	for rows.Next() {
		var e scoring.Entry
		if err := rows.Scan(&e.Label, &e.Score, &e.Total); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
