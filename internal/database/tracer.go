package database

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// queryTracers fans one pgx tracer slot out to several tracers.
type queryTracers []pgx.QueryTracer

func (ts queryTracers) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, t := range ts {
		ctx = t.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (ts queryTracers) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, t := range ts {
		t.TraceQueryEnd(ctx, conn, data)
	}
}

// chain returns nil for no tracers and the tracer itself for one.
func chain(tracers ...pgx.QueryTracer) pgx.QueryTracer {
	switch len(tracers) {
	case 0:
		return nil
	case 1:
		return tracers[0]
	}
	return queryTracers(tracers)
}

type slowQueryStart struct{}

type slowQueryInfo struct {
	sql   string
	began time.Time
}

// maxLoggedSQL caps the statement text in slow query logs.
const maxLoggedSQL = 512

// slowQueryTracer warns about statements that take longer than threshold.
// It runs in every environment, unlike the full SQL trace log.
type slowQueryTracer struct {
	threshold time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func newSlowQueryTracer(threshold time.Duration, logger *zerolog.Logger) *slowQueryTracer {
	return &slowQueryTracer{
		threshold: threshold,
		logger:    logger.With().Str("component", "postgres").Logger(),
		now:       time.Now,
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryStart{}, slowQueryInfo{sql: data.SQL, began: t.now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	info, ok := ctx.Value(slowQueryStart{}).(slowQueryInfo)
	if !ok {
		return
	}

	elapsed := t.now().Sub(info.began)
	if elapsed < t.threshold {
		return
	}

	sql := strings.Join(strings.Fields(info.sql), " ")
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}

	event := t.logger.Warn()
	if data.Err != nil {
		event = event.Err(data.Err)
	}
	event.
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("sql", sql).
		Int64("rows_affected", data.CommandTag.RowsAffected()).
		Msg("slow query")
}
