//go:build unit

// Package uowtest provides an in-memory UnitOfWork for command tests. Each Within
// call runs serialized and is rolled back when fn returns an error, which mirrors
// the row-lock plus transaction semantics of the Postgres implementation.
package uowtest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/verification"
	"meetup-capture/internal/infra"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errUniqueViolation = errors.New("unique violation")

type captureRow struct {
	req       shared.CaptureRequest
	sentAt    *time.Time
	updatedAt time.Time
}

type state struct {
	meetups  map[uuid.UUID]*meetup.Meetup
	codes    map[uuid.UUID][]*verification.Code
	captures map[uuid.UUID]*captureRow // keyed by transaction id
}

type Memory struct {
	mu sync.Mutex
	st state

	// Commits counts successful Within calls.
	Commits int
	// FailCommit makes the next Within roll back and return it.
	FailCommit error
}

func New() *Memory {
	return &Memory{st: state{
		meetups:  make(map[uuid.UUID]*meetup.Meetup),
		codes:    make(map[uuid.UUID][]*verification.Code),
		captures: make(map[uuid.UUID]*captureRow),
	}}
}

func (m *Memory) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := m.st.clone()
	err := fn(ctx, &memTx{m: m})
	if err == nil && m.FailCommit != nil {
		err, m.FailCommit = m.FailCommit, nil
	}
	if err != nil {
		m.st = saved
		return err
	}
	m.Commits++
	return nil
}

func (m *Memory) CommandReads() shared.CommandReads {
	return &memReads{m: m}
}

// Seed stores copies of the given meetups and codes.
func (m *Memory) Seed(meetups []*meetup.Meetup, codes ...*verification.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mt := range meetups {
		m.st.meetups[mt.ID()] = cloneMeetup(mt)
	}
	for _, c := range codes {
		m.st.codes[c.MeetupID()] = append(m.st.codes[c.MeetupID()], cloneCode(c))
	}
}

func (m *Memory) Meetup(id uuid.UUID) *meetup.Meetup {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mt, ok := m.st.meetups[id]; ok {
		return cloneMeetup(mt)
	}
	return nil
}

func (m *Memory) Codes(meetupID uuid.UUID) []*verification.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneCodes(m.st.codes[meetupID])
}

func (m *Memory) CaptureRequest(transactionID uuid.UUID) (shared.CaptureRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.st.captures[transactionID]
	if !ok {
		return shared.CaptureRequest{}, false
	}
	return row.req, true
}

func (m *Memory) CaptureRequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.st.captures)
}

type memTx struct {
	m *Memory
}

func (t *memTx) Meetups() shared.MeetupRepository { return &memMeetups{st: &t.m.st} }
func (t *memTx) Codes() shared.CodeRepository { return &memCodes{st: &t.m.st} }
func (t *memTx) CaptureRequests() shared.CaptureRequestRepository { return &memCaptures{st: &t.m.st} }
func (t *memTx) DB() sqlc.DBTX { return nil }

type memMeetups struct {
	st *state
}

func (r *memMeetups) Create(_ context.Context, _ sqlc.DBTX, m *meetup.Meetup) error {
	if _, ok := r.st.meetups[m.ID()]; ok {
		return infra.WrapRepoErr("failed to create meetup", errUniqueViolation, infra.KindDuplicateKey)
	}
	if m.TransactionID() != nil {
		for _, other := range r.st.meetups {
			if other.TransactionID() != nil && *other.TransactionID() == *m.TransactionID() && other.Kind() == m.Kind() {
				return infra.WrapRepoErr("failed to create meetup", errUniqueViolation, infra.KindDuplicateKey)
			}
		}
	}
	r.st.meetups[m.ID()] = cloneMeetup(m)
	return nil
}

func (r *memMeetups) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*meetup.Meetup, error) {
	m, ok := r.st.meetups[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to lock meetup", pgx.ErrNoRows)
	}
	return cloneMeetup(m), nil
}

func (r *memMeetups) LockPaired(_ context.Context, _ sqlc.DBTX, transactionID uuid.UUID, kind meetup.Kind) (*meetup.Meetup, error) {
	for _, m := range r.st.meetups {
		if m.TransactionID() != nil && *m.TransactionID() == transactionID && m.Kind() == kind {
			return cloneMeetup(m), nil
		}
	}
	return nil, infra.WrapRepoErr("failed to lock paired meetup", pgx.ErrNoRows)
}

func (r *memMeetups) Save(_ context.Context, _ sqlc.DBTX, m *meetup.Meetup) error {
	if _, ok := r.st.meetups[m.ID()]; !ok {
		return infra.WrapRepoErr("meetup not found", nil, infra.KindNotFound)
	}
	r.st.meetups[m.ID()] = cloneMeetup(m)
	return nil
}

type memCodes struct {
	st *state
}

func (r *memCodes) ListByMeetup(_ context.Context, _ sqlc.DBTX, meetupID uuid.UUID) ([]*verification.Code, error) {
	return cloneCodes(r.st.codes[meetupID]), nil
}

func (r *memCodes) SupersedeOpen(_ context.Context, _ sqlc.DBTX, meetupID uuid.UUID, now time.Time) (int64, error) {
	var n int64
	for _, c := range r.st.codes[meetupID] {
		if c.IsOpen() {
			c.Supersede(now)
			n++
		}
	}
	return n, nil
}

// Insert enforces the one-open-code-per-meetup index.
func (r *memCodes) Insert(_ context.Context, _ sqlc.DBTX, c *verification.Code) error {
	for _, existing := range r.st.codes[c.MeetupID()] {
		if existing.IsOpen() {
			return infra.WrapRepoErr("failed to insert verification code", errUniqueViolation, infra.KindDuplicateKey)
		}
	}
	r.st.codes[c.MeetupID()] = append(r.st.codes[c.MeetupID()], cloneCode(c))
	return nil
}

func (r *memCodes) MarkConsumed(_ context.Context, _ sqlc.DBTX, c *verification.Code) (bool, error) {
	codes := r.st.codes[c.MeetupID()]
	for i, existing := range codes {
		if existing.ID() != c.ID() {
			continue
		}
		if existing.IsConsumed() {
			return false, nil
		}
		codes[i] = cloneCode(c)
		return true, nil
	}
	return false, nil
}

type memCaptures struct {
	st *state
}

func (r *memCaptures) Enqueue(_ context.Context, _ sqlc.DBTX, transactionID, meetupID uuid.UUID, now time.Time) (bool, error) {
	if _, ok := r.st.captures[transactionID]; ok {
		return false, nil
	}
	r.st.captures[transactionID] = &captureRow{req: shared.CaptureRequest{
		ID:            uuid.New(),
		TransactionID: transactionID,
		MeetupID:      meetupID,
		Status:        shared.CaptureQueued,
		RunAt:         now,
	}, updatedAt: now}
	return true, nil
}

func (r *memCaptures) ClaimDue(_ context.Context, _ sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]shared.CaptureRequest, error) {
	var due []*captureRow
	for _, row := range r.st.captures {
		if row.req.Status == shared.CaptureQueued && !row.req.RunAt.After(now) {
			due = append(due, row)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].req.RunAt.Before(due[j].req.RunAt) })
	if len(due) > int(limit) {
		due = due[:limit]
	}
	out := make([]shared.CaptureRequest, 0, len(due))
	for _, row := range due {
		row.req.Attempts++
		row.req.RunAt = leaseUntil
		row.updatedAt = now
		out = append(out, row.req)
	}
	return out, nil
}

func (r *memCaptures) find(id uuid.UUID) *captureRow {
	for _, row := range r.st.captures {
		if row.req.ID == id {
			return row
		}
	}
	return nil
}

func (r *memCaptures) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, now time.Time) error {
	if row := r.find(id); row != nil {
		row.req.Status = shared.CaptureSent
		row.req.LastError = nil
		row.sentAt = &now
		row.updatedAt = now
	}
	return nil
}

func (r *memCaptures) MarkRetry(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastErr string, runAt, now time.Time) error {
	if row := r.find(id); row != nil {
		row.req.LastError = &lastErr
		row.req.RunAt = runAt
		row.updatedAt = now
	}
	return nil
}

func (r *memCaptures) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error {
	if row := r.find(id); row != nil {
		row.req.Status = shared.CaptureFailed
		row.req.LastError = &lastErr
		row.updatedAt = now
	}
	return nil
}

// memReads runs outside Within, so it takes the store lock itself.
type memReads struct {
	m *Memory
}

func (r *memReads) guard() func() {
	r.m.mu.Lock()
	return r.m.mu.Unlock
}

func (r *memReads) MeetupByID(_ context.Context, id uuid.UUID) (*shared.MeetupSnapshot, error) {
	defer r.guard()()
	m, ok := r.m.st.meetups[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to get meetup", pgx.ErrNoRows)
	}
	s := snapshot(m)
	return &s, nil
}

func (r *memReads) MeetupsByTransaction(_ context.Context, transactionID uuid.UUID) ([]shared.MeetupSnapshot, error) {
	defer r.guard()()
	var out []shared.MeetupSnapshot
	for _, m := range r.m.st.meetups {
		if m.TransactionID() != nil && *m.TransactionID() == transactionID {
			out = append(out, snapshot(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out, nil
}

func (r *memReads) ExpirableMeetups(_ context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	defer r.guard()()
	var out []uuid.UUID
	for id, m := range r.m.st.meetups {
		if m.Status() != meetup.StatusCodeActive {
			continue
		}
		fresh := false
		for _, c := range r.m.st.codes[id] {
			if c.ExpiresAt().After(cutoff) {
				fresh = true
				break
			}
		}
		if !fresh {
			out = append(out, id)
		}
		if len(out) >= int(limit) {
			break
		}
	}
	return out, nil
}

func (r *memReads) AwaitingCapture(_ context.Context, limit int32) ([]shared.CaptureSnapshot, error) {
	defer r.guard()()
	var out []shared.CaptureSnapshot
	for _, row := range r.m.st.captures {
		m, ok := r.m.st.meetups[row.req.MeetupID]
		if !ok || m.Status() != meetup.StatusVerified || row.req.Status == shared.CaptureQueued {
			continue
		}
		out = append(out, shared.CaptureSnapshot{
			MeetupID:      m.ID(),
			TransactionID: row.req.TransactionID,
			Status:        row.req.Status,
			UpdatedAt:     row.updatedAt,
		})
		if len(out) >= int(limit) {
			break
		}
	}
	return out, nil
}

func snapshot(m *meetup.Meetup) shared.MeetupSnapshot {
	return shared.MeetupSnapshot{
		ID:             m.ID(),
		Kind:           m.Kind().String(),
		SellerID:       m.SellerID(),
		BuyerID:        m.BuyerID(),
		TransactionID:  m.TransactionID(),
		Status:         m.Status().String(),
		FailedAttempts: m.FailedAttempts(),
		UpdatedAt:      m.UpdatedAt(),
	}
}

func (s state) clone() state {
	out := state{
		meetups:  make(map[uuid.UUID]*meetup.Meetup, len(s.meetups)),
		codes:    make(map[uuid.UUID][]*verification.Code, len(s.codes)),
		captures: make(map[uuid.UUID]*captureRow, len(s.captures)),
	}
	for id, m := range s.meetups {
		out.meetups[id] = cloneMeetup(m)
	}
	for id, cs := range s.codes {
		out.codes[id] = cloneCodes(cs)
	}
	for id, row := range s.captures {
		cp := *row
		out.captures[id] = &cp
	}
	return out
}

func cloneMeetup(m *meetup.Meetup) *meetup.Meetup {
	return meetup.ReconstructMeetup(
		m.ID(), m.Kind(), m.SellerID(), m.BuyerID(), m.TransactionID(),
		m.Status(), m.FailedAttempts(), m.LastFailedAt(), m.CreatedAt(), m.UpdatedAt(),
	)
}

func cloneCode(c *verification.Code) *verification.Code {
	return verification.ReconstructCode(
		c.ID(), c.MeetupID(), c.Type(), c.Digest(), c.CreatedBy(),
		c.CreatedAt(), c.ExpiresAt(), c.ConsumedAt(), c.ConsumedBy(), c.SupersededAt(),
	)
}

func cloneCodes(cs []*verification.Code) []*verification.Code {
	out := make([]*verification.Code, len(cs))
	for i, c := range cs {
		out[i] = cloneCode(c)
	}
	return out
}
