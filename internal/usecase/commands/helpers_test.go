//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/domain/verification"
	paymentinfra "meetup-capture/internal/infra/payment"
	"meetup-capture/internal/pkg/clock"
	"meetup-capture/internal/usecase/commands"
	"meetup-capture/tests/common/builder"
	"meetup-capture/tests/common/uowtest"

	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// sequenceGenerator hands out the queued values in order, then repeats the last one.
type sequenceGenerator struct {
	mu     sync.Mutex
	values []string
}

func (g *sequenceGenerator) Generate(verification.CodeType) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	v := g.values[0]
	if len(g.values) > 1 {
		g.values = g.values[1:]
	}
	return v, nil
}

type countingNotifier struct {
	mu sync.Mutex
	n  int
}

func (c *countingNotifier) Notify() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

func (c *countingNotifier) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

type env struct {
	uow          *uowtest.Memory
	clock        *clock.MockClock
	gateway      *paymentinfra.StubGateway
	notifier     *countingNotifier
	generator    *sequenceGenerator
	verification commands.VerificationCommands
	meetups      commands.MeetupCommands
	maintenance  commands.MaintenanceCommands
}

func newEnv(t *testing.T, codeValues ...string) *env {
	t.Helper()
	if len(codeValues) == 0 {
		codeValues = []string{"4821"}
	}
	e := &env{
		uow:       uowtest.New(),
		clock:     clock.NewMockClock(testStart),
		gateway:   paymentinfra.NewStubGateway(),
		notifier:  &countingNotifier{},
		generator: &sequenceGenerator{values: codeValues},
	}
	e.verification = commands.NewVerificationUseCase(e.uow, e.clock, e.generator, builder.FakeMatcher{}, e.gateway, e.notifier,
		commands.VerificationPolicy{
			CodeTTL:  10 * time.Minute,
			Attempts: meetup.AttemptLimit{Max: 5, Window: 15 * time.Minute},
		})
	e.meetups = commands.NewMeetupUseCase(e.uow, e.clock)
	e.maintenance = commands.NewMaintenanceUseCase(e.uow, e.clock, e.gateway, e.meetups,
		commands.MaintenancePolicy{
			BatchSize:          10,
			MaxCaptureAttempts: 3,
			ExpiryGrace:        time.Hour,
			ClaimLease:         time.Minute,
		})
	return e
}

func (e *env) seed(mbs ...*builder.MeetupBuilder) {
	ms := make([]*meetup.Meetup, 0, len(mbs))
	for _, mb := range mbs {
		ms = append(ms, mb.BuildDomain())
	}
	e.uow.Seed(ms)
}

// authorized registers the builder's transaction with the stub gateway.
func (e *env) authorized(mb *builder.MeetupBuilder) {
	e.gateway.SetStatus(*mb.TransactionID, payment.StatusAuthorized)
}

func (e *env) generate(t *testing.T, mb *builder.MeetupBuilder) *commands.GeneratedCode {
	t.Helper()
	holder := mb.SellerID
	if mb.Kind == "return" {
		holder = mb.BuyerID
	}
	res, err := e.verification.GenerateCode(context.Background(), commands.GenerateCodeRequest{
		MeetupID:    mb.ID,
		CodeType:    "pin",
		RequestedBy: holder,
	})
	require.NoError(t, err)
	return res
}
