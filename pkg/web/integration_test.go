package web_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whalekit/strategist/pkg/eventbus"
	"github.com/whalekit/strategist/pkg/events"
	"github.com/whalekit/strategist/pkg/generation"
	"github.com/whalekit/strategist/pkg/models"
	"github.com/whalekit/strategist/pkg/session"
	"github.com/whalekit/strategist/pkg/web"
	"github.com/whalekit/strategist/pkg/wizard"
)

// eventRecorder collects decoded events so assertions can run after the HTTP
// calls complete.
type eventRecorder struct {
	mu    sync.Mutex
	types []events.EventType
}

func (r *eventRecorder) record(eventType events.EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types = append(r.types, eventType)
}

func (r *eventRecorder) snapshot() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]events.EventType(nil), r.types...)
}

func (r *eventRecorder) waitFor(t *testing.T, eventType events.EventType) {
	t.Helper()

	deadline := time.After(2 * time.Second)

	for {
		for _, got := range r.snapshot() {
			if got == eventType {
				return
			}
		}

		select {
		case <-deadline:
			t.Fatalf("timed out waiting for event %s, got %v", eventType, r.snapshot())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// The full wizard walk over HTTP with a live in-process event bus: every
// state transition surfaces on the feed observers subscribe to.
func TestIntegration_WizardWalkPublishesEvents(t *testing.T) {
	t.Parallel()

	bus := eventbus.NewTestEventBus(watermill.NopLogger{})
	t.Cleanup(func() {
		require.NoError(t, bus.Close())
	})

	recorder := &eventRecorder{}

	for _, eventType := range []events.EventType{
		events.SessionCreatedEvent,
		events.StepChangedEvent,
		events.ScenarioSelectedEvent,
		events.BusinessAnalyzedEvent,
		events.ContentGeneratedEvent,
		events.ContentConfirmedEvent,
		events.SegmentsUpdatedEvent,
		events.SessionResetEvent,
	} {
		err := bus.Handle(eventType, func(eventType events.EventType) eventbus.EventHandler {
			return func(ctx context.Context, event any) error {
				recorder.record(eventType)

				return nil
			}
		}(eventType))
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, bus.Subscribe(ctx))

	generator := generation.NewSimulator(
		generation.WithLatency(0),
		generation.WithFailureRate(0),
		generation.WithSeed(42),
	)
	wizardService := wizard.NewService(session.NewManager(), generator, bus, slog.Default())

	app := fiber.New()
	web.NewAPIHandlers(wizardService, validator.New(validator.WithRequiredStructEnabled())).RegisterRoutes(app)

	snap := createSession(t, app)
	base := "/sessions/" + snap.ID

	recorder.waitFor(t, events.SessionCreatedEvent)

	resp, _ := doJSON(t, app, http.MethodPost, base+"/scenario", web.SelectScenarioRequest{ScenarioID: "nurture"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recorder.waitFor(t, events.ScenarioSelectedEvent)
	recorder.waitFor(t, events.StepChangedEvent)

	resp, _ = doJSON(t, app, http.MethodPost, base+"/business/analyze",
		web.AnalyzeBusinessRequest{Description: "在线教育课程"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recorder.waitFor(t, events.BusinessAnalyzedEvent)

	resp, _ = doJSON(t, app, http.MethodPost, base+"/contents/generate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recorder.waitFor(t, events.ContentGeneratedEvent)

	resp, _ = doJSON(t, app, http.MethodPost, base+"/contents/confirm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recorder.waitFor(t, events.ContentConfirmedEvent)

	resp, _ = doJSON(t, app, http.MethodPost, base+"/segments", web.ApplySegmentRequest{OptionID: "new"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recorder.waitFor(t, events.SegmentsUpdatedEvent)

	resp, _ = doJSON(t, app, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recorder.waitFor(t, events.SessionResetEvent)
}

// A concurrent pair of generate requests against the same session: exactly
// one side wins the in-flight slot, the other gets 409, and the store ends
// in a consistent renumbered state.
func TestIntegration_SingleInFlightGeneration(t *testing.T) {
	t.Parallel()

	generator := generation.NewSimulator(
		generation.WithLatency(50*time.Millisecond),
		generation.WithFailureRate(0),
		generation.WithSeed(7),
	)
	wizardService := wizard.NewService(session.NewManager(), generator, nil, slog.Default())

	app := fiber.New()
	web.NewAPIHandlers(wizardService, validator.New(validator.WithRequiredStructEnabled())).RegisterRoutes(app)

	snap := createSession(t, app)
	base := "/sessions/" + snap.ID

	resp, _ := doJSON(t, app, http.MethodPost, base+"/scenario", web.SelectScenarioRequest{ScenarioID: "invite"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	statuses := make(chan int, 2)

	var wg sync.WaitGroup

	for range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodPost, base+"/contents/generate", nil)

			resp, err := app.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
			if err != nil {
				statuses <- 0

				return
			}

			_ = resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}

	wg.Wait()
	close(statuses)

	counts := map[int]int{}
	for status := range statuses {
		counts[status]++
	}

	assert.Equal(t, 1, counts[http.StatusOK])
	assert.Equal(t, 1, counts[http.StatusConflict])

	final, err := wizardService.GetSession(snap.ID)
	require.NoError(t, err)
	require.NotEmpty(t, final.ContentSequences)
	assert.False(t, final.IsLoading)

	for i, item := range final.ContentSequences {
		assert.Equal(t, i+1, item.Days)
		assert.Equal(t, models.ChannelPrivate, item.Type)
	}
}
