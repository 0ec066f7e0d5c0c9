package convert_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/convey"
	"github.com/xy-planning-network/convey/http/convert"
	"github.com/xy-planning-network/convey/http/resp"
)

func TestCustomStatus(t *testing.T) {
	// Act
	re := await(t, convert.With(convert.Text("test")).Status(http.StatusBadRequest))

	// Assert
	require.Equal(t, http.StatusBadRequest, re.Status())
	require.Equal(t, []byte("test"), re.Body())
}

func TestCustomStatusLastWriteWins(t *testing.T) {
	// Act
	re := await(t, convert.With(convert.Text("test")).
		Status(http.StatusAccepted).
		Status(http.StatusBadRequest))

	// Assert
	require.Equal(t, http.StatusBadRequest, re.Status())
}

func TestCustomHeader(t *testing.T) {
	t.Run("Overrides-Same-Name", func(t *testing.T) {
		// Act
		re := await(t, convert.With(convert.Text("test")).Header("content-type", "json"))

		// Assert
		require.Equal(t, http.StatusOK, re.Status())
		require.Equal(t, []byte("test"), re.Body())
		require.Equal(t, "json", re.Headers().Get("Content-Type"))
	})

	t.Run("Keeps-Other-Names", func(t *testing.T) {
		// Act
		re := await(t, convert.With(convert.Text("test")).Header("x-version", "1.2.3"))

		// Assert
		require.Equal(t, "1.2.3", re.Headers().Get("X-Version"))
		require.Equal(t, plainTextType, re.Headers().Get("Content-Type"))
	})

	t.Run("Entries-Accumulate-Each-Applied", func(t *testing.T) {
		// Act
		re := await(t, convert.With(convert.Text("test")).
			Header("x-version", "1.2.3").
			Header("x-request-stage", "done").
			Header("x-version", "4.5.6"))

		// Assert
		// NOTE: both x-version entries applied in order, each with
		// set-per-name semantics, so the later one is in effect.
		require.Equal(t, []string{"4.5.6"}, re.Headers().Values("X-Version"))
		require.Equal(t, "done", re.Headers().Get("X-Request-Stage"))
	})
}

func TestCustomHeaderOnBareResponse(t *testing.T) {
	// Arrange: a zero Response starts without a header map.
	inner := convert.Fixed{Response: &resp.Response{}}

	// Act
	re := await(t, convert.With(inner).Header("x-version", "1.2.3"))

	// Assert
	require.Equal(t, "1.2.3", re.Headers().Get("X-Version"))
}

func TestCustomMalformedHeaderSurfaces(t *testing.T) {
	// Arrange
	c := convert.With(convert.Text("test")).
		Header("not a header", "val").
		Header("x-fine", "val")

	// Act
	err := awaitErr(t, c)

	// Assert
	require.ErrorIs(t, err, convey.ErrNotValid)
}

func TestCustomFailurePropagatesUndecorated(t *testing.T) {
	// Arrange
	inner := convert.NewFault(errors.New("test"), http.StatusBadRequest)

	// Act
	err := awaitErr(t, convert.With(inner).
		Status(http.StatusOK).
		Header("x-version", "1.2.3"))

	// Assert
	require.ErrorIs(t, err, inner)
}

func TestCustomNests(t *testing.T) {
	// Arrange: decorators wrapping decorators compose normally.
	wrapped := convert.With(convert.With(convert.Text("test")).Status(http.StatusAccepted)).
		Header("x-version", "1.2.3")

	// Act
	re := await(t, wrapped)

	// Assert
	require.Equal(t, http.StatusAccepted, re.Status())
	require.Equal(t, "1.2.3", re.Headers().Get("X-Version"))
}

func TestWithStatus(t *testing.T) {
	t.Run("Tuple", func(t *testing.T) {
		// Act
		re := await(t, convert.WithStatus(convert.Text("test"), http.StatusBadRequest))

		// Assert
		require.Equal(t, http.StatusBadRequest, re.Status())
		require.Equal(t, []byte("test"), re.Body())
	})

	t.Run("Tuple-Then-Header", func(t *testing.T) {
		// Act
		re := await(t, convert.WithStatus(convert.Text("test"), http.StatusBadRequest).
			Header("content-type", "json"))

		// Assert
		require.Equal(t, http.StatusBadRequest, re.Status())
		require.Equal(t, []byte("test"), re.Body())
		require.Equal(t, "json", re.Headers().Get("Content-Type"))
	})
}

// suspended is a Responder whose outcome resolves only when its gate
// closes, for exercising decorators over genuinely deferred work.
type suspended struct {
	gate <-chan struct{}
	re   *resp.Response
	err  error
}

func (s suspended) Respond(_ *http.Request) convert.Outcome {
	return convert.OutcomeFunc(func(ctx context.Context) (*resp.Response, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-s.gate:
			return s.re, s.err
		}
	})
}

func TestCustomAppliesAfterInnerResolves(t *testing.T) {
	// Arrange
	gate := make(chan struct{})
	inner := suspended{gate: gate, re: resp.Build(http.StatusOK).BodyString("test").Finish()}
	outcome := convert.With(inner).Status(http.StatusBadRequest).
		Respond(httptest.NewRequest(http.MethodGet, "http://example.com", nil))

	done := make(chan struct{})
	var re *resp.Response
	var err error
	go func() {
		defer close(done)
		re, err = outcome.Await(context.Background())
	}()

	// Assert: nothing resolves until the inner outcome does.
	select {
	case <-done:
		t.Fatal("decorated outcome resolved before its inner outcome")
	case <-time.After(10 * time.Millisecond):
	}

	// Act
	close(gate)
	<-done

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusBadRequest, re.Status())
	require.Equal(t, []byte("test"), re.Body())
}

func TestCustomCancellation(t *testing.T) {
	// Arrange
	gate := make(chan struct{}) // never closes
	inner := suspended{gate: gate}
	outcome := convert.With(inner).Status(http.StatusBadRequest).
		Respond(httptest.NewRequest(http.MethodGet, "http://example.com", nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	re, err := outcome.Await(ctx)

	// Assert
	require.Nil(t, re)
	require.ErrorIs(t, err, context.Canceled)
}
