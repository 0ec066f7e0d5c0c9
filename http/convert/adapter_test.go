package convert_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/convey/http/convert"
	"github.com/xy-planning-network/convey/http/fail"
)

func TestOpt(t *testing.T) {
	t.Run("None-Is-404", func(t *testing.T) {
		// Act
		re := await(t, convert.None[convert.Text]())

		// Assert
		require.Equal(t, http.StatusNotFound, re.Status())
		require.Empty(t, re.Body())
	})

	t.Run("Some-Delegates", func(t *testing.T) {
		// Act
		re := await(t, convert.Some(convert.Text("some")))

		// Assert
		require.Equal(t, http.StatusOK, re.Status())
		require.Equal(t, []byte("some"), re.Body())
		require.Equal(t, plainTextType, re.Headers().Get("Content-Type"))
	})

	t.Run("Some-Passes-Failure-Through", func(t *testing.T) {
		// Arrange
		inner := convert.NewFault(errors.New("test"), http.StatusBadRequest)

		// Act
		err := awaitErr(t, convert.Some(inner))

		// Assert
		require.Equal(t, http.StatusBadRequest, fail.Normalize(err).Status())
	})
}

func TestAttempt(t *testing.T) {
	t.Run("OK-Delegates", func(t *testing.T) {
		// Act
		re := await(t, convert.OK(convert.Text("test")))

		// Assert
		require.Equal(t, http.StatusOK, re.Status())
		require.Equal(t, []byte("test"), re.Body())
	})

	t.Run("Errored-Short-Circuits", func(t *testing.T) {
		// Arrange
		tagged := convert.NewFault(errors.New("bad input"), http.StatusBadRequest)

		// Act
		err := awaitErr(t, convert.Errored[convert.Text](tagged))

		// Assert
		var f *fail.Failure
		require.ErrorAs(t, err, &f)
		require.Equal(t, http.StatusBadRequest, f.Status())
		require.ErrorIs(t, err, tagged)
	})

	t.Run("OK-Normalizes-Inner-Failure", func(t *testing.T) {
		// Arrange
		inner := convert.Fixed{} // resolves to a bare config error

		// Act
		err := awaitErr(t, convert.OK(inner))

		// Assert
		var f *fail.Failure
		require.ErrorAs(t, err, &f)
		require.Equal(t, http.StatusInternalServerError, f.Status())
	})

	t.Run("Plain-Error-Is-500", func(t *testing.T) {
		// Act
		err := awaitErr(t, convert.Errored[convert.Text](errors.New("test")))

		// Assert
		var f *fail.Failure
		require.ErrorAs(t, err, &f)
		require.Equal(t, http.StatusInternalServerError, f.Status())
	})
}

func TestFault(t *testing.T) {
	// Arrange
	tagged := convert.NewFault(errors.New("bad input"), http.StatusBadRequest)

	// Act
	err := awaitErr(t, tagged)

	// Assert
	var f *fail.Failure
	require.ErrorAs(t, err, &f)
	require.Equal(t, http.StatusBadRequest, f.Status())
	require.Equal(t, "bad input", f.Error())

	t.Run("Zero-Code-Is-500", func(t *testing.T) {
		require.Equal(t, http.StatusInternalServerError, convert.Fault{}.Status())
		require.Equal(t, http.StatusText(http.StatusInternalServerError), convert.Fault{}.Error())
	})
}
