package resp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/convey"
	"github.com/xy-planning-network/convey/http/resp"
)

func TestNewField(t *testing.T) {
	tcs := []struct {
		name        string
		header      string
		value       string
		expected    resp.Field
		expectedErr error
	}{
		{"Simple", "content-type", "json", resp.Field{Name: "Content-Type", Value: "json"}, nil},
		{"Token-Chars", "x-my_custom.header", "1.2.3", resp.Field{Name: "X-My_custom.header", Value: "1.2.3"}, nil},
		{"Empty-Value", "X-Empty", "", resp.Field{Name: "X-Empty", Value: ""}, nil},
		{"Empty-Name", "", "val", resp.Field{}, convey.ErrNotValid},
		{"Name-With-Space", "not a header", "val", resp.Field{}, convey.ErrNotValid},
		{"Name-With-Colon", "x-header:", "val", resp.Field{}, convey.ErrNotValid},
		{"Value-With-Newline", "X-Bad", "evil\r\ninjection", resp.Field{}, convey.ErrNotValid},
		{"Value-With-NUL", "X-Bad", "evil\x00", resp.Field{}, convey.ErrNotValid},
		{"Value-With-Tab", "X-Ok", "a\tb", resp.Field{Name: "X-Ok", Value: "a\tb"}, nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := resp.NewField(tc.header, tc.value)

			// Assert
			require.ErrorIs(t, err, tc.expectedErr)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestHeaders(t *testing.T) {
	t.Run("Add-Accumulates", func(t *testing.T) {
		h := make(resp.Headers)
		h.Add("x-many", "1")
		h.Add("X-Many", "2")

		require.Equal(t, []string{"1", "2"}, h.Values("x-many"))
		require.Equal(t, "1", h.Get("X-MANY"))
	})

	t.Run("Set-Replaces", func(t *testing.T) {
		h := make(resp.Headers)
		h.Add("x-once", "1")
		h.Set("X-Once", "2")

		require.Equal(t, []string{"2"}, h.Values("x-once"))
	})

	t.Run("Get-Missing", func(t *testing.T) {
		h := make(resp.Headers)
		require.Zero(t, h.Get("nope"))
	})

	t.Run("Zero-Response-Allocates", func(t *testing.T) {
		var re resp.Response
		re.Headers().Set("x-late", "1")

		require.Equal(t, "1", re.Headers().Get("X-Late"))
	})

	t.Run("Clone-Is-Independent", func(t *testing.T) {
		h := make(resp.Headers)
		h.Add("x-shared", "1")

		clone := h.Clone()
		clone.Add("x-shared", "2")

		require.Equal(t, []string{"1"}, h.Values("x-shared"))
		require.Equal(t, []string{"1", "2"}, clone.Values("x-shared"))
	})
}

func TestNewFieldLongToken(t *testing.T) {
	// Arrange
	name := strings.Repeat("x", 128)

	// Act
	f, err := resp.NewField(name, "val")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "val", f.Value)
}
