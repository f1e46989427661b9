package curry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default flags", func(t *testing.T) {
		t.Parallel()

		s, err := New()
		require.NoError(t, err)
		assert.True(t, s.lazy)
		assert.False(t, s.allowOverride)
		assert.False(t, s.useDefaults)
	})

	t.Run("options flip the defaults", func(t *testing.T) {
		t.Parallel()

		s, err := New(WithEager(), WithOverride(), WithDefaults())
		require.NoError(t, err)
		assert.False(t, s.lazy)
		assert.True(t, s.allowOverride)
		assert.True(t, s.useDefaults)
	})

	t.Run("nil option", func(t *testing.T) {
		t.Parallel()

		_, err := New(WithEager(), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfiguration))
	})
}

func TestSpecialize_NotCallable(t *testing.T) {
	t.Parallel()

	s, err := New()
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   any
	}{
		{"nil", nil},
		{"int", 42},
		{"string", "f"},
		{"nil func value", (func(int))(nil)},
		{"struct", struct{}{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := s.Specialize(tt.fn, Signature{Name: "f", Params: []string{"a"}})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotCallable))
			assert.EqualError(t, err, "First argument must be a function or a bound method.")
		})
	}
}

func TestSpecialize_Variadic(t *testing.T) {
	t.Parallel()

	s, err := New()
	require.NoError(t, err)

	_, err = s.Specialize(
		func(args ...int) {},
		Signature{Name: "d", Params: []string{"args"}},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVariadic))
	assert.EqualError(t, err, "Currying variadic function d() is ambiguous.")
}

func TestSpecialize_DeclarationErrors(t *testing.T) {
	t.Parallel()

	f3 := func(a, b, c int) int { return a + b + c }

	tests := []struct {
		name string
		fn   any
		sig  Signature
	}{
		{
			name: "too few names",
			fn:   f3,
			sig:  Signature{Name: "f", Params: []string{"a", "b"}},
		},
		{
			name: "too many names",
			fn:   f3,
			sig:  Signature{Name: "f", Params: []string{"a", "b", "c", "d"}},
		},
		{
			name: "duplicate name",
			fn:   f3,
			sig:  Signature{Name: "f", Params: []string{"a", "b", "a"}},
		},
		{
			name: "empty name",
			fn:   f3,
			sig:  Signature{Name: "f", Params: []string{"a", "", "c"}},
		},
		{
			name: "default for undeclared parameter",
			fn:   f3,
			sig: Signature{
				Name:     "f",
				Params:   []string{"a", "b", "c"},
				Defaults: map[string]any{"q": 1},
			},
		},
		{
			name: "defaults not a trailing suffix",
			fn:   f3,
			sig: Signature{
				Name:     "f",
				Params:   []string{"a", "b", "c"},
				Defaults: map[string]any{"a": 1},
			},
		},
		{
			name: "receiver without parameters",
			fn:   func() {},
			sig:  Signature{Name: "f", Receiver: true},
		},
		{
			name: "receiver carries a default",
			fn:   f3,
			sig: Signature{
				Name:     "f",
				Params:   []string{"self", "a", "b", "c"},
				Defaults: map[string]any{"self": nil, "a": 1, "b": 2, "c": 3},
				Receiver: true,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := New()
			require.NoError(t, err)
			_, err = s.Specialize(tt.fn, tt.sig)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration), "got %v", err)
		})
	}
}

func TestSpecialize_TrailingDefaultsAccepted(t *testing.T) {
	t.Parallel()

	s, err := New()
	require.NoError(t, err)
	n, err := s.Specialize(
		func(a, b, c int) int { return a + b + c },
		Signature{
			Name:     "f",
			Params:   []string{"a", "b", "c"},
			Defaults: map[string]any{"b": 2, "c": 3},
		},
	)
	require.NoError(t, err)

	res, err := advance(t, n, 1).Call()
	require.NoError(t, err)
	assert.Equal(t, 6, res)
}

func TestSpecialize_NameRecovery(t *testing.T) {
	t.Parallel()

	s, err := New()
	require.NoError(t, err)

	t.Run("package-level function", func(t *testing.T) {
		t.Parallel()

		n, err := s.Specialize(seven, Signature{
			Params: []string{"a", "b", "c", "d", "x", "y", "z"},
		})
		require.NoError(t, err)
		assert.Equal(t, "seven", n.Name())
	})

	t.Run("method value", func(t *testing.T) {
		t.Parallel()

		acc := &accumulator{}
		n, err := s.Specialize(acc.AddProduct, Signature{Params: []string{"x", "y"}})
		require.NoError(t, err)
		assert.Equal(t, "AddProduct", n.Name())
	})

	t.Run("explicit name wins", func(t *testing.T) {
		t.Parallel()

		n, err := s.Specialize(seven, Signature{
			Name:   "f",
			Params: []string{"a", "b", "c", "d", "x", "y", "z"},
		})
		require.NoError(t, err)
		assert.Equal(t, "f", n.Name())
	})

	t.Run("closures get a usable name", func(t *testing.T) {
		t.Parallel()

		n, err := s.Specialize(func(a int) int { return a }, Signature{Params: []string{"a"}})
		require.NoError(t, err)
		assert.NotEmpty(t, n.Name())
	})
}

func TestSpecializer_Reusable(t *testing.T) {
	t.Parallel()

	// One Specializer wraps many callables without shared state.
	s, err := New(WithDefaults())
	require.NoError(t, err)

	n1, err := s.Specialize(seven, sevenSig())
	require.NoError(t, err)
	n2, err := s.Specialize(
		func(a, b int) int { return a * b },
		Signature{Name: "mul", Params: []string{"a", "b"}, Defaults: map[string]any{"b": 10}},
	)
	require.NoError(t, err)

	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, force(t, advance(t, n1, 1, 2, 3, 4)))
	assert.Equal(t, 30, force(t, advance(t, n2, 3)))
}
