package domain_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/aretw0/transducer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsUndefined(t *testing.T) {
	var v domain.Value
	assert.True(t, v.IsUndefined())
	assert.Equal(t, domain.KindUndefined, v.Kind())
	assert.True(t, v.Equal(domain.Undefined))
	assert.Equal(t, "undefined", v.String())
}

func TestValue_Accessors(t *testing.T) {
	f, err := domain.Scalar(2.5).Float()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	a, b, err := domain.PairOf(domain.Int(1), domain.Undefined).Pair()
	require.NoError(t, err)
	assert.Equal(t, domain.Int(1), a)
	assert.True(t, b.IsUndefined())

	_, err = domain.PairOf(domain.Int(1), domain.Int(2)).Float()
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)

	_, _, err = domain.Int(3).Pair()
	var shapeErr *domain.ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, domain.KindPair, shapeErr.Want)
	assert.Equal(t, domain.KindScalar, shapeErr.Got)
}

func TestValue_Equal(t *testing.T) {
	p := domain.PairOf(domain.Int(1), domain.PairOf(domain.Int(2), domain.Undefined))

	assert.True(t, p.Equal(domain.PairOf(domain.Int(1), domain.PairOf(domain.Int(2), domain.Undefined))))
	assert.False(t, p.Equal(domain.PairOf(domain.Int(1), domain.PairOf(domain.Int(2), domain.Int(0)))))
	assert.False(t, domain.Int(0).Equal(domain.Undefined))
	assert.False(t, domain.Int(1).Equal(domain.Int(2)))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "3", domain.Int(3).String())
	assert.Equal(t, "0.5", domain.Scalar(0.5).String())
	assert.Equal(t, "(1, (undefined, -2))", domain.PairOf(domain.Int(1), domain.PairOf(domain.Undefined, domain.Int(-2))).String())
}

func TestValue_JSON(t *testing.T) {
	v := domain.PairOf(domain.Int(1), domain.PairOf(domain.Undefined, domain.Scalar(2.5)))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, [null, 2.5]]`, string(data))

	var back domain.Value
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, v.Equal(back))

	var bad domain.Value
	err = json.Unmarshal([]byte(`[1, 2, 3]`), &bad)
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)
}

func TestValue_JSONNonFinite(t *testing.T) {
	v := domain.PairOf(domain.Scalar(math.Inf(1)), domain.PairOf(domain.Scalar(math.Inf(-1)), domain.Scalar(math.NaN())))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `["+Inf", ["-Inf", "NaN"]]`, string(data))

	var back domain.Value
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, v.Equal(back), "got %s", back)

	nan, err := domain.ParseValue("NaN")
	require.NoError(t, err)
	assert.True(t, nan.Equal(domain.Scalar(math.NaN())))
	assert.False(t, nan.Equal(domain.Int(0)))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Value
	}{
		{"undefined", domain.Undefined},
		{"null", domain.Undefined},
		{"42", domain.Int(42)},
		{" -1.5 ", domain.Scalar(-1.5)},
		{"(1, 2)", domain.PairOf(domain.Int(1), domain.Int(2))},
		{"[1,[2, undefined]]", domain.PairOf(domain.Int(1), domain.PairOf(domain.Int(2), domain.Undefined))},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseValue(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"", "abc", "(1, 2", "(1 2)", "1 2"} {
		_, err := domain.ParseValue(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFromAny(t *testing.T) {
	v, err := domain.FromAny([]any{1, []any{nil, 2.5}})
	require.NoError(t, err)
	assert.Equal(t, "(1, (undefined, 2.5))", v.String())

	v, err = domain.FromAny(int64(7))
	require.NoError(t, err)
	assert.Equal(t, domain.Int(7), v)

	v, err = domain.FromAny(json.Number("3"))
	require.NoError(t, err)
	assert.Equal(t, domain.Int(3), v)

	_, err = domain.FromAny(map[string]any{"a": 1})
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)
}
