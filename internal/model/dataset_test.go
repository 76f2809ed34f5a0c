package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset_DuplicateColumn(t *testing.T) {
	_, err := NewDataset("a", "b", "a")
	require.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestDataset_AppendRow(t *testing.T) {
	d := MustDataset("a", "b")

	require.NoError(t, d.AppendRow(String("x"), Number(1)))
	err := d.AppendRow(String("x"))
	require.ErrorIs(t, err, ErrRowShape)

	assert.Equal(t, 1, d.Len())
	assert.Equal(t, "x", d.Get(0, "a").String())
	assert.True(t, d.Get(0, "nope").IsMissing())
}

func TestDataset_AppendRecord(t *testing.T) {
	d := MustDataset("a", "b")

	require.NoError(t, d.AppendRecord(map[string]Value{"b": Number(2)}))
	assert.True(t, d.Get(0, "a").IsMissing())
	assert.Equal(t, "2", d.Get(0, "b").String())

	err := d.AppendRecord(map[string]Value{"c": Number(2)})
	require.ErrorIs(t, err, ErrRowShape)
}

func TestDataset_Require(t *testing.T) {
	d := MustDataset("a", "b")

	require.NoError(t, d.Require("a", "b"))
	err := d.Require("a", "c", "d")
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "c, d")
}

func TestDataset_WithColumnDoesNotMutateReceiver(t *testing.T) {
	d := MustDataset("a")
	require.NoError(t, d.AppendRow(Number(1)))
	require.NoError(t, d.AppendRow(Number(2)))

	added, err := d.WithColumn("b", []Value{Bool(true), Bool(false)})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, d.Columns())
	assert.Equal(t, []string{"a", "b"}, added.Columns())

	replaced, err := added.WithColumn("a", []Value{Number(9), Number(8)})
	require.NoError(t, err)
	assert.Equal(t, "9", replaced.Get(0, "a").String())
	assert.Equal(t, "1", added.Get(0, "a").String())

	_, err = d.WithColumn("c", []Value{Number(1)})
	require.ErrorIs(t, err, ErrRowShape)
}

func TestDataset_CloneIsDeep(t *testing.T) {
	d := MustDataset("a")
	require.NoError(t, d.AppendRow(String("orig")))

	c := d.Clone()
	c.Set(0, 0, String("changed"))

	assert.Equal(t, "orig", d.At(0, 0).String())
	assert.Equal(t, "changed", c.At(0, 0).String())
}

func TestDataset_SelectAndFilter(t *testing.T) {
	d := MustDataset("a", "b")
	for i := 0; i < 4; i++ {
		require.NoError(t, d.AppendRow(Number(float64(i)), String("x")))
	}

	sel, err := d.Select("b", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, sel.Columns())
	assert.Equal(t, "3", sel.Get(3, "a").String())

	even := d.Filter(func(r Row) bool {
		f, _ := r.Get("a").Float()
		return int(f)%2 == 0
	})
	assert.Equal(t, 2, even.Len())
	assert.Equal(t, "2", even.Get(1, "a").String())
}

func TestValue_MissingAndEquality(t *testing.T) {
	assert.True(t, Missing().IsMissing())
	assert.True(t, Number(math.NaN()).IsMissing())
	assert.False(t, Number(math.Inf(1)).IsMissing())
	assert.False(t, String("").IsMissing())

	assert.True(t, Missing().Equal(Number(math.NaN())))
	assert.True(t, Number(0).Equal(Number(math.Copysign(0, -1))))
	assert.False(t, Number(1).Equal(String("1")))
	assert.False(t, Bool(true).Equal(Number(1)))

	assert.Equal(t, Missing().Key(), Number(math.NaN()).Key())
	assert.NotEqual(t, Number(1).Key(), String("1").Key())
	assert.Equal(t, Number(0).Key(), Number(math.Copysign(0, -1)).Key())
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		value Value
	}{
		{name: "missing", value: Missing(), want: ""},
		{name: "integral number", value: Number(5), want: "5"},
		{name: "fractional number", value: Number(2.5), want: "2.5"},
		{name: "infinity", value: Number(math.Inf(1)), want: "inf"},
		{name: "bool", value: Bool(false), want: "false"},
		{name: "valid verdict", value: VerdictValue(VerdictValid), want: "true"},
		{name: "cant check verdict", value: VerdictValue(VerdictCantCheck), want: "CANT_CHECK"},
		{name: "missing verdict", value: VerdictValue(VerdictMissing), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestParseVerdict(t *testing.T) {
	for _, v := range []Verdict{VerdictValid, VerdictInvalid, VerdictCantCheck, VerdictMissing} {
		got, ok := ParseVerdict(v.String())
		require.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := ParseVerdict("maybe")
	assert.False(t, ok)
}

func TestRow_Key(t *testing.T) {
	d := MustDataset("a", "b")
	require.NoError(t, d.AppendRow(String("x\x1f1y"), String("z")))
	require.NoError(t, d.AppendRow(String("x"), String("y\x1f1z")))
	require.NoError(t, d.AppendRow(String("x\x1f1y"), String("z")))
	require.NoError(t, d.AppendRow(Missing(), Number(math.NaN())))
	require.NoError(t, d.AppendRow(Number(math.NaN()), Missing()))

	cols := []int{0, 1}
	assert.NotEqual(t, d.Row(0).Key(cols), d.Row(1).Key(cols))
	assert.Equal(t, d.Row(0).Key(cols), d.Row(2).Key(cols))
	assert.Equal(t, d.Row(3).Key(cols), d.Row(4).Key(cols), "missing and NaN compare equal")
}
