package value

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type failure int

const (
	notFound failure = iota + 1
	unauthorized
)

var ErrTest = errors.New("unit test error")

func TestResult(t *testing.T) {
	require := require.New(t)

	r := FromTuple(1, nil)
	require.True(r.IsOk())
	v, err := Unpack(r)
	require.Equal(1, v)
	require.NoError(err)

	r = Ok[error](2)
	require.False(r.IsError())
	require.Equal("Ok(2)", r.String())

	r = Error[int](ErrTest)
	require.True(r.IsError())
	v, err = Unpack(r)
	require.Equal(0, v)
	require.ErrorIs(err, ErrTest)
	require.Equal("Error(unit test error)", r.String())

	r = FromTuple(3, ErrTest)
	require.True(r.IsError())

	var zero Result[failure, int]
	require.True(zero.IsError())
}

func TestFromTupleMatchesNamedConstructors(t *testing.T) {
	require := require.New(t)

	opts := cmp.Options{
		cmp.AllowUnexported(Result[error, string]{}),
		cmp.Comparer(func(a, b error) bool { return a == b }),
	}

	want, got := Ok[error]("done"), FromTuple("done", nil)
	require.True(cmp.Equal(want, got, opts), cmp.Diff(want, got, opts))

	want, got = Error[string](ErrTest), FromTuple("", ErrTest)
	require.True(cmp.Equal(want, got, opts), cmp.Diff(want, got, opts))
}

func TestWhenIdentity(t *testing.T) {
	require := require.New(t)

	for _, v := range []int{-1, 0, 42} {
		got := Ok[failure](v).When(
			func(x int) int { return x },
			func(failure) int {
				t.Fatal("error handler called on ok result")
				return 0
			},
		)
		require.Equal(v, got)
	}
}

func TestWhen(t *testing.T) {
	require := require.New(t)

	double := func(x int) int { return x * 2 }
	fallback := func(failure) int { return -1 }

	require.Equal(10, Ok[failure](5).When(double, fallback))
	require.Equal(-1, Error[int](notFound).When(double, fallback))
}

func TestExactlyOneHandlerRuns(t *testing.T) {
	require := require.New(t)

	for _, r := range []Result[failure, int]{Ok[failure](7), Error[int](notFound)} {
		okCnt, errCnt := 0, 0
		r.When(
			func(x int) int { okCnt++; return x },
			func(failure) int { errCnt++; return 0 },
		)
		require.Equal(1, okCnt+errCnt)
		require.Equal(r.IsOk(), okCnt == 1)
	}
}

func TestInspect(t *testing.T) {
	require := require.New(t)

	var seen int
	got := Ok[failure](5).Inspect(
		func(x int) { seen = x * 100 },
		func(failure) int { return -1 },
	)
	require.Equal(5, got)
	require.Equal(500, seen)

	got = Error[int](notFound).Inspect(
		func(int) { t.Fatal("ok handler called on error result") },
		func(failure) int { return -1 },
	)
	require.Equal(-1, got)
}

func TestMatch(t *testing.T) {
	require := require.New(t)

	toString := func(x int) string { return strconv.Itoa(x) }
	onErr := func(failure) string { return "err" }

	require.Equal("5", Match(Ok[failure](5), toString, onErr))
	require.Equal("err", Match(Error[int](notFound), toString, onErr))

	widened := Match(Ok[failure](int32(7)),
		func(x int32) int64 { return int64(x) },
		func(failure) int64 { return 0 },
	)
	require.Equal(int64(7), widened)
}

func TestWhenError(t *testing.T) {
	require := require.New(t)

	require.Equal(3, Ok[failure](3).WhenError(func(failure) int { return 0 }))
	require.Equal(0, Error[int](notFound).WhenError(func(failure) int { return 0 }))
}

func TestSameValueAndReasonType(t *testing.T) {
	require := require.New(t)

	ok := Ok[string]("value")
	failed := Error[string]("reason")

	require.True(ok.IsOk())
	require.True(failed.IsError())

	branch := func(r Result[string, string]) string {
		return Match(r,
			func(v string) string { return "ok:" + v },
			func(e string) string { return "error:" + e },
		)
	}
	require.Equal("ok:value", branch(ok))
	require.Equal("error:reason", branch(failed))
}

func TestOnErrorOnOk(t *testing.T) {
	require := require.New(t)

	var got int
	Ok[failure](9).
		OnError(func(failure) { t.Fatal("error handler called on ok result") }).
		OnOk(func(v int) { got = v })
	require.Equal(9, got)

	var reason failure
	Error[int](unauthorized).
		OnError(func(f failure) { reason = f }).
		OnOk(func(int) { t.Fatal("ok handler called on error result") })
	require.Equal(unauthorized, reason)
}

func TestHandlerPanicPropagates(t *testing.T) {
	require := require.New(t)

	require.PanicsWithValue(unauthorized, func() {
		Error[int](unauthorized).WhenError(func(f failure) int {
			if f == unauthorized {
				panic(f)
			}
			return 0
		})
	})
}

func TestConcurrentReads(t *testing.T) {
	require := require.New(t)

	r := Ok[failure](21)

	var g errgroup.Group
	for i := 0; i < 100; i++ {
		g.Go(func() error {
			v := r.When(func(x int) int { return x * 2 }, func(failure) int { return 0 })
			if v != 42 {
				return ErrTest
			}
			return nil
		})
	}

	require.NoError(g.Wait())
}
