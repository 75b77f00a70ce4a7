package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	. "github.com/smartystreets/goconvey/convey"
)

type capture struct {
	mu      sync.Mutex
	records [][]interface{}
}

func (c *capture) Log(keyvals ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, keyvals)
}

func (c *capture) last() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records[len(c.records)-1]
}

type disabledLogger struct {
	Counter
}

func (d *disabledLogger) Disabled() bool {
	return true
}

func TestWithConcurrent(t *testing.T) {
	t.Logf("Max proc is %d", runtime.GOMAXPROCS(0))
	const goroutines = 10
	counts := [goroutines]int{}
	var mu sync.Mutex

	logger := &bucketLogger{fn: func(kv []interface{}) {
		goroutine := kv[len(kv)-1].(int)
		mu.Lock()
		counts[goroutine]++
		mu.Unlock()
		if len(kv) != 10 {
			panic(kv)
		}
	}}

	// With must not share a backing array that still has room to grow.
	l := NewContext(logger).With(make([]interface{}, 2, 40)...).With(make([]interface{}, 2, 40)...)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	const n = 1000
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			for j := 0; j < n; j++ {
				l.With("a", "b").WithPrefix("c", "d").Log("goroutineIdx", idx)
			}
		}(i)
	}
	wg.Wait()

	for bucket, have := range counts {
		if want := n; want != have {
			t.Errorf("bucket %d: want %d, have %d", bucket, want, have)
		}
	}
}

type bucketLogger struct {
	fn func([]interface{})
}

func (b *bucketLogger) Log(keyvals ...interface{}) {
	b.fn(keyvals)
}

func TestContextOptimizations(t *testing.T) {
	Convey("A normal context", t, func() {
		count := Counter{}
		c := NewContext(&count)
		Convey("should wrap itself", func() {
			So(NewContext(c), ShouldEqual, c)
		})
		Convey("should early exit empty with", func() {
			So(c.With(), ShouldEqual, c)
			So(c.WithPrefix(), ShouldEqual, c)
		})
	})
}

func toStr(in []interface{}) []string {
	ret := make([]string, 0, len(in))
	for i := range in {
		ret = append(ret, in[i].(string))
	}
	return ret
}

func TestLoggingBasics(t *testing.T) {
	Convey("A normal logger", t, func() {
		mem := &capture{}
		c := NewContext(mem)
		Convey("Should not remember with statements", func() {
			c.With("name", "john")
			c.Log()
			So(len(mem.last()), ShouldEqual, 0)
		})
		Convey("should even out context values on with", func() {
			c = c.With("name")
			c.Log()
			So(len(mem.last()), ShouldEqual, 2)
			So(mem.last()[1], ShouldEqual, ErrMissingValue)
		})
		Convey("should even out context values on log", func() {
			c.Log("name")
			So(len(mem.last()), ShouldEqual, 2)
		})
		Convey("Should convey params using with", func() {
			c = c.With("name", "john")
			c.Log("age", "10")
			So(toStr(mem.last()), ShouldResemble, []string{"name", "john", "age", "10"})
			Convey("should put WithPrefix first", func() {
				c = c.WithPrefix("name", "jack")
				c.Log()
				So(toStr(mem.last()), ShouldResemble, []string{"name", "jack", "name", "john"})
			})
		})
	})
}

func TestDisabledContext(t *testing.T) {
	Convey("A context over a disabled logger", t, func() {
		d := &disabledLogger{}
		resolved := 0
		c := NewContext(d).With("value", DynamicFunc(func() interface{} {
			resolved++
			return "x"
		}))
		Convey("should not log or resolve dynamic values", func() {
			c.Log("hello", "world")
			So(d.Count, ShouldEqual, 0)
			So(resolved, ShouldEqual, 0)
			So(c.Disabled(), ShouldBeTrue)
		})
		Convey("should report discard as disabled", func() {
			So(IsDisabled(Discard), ShouldBeTrue)
			So(IsDisabled(&Counter{}), ShouldBeFalse)
		})
	})
}

func TestMultiLogger(t *testing.T) {
	Convey("A multi logger", t, func() {
		a, b := &Counter{}, &Counter{}
		m := MultiLogger{a, b}
		Convey("should log to everything", func() {
			m.Log("k", "v")
			So(a.Count, ShouldEqual, 1)
			So(b.Count, ShouldEqual, 1)
		})
		Convey("should only be disabled when every logger is", func() {
			So(m.Disabled(), ShouldBeFalse)
			So(MultiLogger{Discard, &disabledLogger{}}.Disabled(), ShouldBeTrue)
			So(MultiLogger{Discard, a}.Disabled(), ShouldBeFalse)
		})
	})
}

func TestDynamicValues(t *testing.T) {
	Convey("Dynamic values", t, func() {
		mem := &capture{}
		c := NewContext(mem)
		Convey("should resolve when logged", func() {
			n := 0
			c = c.With("n", DynamicFunc(func() interface{} {
				n++
				return n
			}))
			c.Log()
			c.Log()
			So(mem.last()[1], ShouldEqual, 2)
		})
		Convey("should resolve the caller", func() {
			c.With("caller", DefaultCaller).Log()
			So(mem.last()[1], ShouldNotBeNil)
			So(strings.HasPrefix(formatValue(mem.last()[1]), "log_test.go:"), ShouldBeTrue)
		})
	})
}

func formatValue(v interface{}) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

func TestNewJSONLogger(t *testing.T) {
	Convey("A JSON logger", t, func() {
		buf := &bytes.Buffer{}
		l := NewJSONLogger(buf, Panic)
		Convey("should write one object per record", func() {
			l.Log("method", "info", "msg", "hello")
			var out map[string]string
			So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
			So(out["method"], ShouldEqual, "info")
			So(out["msg"], ShouldEqual, "hello")
		})
		Convey("should discard when given io.Discard", func() {
			So(NewJSONLogger(io.Discard, Panic) == Discard, ShouldBeTrue)
		})
	})
}

type failingKit struct{}

func (failingKit) Log(keyvals ...interface{}) error {
	return errors.New("cannot write")
}

func TestFromGokit(t *testing.T) {
	Convey("A go-kit logger", t, func() {
		Convey("should receive records", func() {
			buf := &bytes.Buffer{}
			l := FromGokit(kitlog.NewLogfmtLogger(buf))
			l.Log("method", "log")
			So(buf.String(), ShouldEqual, "method=log\n")
		})
		Convey("should hand failed records to its error handler", func() {
			c := &Counter{}
			l := FromGokit(failingKit{})
			So(l.ErrHandler == DefaultErrorHandler, ShouldBeTrue)
			l.ErrHandler = c
			l.Log("k", "v")
			So(c.Count, ShouldEqual, 1)
		})
	})
}

func TestPanicLogger(t *testing.T) {
	Convey("panic logger", t, func() {
		l := Panic
		So(l.ErrorLogger(nil), ShouldEqual, l)
		So(func() {
			l.Log()
		}, ShouldPanic)
	})
}

type lockWriter struct {
	out io.Writer
	mu  sync.Mutex
}

func (l *lockWriter) Write(b []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Write(b)
}

func TestNewJSONLoggerRace(t *testing.T) {
	l := NewJSONLogger(&lockWriter{out: &bytes.Buffer{}}, Discard)
	raceCheck(l)
}

func TestNewLogfmtLoggerRace(t *testing.T) {
	l := NewLogfmtLogger(&lockWriter{out: &bytes.Buffer{}}, Discard)
	raceCheck(l)
}

func TestCounterRace(t *testing.T) {
	raceCheck(&Counter{})
}

func raceCheck(l Logger) {
	raceCheckerIter(l, 3, 10)
}

func raceCheckerIter(l Logger, deep int, iter int) {
	if deep == 0 {
		return
	}
	l.Log("deep", deep)
	ctx := NewContext(l)
	wg := sync.WaitGroup{}
	wg.Add(iter)
	for i := 0; i < iter; i++ {
		go func(i int) {
			raceCheckerIter(ctx.With(strconv.FormatInt(int64(deep), 10), i), deep-1, iter)
			wg.Done()
		}(i)
	}
	wg.Wait()
}

func BenchmarkEmptyLogDisabled(b *testing.B) {
	c := NewContext(Discard)
	for i := 0; i < b.N; i++ {
		c.Log()
	}
}

func BenchmarkContextWithLog(b *testing.B) {
	count := Counter{}
	c := NewContext(&count).With("hello", "world")
	for i := 0; i < b.N; i++ {
		c.Log("name", "bob")
	}
}
