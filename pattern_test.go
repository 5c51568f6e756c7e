package tempus

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternConcurrentUse(t *testing.T) {
	p := MustLocalDateTimePattern("o")
	v := dt(2013, 7, 26, 16, 45, 12, 123456789)
	text := p.Format(v)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				if p.Format(v) != text {
					t.Error("format changed under concurrency")
					return
				}
				if got := p.Parse(text).MustValue(); got != v {
					t.Error("parse changed under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestAppendFormat(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("at ")
	MustLocalTimePattern("HH:mm").AppendFormat(MustLocalTime(16, 5, 0, 0), &sb)
	assert.Equal(t, "at 16:05", sb.String())
}

func TestParseErrorDetails(t *testing.T) {
	p := MustLocalTimePattern("HH:mm")
	r := p.Parse("16x05")
	require.False(t, r.Success())
	perr := r.Err().(*ParseError)
	assert.Equal(t, "16x05", perr.Text)
	assert.Equal(t, 2, perr.Index)
	assert.Contains(t, perr.Error(), "16x05")
}

func TestPatternErrorDetails(t *testing.T) {
	_, err := NewLocalTimePattern("HH:mm 'oops")
	require.Error(t, err)
	perr := err.(*PatternError)
	assert.Equal(t, CodeUnterminatedQuote, perr.Code)
	assert.Equal(t, "HH:mm 'oops", perr.Pattern)
	assert.Contains(t, perr.Error(), "HH:mm 'oops")
}
