package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/pipeline/errors"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.New("resource not found")
	}
}

func BenchmarkNewf(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.Newf("invalid value: %d", 42)
	}
}

func BenchmarkHere(b *testing.B) {
	baseErr := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.Here(baseErr)
	}
}

func BenchmarkTrace(b *testing.B) {
	baseErr := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.Trace(baseErr)
	}
}

func BenchmarkRecover(b *testing.B) {
	zero := 0

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		func() {
			defer func() {
				_ = errors.Recover(recover())
			}()
			divisor = i / zero
		}()
	}
}

func BenchmarkWithContext(b *testing.B) {
	baseErr := errors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.WithContext(baseErr, "stage", "ingest")
	}
}

func BenchmarkRender(b *testing.B) {
	err := errors.New("runtime error: integer divide by zero")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = err.Render()
	}
}

func BenchmarkToJSON(b *testing.B) {
	err := errors.WithContext(errors.New("base error"), "stage", "ingest")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		data, _ := json.Marshal(errors.ToJSON(err))
		_ = data
	}
}
