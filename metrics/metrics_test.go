/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementErrorCount("DATA_NOT_FOUND", "DATA")
	m.IncrementErrorCount("DATA_NOT_FOUND", "DATA")
	m.IncrementErrorCount("*errors.errorString", "")

	if got := testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("DATA_NOT_FOUND", "DATA")); got != 2 {
		t.Fatalf("DATA_NOT_FOUND = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("*errors.errorString", "")); got != 1 {
		t.Fatalf("errorString = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.ErrorsTotal); n != 2 {
		t.Fatalf("series = %d, want 2", n)
	}
}

func TestPrometheus_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = New(reg)
	defer func() {
		if recover() == nil {
			t.Fatalf("second New on the same registry must panic")
		}
	}()
	_ = New(reg)
}

func TestOTel(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	c, err := NewOTel(provider.Meter("dirpx.dev/apperr/metrics"))
	if err != nil {
		t.Fatalf("NewOTel: %v", err)
	}
	c.IncrementErrorCount("VALIDATION_ERROR", "VALIDATION")
	c.IncrementErrorCount("VALIDATION_ERROR", "VALIDATION")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(rm.ScopeMetrics) != 1 || len(rm.ScopeMetrics[0].Metrics) != 1 {
		t.Fatalf("unexpected metrics: %+v", rm.ScopeMetrics)
	}
	got := rm.ScopeMetrics[0].Metrics[0]
	if got.Name != "apperr.errors" {
		t.Fatalf("Name = %q", got.Name)
	}
	sum, ok := got.Data.(metricdata.Sum[int64])
	if !ok || len(sum.DataPoints) != 1 {
		t.Fatalf("Data = %#v", got.Data)
	}
	dp := sum.DataPoints[0]
	if dp.Value != 2 {
		t.Fatalf("Value = %d, want 2", dp.Value)
	}
	if v, _ := dp.Attributes.Value(attribute.Key(LabelError)); v.AsString() != "VALIDATION_ERROR" {
		t.Fatalf("error attribute = %v", v)
	}
}

func TestMulti(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := New(reg)
	var seen []string
	rec := counterFunc(func(name, _ string) { seen = append(seen, name) })

	Multi(p, nil, rec).IncrementErrorCount("SYSTEM_ERROR", "SYSTEM")

	if got := testutil.ToFloat64(p.ErrorsTotal.WithLabelValues("SYSTEM_ERROR", "SYSTEM")); got != 1 {
		t.Fatalf("prometheus = %v", got)
	}
	if len(seen) != 1 || seen[0] != "SYSTEM_ERROR" {
		t.Fatalf("seen = %v", seen)
	}
}

func TestMulti_SkipsTypedNils(t *testing.T) {
	var seen int
	var nilFunc counterFunc
	m := Multi((*Prometheus)(nil), (*OTel)(nil), nilFunc, counterFunc(func(string, string) { seen++ }))

	m.IncrementErrorCount("DATA_NOT_FOUND", "DATA")
	if seen != 1 {
		t.Fatalf("seen = %d, want 1", seen)
	}
	Multi((*Prometheus)(nil)).IncrementErrorCount("DATA_NOT_FOUND", "DATA")
}

type counterFunc func(name, category string)

func (f counterFunc) IncrementErrorCount(name, category string) { f(name, category) }
