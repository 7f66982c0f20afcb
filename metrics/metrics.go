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

// Package metrics counts rendered errors.
//
// Both counters implement apis.ErrorCounter and label each increment with
// the error name (a code name for structured errors, a Go type name
// otherwise) and its category.
package metrics

import (
	"context"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"dirpx.dev/apperr/apis"
)

// Label and attribute names.
const (
	LabelError    = "error"
	LabelCategory = "category"
)

// Prometheus holds the Prometheus error counter.
type Prometheus struct {
	ErrorsTotal *prometheus.CounterVec
}

var _ apis.ErrorCounter = (*Prometheus)(nil)

// New creates and registers apperr_errors_total with the given registry.
// Like promauto, it panics if the collector is already registered.
func New(reg prometheus.Registerer) *Prometheus {
	return &Prometheus{
		ErrorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apperr",
				Name:      "errors_total",
				Help:      "Total number of errors rendered at a transport boundary",
			},
			[]string{LabelError, LabelCategory},
		),
	}
}

// IncrementErrorCount implements apis.ErrorCounter.
func (p *Prometheus) IncrementErrorCount(name, category string) {
	p.ErrorsTotal.WithLabelValues(name, category).Inc()
}

// OTel counts errors on an OpenTelemetry Int64Counter named apperr.errors.
type OTel struct {
	counter metric.Int64Counter
}

var _ apis.ErrorCounter = (*OTel)(nil)

// NewOTel creates the apperr.errors counter on meter.
func NewOTel(meter metric.Meter) (*OTel, error) {
	c, err := meter.Int64Counter("apperr.errors",
		metric.WithDescription("Total number of errors rendered at a transport boundary"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}
	return &OTel{counter: c}, nil
}

// IncrementErrorCount implements apis.ErrorCounter.
func (o *OTel) IncrementErrorCount(name, category string) {
	o.counter.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(LabelError, name),
		attribute.String(LabelCategory, category),
	))
}

// Multi fans every increment out to all non-nil counters. Typed nils such as
// (*Prometheus)(nil) are dropped as well.
func Multi(counters ...apis.ErrorCounter) apis.ErrorCounter {
	var live []apis.ErrorCounter
	for _, c := range counters {
		if !isNil(c) {
			live = append(live, c)
		}
	}
	return apis.ErrorCounterFunc(func(name, category string) {
		for _, c := range live {
			c.IncrementErrorCount(name, category)
		}
	})
}

func isNil(c apis.ErrorCounter) bool {
	if c == nil {
		return true
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
