/*
   Copyright 2025 The DIRPX Authors.

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

// Package metrics exports registry counters to Prometheus.
package metrics

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
)

// Collector reports the Stats of a registry on every scrape.
type Collector struct {
	registry func() apis.Registry

	declared    *prometheus.Desc
	populations *prometheus.Desc
	hits        *prometheus.Desc
	misses      *prometheus.Desc
	instances   *prometheus.Desc
}

// NewCollector returns a Collector reading the registry returned by src at
// scrape time. Metric names are prefixed with namespace when it is set.
func NewCollector(namespace string, src func() apis.Registry) *Collector {
	name := func(n string) string { return prometheus.BuildFQName(namespace, "enumx", n) }
	return &Collector{
		registry: src,
		declared: prometheus.NewDesc(name("declared_types"),
			"Number of types with a declared instance source.", nil, nil),
		populations: prometheus.NewDesc(name("populations_total"),
			"Instance sets computed and published.", nil, nil),
		hits: prometheus.NewDesc(name("cache_hits_total"),
			"Instance set reads served from the cache.", nil, nil),
		misses: prometheus.NewDesc(name("cache_misses_total"),
			"Instance set reads that populated the cache first.", nil, nil),
		instances: prometheus.NewDesc(name("instances"),
			"Size of each populated instance set.", []string{"type"}, nil),
	}
}

// ForRegistry returns a Collector over reg.
func ForRegistry(namespace string, reg apis.Registry) *Collector {
	return NewCollector(namespace, func() apis.Registry { return reg })
}

// Default returns a Collector over the global registry, following swaps.
func Default(namespace string) *Collector {
	return NewCollector(namespace, enumx.Registry)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.declared
	ch <- c.populations
	ch <- c.hits
	ch <- c.misses
	ch <- c.instances
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.registry().Stats()
	ch <- prometheus.MustNewConstMetric(c.declared, prometheus.GaugeValue, float64(s.Declared))
	ch <- prometheus.MustNewConstMetric(c.populations, prometheus.CounterValue, float64(s.Populations))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	for _, ts := range s.Populated {
		ch <- prometheus.MustNewConstMetric(c.instances, prometheus.GaugeValue, float64(ts.Instances), typeLabel(ts.Type))
	}
}

// typeLabel names t by import path, so same-named types from different
// packages get distinct series.
func typeLabel(t reflect.Type) string {
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		return "*" + typeLabel(t.Elem())
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
