package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	result = "result"
)

var (
	dc = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subnet_devaddr_resolve_count",
		Help: "The number of devaddr to subnet address resolutions (per result).",
	}, []string{result})
	sc = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "subnet_addr_resolve_count",
		Help: "The number of subnet address to devaddr resolutions (per result).",
	}, []string{result})
)

func devAddrLocal() prometheus.Counter {
	return dc.With(prometheus.Labels{result: "local"})
}

func devAddrForeign() prometheus.Counter {
	return dc.With(prometheus.Labels{result: "foreign"})
}

func subnetResolved() prometheus.Counter {
	return sc.With(prometheus.Labels{result: "ok"})
}

func subnetOutOfRange() prometheus.Counter {
	return sc.With(prometheus.Labels{result: "out_of_range"})
}
