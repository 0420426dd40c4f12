package selfstats

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/process"
)

// Collector exposes resource usage of the exporter process itself. Values
// are read at scrape time; a probe that fails on the current platform is
// simply omitted from the scrape.
type Collector struct {
	proc *process.Process

	rss       *prometheus.Desc
	cpu       *prometheus.Desc
	openFDs   *prometheus.Desc
	startTime *prometheus.Desc
}

func New() (*Collector, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}

	return &Collector{
		proc: proc,
		rss: prometheus.NewDesc(
			"exporter_process_resident_memory_bytes",
			"Resident memory of the exporter process.",
			nil, nil,
		),
		cpu: prometheus.NewDesc(
			"exporter_process_cpu_seconds_total",
			"Total user and system CPU time of the exporter process.",
			nil, nil,
		),
		openFDs: prometheus.NewDesc(
			"exporter_process_open_fds",
			"Open file descriptors held by the exporter process.",
			nil, nil,
		),
		startTime: prometheus.NewDesc(
			"exporter_process_start_time_seconds",
			"Start time of the exporter process since unix epoch.",
			nil, nil,
		),
	}, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rss
	ch <- c.cpu
	ch <- c.openFDs
	ch <- c.startTime
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if mem, err := c.proc.MemoryInfo(); err == nil {
		ch <- prometheus.MustNewConstMetric(c.rss, prometheus.GaugeValue, float64(mem.RSS))
	}
	if times, err := c.proc.Times(); err == nil {
		ch <- prometheus.MustNewConstMetric(c.cpu, prometheus.CounterValue, times.User+times.System)
	}
	if fds, err := c.proc.NumFDs(); err == nil {
		ch <- prometheus.MustNewConstMetric(c.openFDs, prometheus.GaugeValue, float64(fds))
	}
	if created, err := c.proc.CreateTime(); err == nil {
		ch <- prometheus.MustNewConstMetric(c.startTime, prometheus.GaugeValue, float64(created)/1000)
	}
}
